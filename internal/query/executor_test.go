package query

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aequery/aequery/internal/dataset"
	"github.com/aequery/aequery/internal/model"
)

func loadTable(t *testing.T, csv string) *dataset.Table {
	t.Helper()
	table, err := dataset.Load(strings.NewReader(csv))
	require.NoError(t, err)
	return table
}

func spec(column, value, matchType string) *model.FilterSpec {
	return &model.FilterSpec{
		Column:    column,
		Value:     model.FilterValue(value),
		MatchType: matchType,
	}
}

func TestExecute_ExactSeverity(t *testing.T) {
	// 3 rows for S1 (MILD, SEVERE, SEVERE), 1 row for S2 (SEVERE)
	table := loadTable(t, `USUBJID,AETERM,AESEV
S1,Headache,MILD
S1,Nausea,SEVERE
S1,Rash,SEVERE
S2,Dizziness,SEVERE`)

	exec := NewExecutor("USUBJID")
	result, err := exec.Execute(spec("AESEV", "severe", model.MatchExact), table)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRecords)
	assert.Equal(t, []string{"S1", "S2"}, result.Subjects)
	assert.Equal(t, 2, result.SubjectCount)
	assert.Len(t, result.Sample, 3)
}

func TestExecute_ContainsTerm(t *testing.T) {
	table := loadTable(t, `USUBJID,AETERM
S1,Headache
S2,Severe Headache Disorder
S3,Back Pain`)

	exec := NewExecutor("USUBJID")
	result, err := exec.Execute(spec("AETERM", "headache", model.MatchContains), table)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRecords)
	assert.Equal(t, []string{"S1", "S2"}, result.Subjects)
}

func TestExecute_UnknownColumn(t *testing.T) {
	table := loadTable(t, `USUBJID,AETERM
S1,Headache`)

	exec := NewExecutor("USUBJID")
	_, err := exec.Execute(spec("NOTACOLUMN", "x", model.MatchExact), table)
	require.Error(t, err)

	var unknownErr *model.UnknownColumnError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "NOTACOLUMN", unknownErr.Column)
	assert.Equal(t, []string{"USUBJID", "AETERM"}, unknownErr.Available)
	assert.Contains(t, err.Error(), "NOTACOLUMN")
	assert.Contains(t, err.Error(), "USUBJID, AETERM")
}

func TestExecute_MissingValuesNeverMatch(t *testing.T) {
	table := loadTable(t, `USUBJID,AESEV
S1,
S2,MILD
S3`)

	exec := NewExecutor("USUBJID")

	result, err := exec.Execute(spec("AESEV", "mild", model.MatchExact), table)
	require.NoError(t, err)
	assert.Equal(t, []string{"S2"}, result.Subjects)
	assert.Equal(t, 1, result.TotalRecords)

	// contains with empty filter value matches every non-missing cell,
	// still never the missing ones
	result, err = exec.Execute(spec("AESEV", "", model.MatchContains), table)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalRecords)
}

func TestExecute_NoMatches(t *testing.T) {
	table := loadTable(t, `USUBJID,AESEV
S1,MILD`)

	exec := NewExecutor("USUBJID")
	result, err := exec.Execute(spec("AESEV", "FATAL", model.MatchExact), table)
	require.NoError(t, err)

	assert.Equal(t, 0, result.SubjectCount)
	assert.Equal(t, 0, result.TotalRecords)
	assert.Empty(t, result.Subjects)
	assert.NotNil(t, result.Subjects)
	assert.Empty(t, result.Sample)
	assert.NotNil(t, result.Sample)
}

func TestExecute_CaseInsensitive(t *testing.T) {
	table := loadTable(t, `USUBJID,AETERM,AESEV
S1,HeAdAcHe,SEVERE
S2,headache,severe`)

	exec := NewExecutor("USUBJID")

	for _, value := range []string{"severe", "SEVERE", "Severe"} {
		result, err := exec.Execute(spec("AESEV", value, model.MatchExact), table)
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalRecords, "value %q", value)
	}

	result, err := exec.Execute(spec("AETERM", "HEADACHE", model.MatchContains), table)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRecords)
}

func TestExecute_UnrecognizedMatchTypeDefaultsToContains(t *testing.T) {
	table := loadTable(t, `USUBJID,AETERM
S1,Severe Headache Disorder`)

	exec := NewExecutor("USUBJID")

	for _, matchType := range []string{"", "fuzzy", "regex"} {
		result, err := exec.Execute(spec("AETERM", "headache", matchType), table)
		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalRecords, "match_type %q", matchType)
	}

	// exact stays exact: substring must not match
	result, err := exec.Execute(spec("AETERM", "headache", model.MatchExact), table)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalRecords)
}

func TestExecute_SampleBound(t *testing.T) {
	var b strings.Builder
	b.WriteString("USUBJID,AESEV\n")
	for i := 0; i < 12; i++ {
		b.WriteString("S1,MODERATE\n")
	}
	table := loadTable(t, b.String())

	exec := NewExecutor("USUBJID")
	result, err := exec.Execute(spec("AESEV", "moderate", model.MatchExact), table)
	require.NoError(t, err)

	assert.Equal(t, 12, result.TotalRecords)
	assert.Len(t, result.Sample, SampleSize)
}

func TestExecute_SubjectDeduplicationOrder(t *testing.T) {
	table := loadTable(t, `USUBJID,AESEV
S3,MILD
S1,MILD
S3,MILD
S2,MILD
S1,MILD`)

	exec := NewExecutor("USUBJID")
	result, err := exec.Execute(spec("AESEV", "mild", model.MatchExact), table)
	require.NoError(t, err)

	// First-occurrence order of the unfiltered dataset, duplicates collapsed
	assert.Equal(t, []string{"S3", "S1", "S2"}, result.Subjects)
	assert.Equal(t, 3, result.SubjectCount)
	assert.Equal(t, 5, result.TotalRecords)
	assert.LessOrEqual(t, result.SubjectCount, result.TotalRecords)
}

func TestExecute_Idempotent(t *testing.T) {
	table := loadTable(t, `USUBJID,AETERM,AESEV
S1,Headache,MILD
S2,Nausea,SEVERE
S1,Rash,SEVERE`)

	exec := NewExecutor("USUBJID")
	filter := spec("AESEV", "severe", model.MatchExact)

	first, err := exec.Execute(filter, table)
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := exec.Execute(filter, table)
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON))
	}
}

func TestExecute_CoercedNumericValue(t *testing.T) {
	table := loadTable(t, `USUBJID,AESTDY
S1,5
S2,15
S3,7`)

	var filter model.FilterSpec
	require.NoError(t, json.Unmarshal(
		[]byte(`{"target_column":"AESTDY","filter_value":5,"match_type":"exact"}`), &filter))

	exec := NewExecutor("USUBJID")
	result, err := exec.Execute(&filter, table)
	require.NoError(t, err)

	assert.Equal(t, []string{"S1"}, result.Subjects)
}

func TestExecute_ContainsNoWhitespaceNormalization(t *testing.T) {
	table := loadTable(t, `USUBJID,AETERM
S1,CARDIAC DISORDERS
S2,CARDIAC  DISORDERS`)

	exec := NewExecutor("USUBJID")
	result, err := exec.Execute(spec("AETERM", "cardiac disorders", model.MatchContains), table)
	require.NoError(t, err)

	// Literal substring only: the double-spaced variant does not match
	assert.Equal(t, []string{"S1"}, result.Subjects)
	assert.Equal(t, 1, result.TotalRecords)
}

func TestExecute_SampleRowsVerbatim(t *testing.T) {
	table := loadTable(t, `USUBJID,AETERM,AESEV
S1,Headache,MILD`)

	exec := NewExecutor("USUBJID")
	result, err := exec.Execute(spec("AETERM", "head", model.MatchContains), table)
	require.NoError(t, err)

	require.Len(t, result.Sample, 1)
	assert.Equal(t, map[string]string{
		"USUBJID": "S1",
		"AETERM":  "Headache",
		"AESEV":   "MILD",
	}, result.Sample[0])
}

func TestExecute_MissingSubjectColumn(t *testing.T) {
	// Dataset without the subject column still filters; dedup just finds
	// no subjects
	table := loadTable(t, `AETERM
Headache`)

	exec := NewExecutor("USUBJID")
	result, err := exec.Execute(spec("AETERM", "headache", model.MatchContains), table)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalRecords)
	assert.Equal(t, 0, result.SubjectCount)
}
