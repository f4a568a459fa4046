// Package query deterministically applies a structured filter to the
// in-memory dataset. All computation is local; the executor never calls
// any external service and never mutates the table.
package query

import (
	"strings"

	"github.com/aequery/aequery/internal/dataset"
	"github.com/aequery/aequery/internal/model"
)

// SampleSize caps the number of verbatim rows returned for inspection.
const SampleSize = 5

// Executor applies FilterSpecs against tables. Stateless apart from the
// subject column name, so one executor serves any number of queries.
type Executor struct {
	subjectColumn string
}

// NewExecutor creates an executor that de-duplicates subjects by the given
// column.
func NewExecutor(subjectColumn string) *Executor {
	if subjectColumn == "" {
		subjectColumn = "USUBJID"
	}
	return &Executor{subjectColumn: subjectColumn}
}

// Execute filters the table and derives the aggregates.
//
// Matching is case-insensitive in both modes: "exact" compares uppercased
// values for equality, anything else (including an absent match_type) does
// a literal uppercased substring check. Rows with a missing value in the
// target column never match. The target column must exist in the table;
// otherwise a *model.UnknownColumnError is returned, which affects that
// single query only.
func (e *Executor) Execute(spec *model.FilterSpec, t *dataset.Table) (*model.QueryResult, error) {
	if !t.HasColumn(spec.Column) {
		return nil, &model.UnknownColumnError{
			Column:    spec.Column,
			Available: t.Columns(),
		}
	}

	want := strings.ToUpper(spec.Value.String())
	exact := spec.MatchType == model.MatchExact

	result := &model.QueryResult{
		Subjects: []string{},
		Sample:   []map[string]string{},
	}
	seen := make(map[string]bool)

	for row := 0; row < t.NumRows(); row++ {
		cell, ok := t.Value(row, spec.Column)
		if !ok {
			continue
		}

		have := strings.ToUpper(cell)
		var matched bool
		if exact {
			matched = have == want
		} else {
			matched = strings.Contains(have, want)
		}
		if !matched {
			continue
		}

		result.TotalRecords++

		if subject, ok := t.Value(row, e.subjectColumn); ok && !seen[subject] {
			seen[subject] = true
			result.Subjects = append(result.Subjects, subject)
		}

		if len(result.Sample) < SampleSize {
			result.Sample = append(result.Sample, t.RowMap(row))
		}
	}

	result.SubjectCount = len(result.Subjects)
	return result, nil
}
