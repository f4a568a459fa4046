package model

import (
	"encoding/json"
	"strings"
)

// Match modes for a FilterSpec. Anything else is treated as MatchContains
// by the executor.
const (
	MatchExact    = "exact"
	MatchContains = "contains"
)

// FilterSpec is the structured filter the interpreter produces from one
// natural-language question. It is created fresh per question, never
// mutated, and consumed exactly once by the executor.
type FilterSpec struct {
	Column    string      `json:"target_column"`
	Value     FilterValue `json:"filter_value"`
	MatchType string      `json:"match_type"`
	Reasoning string      `json:"reasoning"`
}

// FilterValue is a string that tolerates non-string JSON from the oracle.
// Models occasionally emit bare numbers or booleans for filter_value; those
// are coerced to their literal text instead of failing the whole question.
type FilterValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FilterValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FilterValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*v = FilterValue(n.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*v = "true"
		} else {
			*v = "false"
		}
		return nil
	}

	if strings.TrimSpace(string(data)) == "null" {
		*v = ""
		return nil
	}

	*v = FilterValue(strings.Trim(string(data), `"`))
	return nil
}

// String returns the filter value as plain text.
func (v FilterValue) String() string {
	return string(v)
}
