package model

// QueryResult is the deterministic aggregate of executing one FilterSpec
// against the dataset.
type QueryResult struct {
	// Subjects lists distinct subject identifiers among the matching rows,
	// in first-occurrence order of the unfiltered dataset.
	Subjects []string `json:"subject_ids"`

	// SubjectCount is len(Subjects).
	SubjectCount int `json:"unique_subject_count"`

	// TotalRecords counts all matching rows, including duplicate subjects.
	TotalRecords int `json:"total_records"`

	// Sample holds the first matching rows verbatim, capped at 5, so a
	// human can eyeball what actually matched.
	Sample []map[string]string `json:"sample_data"`
}

// Response is the outward-facing envelope returned per question: the
// original question, how it was interpreted, and what the filter found.
type Response struct {
	Question string      `json:"question"`
	Query    FilterSpec  `json:"parsed_query"`
	Results  QueryResult `json:"results"`
}
