// Package schema holds the declarative description of the adverse-events
// dataset: every column, its semantics, valid values, and the
// natural-language cue phrases used to route questions to it.
package schema

import (
	"fmt"
	"strings"
)

// ColumnType is the declared semantic type of a column.
type ColumnType string

const (
	TypeString   ColumnType = "string"
	TypeDatetime ColumnType = "datetime"
	TypeInteger  ColumnType = "integer"
)

// Column describes one dataset column. Immutable after registry
// construction.
type Column struct {
	ID          string     `yaml:"id"`
	Label       string     `yaml:"label"`
	Description string     `yaml:"description"`
	Type        ColumnType `yaml:"type"`

	// Values is the closed set of valid values for categorical columns
	// (e.g. MILD/MODERATE/SEVERE). Nil for open free-text columns.
	Values []string `yaml:"values,omitempty"`

	// Cues are natural-language phrases that should map a question to
	// this column.
	Cues []string `yaml:"cues"`
}

// Registry is the ordered, immutable collection of column definitions.
// Constructed once at startup and shared read-only.
type Registry struct {
	name        string
	description string
	columns     []Column
	index       map[string]int
}

// New builds a registry from an ordered column list. Column IDs must be
// unique.
func New(name, description string, columns []Column) (*Registry, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if col.ID == "" {
			return nil, fmt.Errorf("schema column %d has empty id", i)
		}
		if _, dup := index[col.ID]; dup {
			return nil, fmt.Errorf("duplicate schema column %q", col.ID)
		}
		index[col.ID] = i
	}
	return &Registry{
		name:        name,
		description: description,
		columns:     columns,
		index:       index,
	}, nil
}

// Name returns the dataset name.
func (r *Registry) Name() string {
	return r.name
}

// Has reports whether a column ID is part of the schema.
func (r *Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Column returns the definition for a column ID.
func (r *Registry) Column(id string) (Column, bool) {
	i, ok := r.index[id]
	if !ok {
		return Column{}, false
	}
	return r.columns[i], true
}

// IDs returns the column identifiers in schema order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.columns))
	for i, col := range r.columns {
		ids[i] = col.ID
	}
	return ids
}

// Columns returns the column definitions in schema order.
func (r *Registry) Columns() []Column {
	cols := make([]Column, len(r.columns))
	copy(cols, r.columns)
	return cols
}

// Render produces the textual schema description that is embedded in the
// interpretation prompt. Output is deterministic: the same registry always
// renders to identical text, which keeps the oracle input stable.
func (r *Registry) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s DATASET SCHEMA:\n\n", strings.ToUpper(r.name))
	for _, col := range r.columns {
		fmt.Fprintf(&b, "Column: %s\n", col.ID)
		fmt.Fprintf(&b, "  Label: %s\n", col.Label)
		fmt.Fprintf(&b, "  Description: %s\n", col.Description)
		if len(col.Values) > 0 {
			fmt.Fprintf(&b, "  Valid Values: %s\n", strings.Join(col.Values, ", "))
		}
		fmt.Fprintf(&b, "  Use for questions about: %s\n\n", strings.Join(col.Cues, ", "))
	}
	return b.String()
}
