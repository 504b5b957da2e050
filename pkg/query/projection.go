package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps logical field names to physical columns for a single
// table, providing qualified column references for query construction.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	fields  map[string]string
}

// NewProjectionMap creates a ProjectionMap for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project registers a column under a logical field name and returns the map
// for chaining. Registration order determines column order in SELECT clauses.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.columns = append(p.columns, column)
	p.fields[field] = column
	return p
}

// Table returns the qualified, aliased table reference.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Columns returns the comma-separated, alias-qualified column list.
func (p *ProjectionMap) Columns() string {
	qualified := make([]string, len(p.columns))
	for i, col := range p.columns {
		qualified[i] = p.alias + "." + col
	}
	return strings.Join(qualified, ", ")
}

// Column returns the alias-qualified column for a logical field name.
// Unknown fields fall back to the first projected column.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.fields[field]; ok {
		return p.alias + "." + col
	}
	if len(p.columns) > 0 {
		return p.alias + "." + p.columns[0]
	}
	return ""
}

// HasField reports whether a logical field name is projected.
func (p *ProjectionMap) HasField(field string) bool {
	_, ok := p.fields[field]
	return ok
}
