package tools

import (
	"net/url"

	"github.com/adbstack/agent-tools/pkg/query"
	"github.com/adbstack/agent-tools/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "tool_bindings", "t").
	Project("id", "ID").
	Project("name", "Name").
	Project("instruction", "Instruction").
	Project("target_operation", "TargetOperation").
	Project("description", "Description").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const defaultSort = "Name"

func scanBinding(s repository.Scanner) (Binding, error) {
	var b Binding
	err := s.Scan(&b.ID, &b.Name, &b.Instruction, &b.TargetOperation, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// Filters contains optional filtering criteria for tool queries.
type Filters struct {
	Name   *string
	Target *string
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var name, target *string
	if n := values.Get("name"); n != "" {
		name = &n
	}
	if t := values.Get("target"); t != "" {
		target = &t
	}

	return Filters{
		Name:   name,
		Target: target,
	}
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Target != nil {
		b.WhereEquals("TargetOperation", *f.Target)
	}
	return b.WhereContains("Name", f.Name)
}
