package configstore

import (
	"net/url"

	"github.com/adbstack/agent-tools/pkg/query"
	"github.com/adbstack/agent-tools/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "agent_config", "c").
	Project("id", "ID").
	Project("key", "Key").
	Project("value", "Value").
	Project("agent", "Agent").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const defaultSort = "Key"

func scanEntry(s repository.Scanner) (Entry, error) {
	var e Entry
	err := s.Scan(&e.ID, &e.Key, &e.Value, &e.Agent, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// Filters contains optional filtering criteria for configuration queries.
type Filters struct {
	Agent *string
	Key   *string
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var agent, key *string
	if a := values.Get("agent"); a != "" {
		agent = &a
	}
	if k := values.Get("key"); k != "" {
		key = &k
	}

	return Filters{
		Agent: agent,
		Key:   key,
	}
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Agent != nil {
		b.WhereEquals("Agent", *f.Agent)
	}
	return b.WhereContains("Key", f.Key)
}
