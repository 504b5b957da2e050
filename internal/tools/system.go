package tools

import (
	"context"

	"github.com/adbstack/agent-tools/pkg/pagination"
)

// System defines the interface for tool binding storage and retrieval.
// Upsert replaces an existing binding with the same name.
type System interface {
	Upsert(ctx context.Context, cmd UpsertCommand) (*Binding, error)
	Find(ctx context.Context, name string) (*Binding, error)
	Names(ctx context.Context) ([]string, error)
	Search(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Binding], error)
	Delete(ctx context.Context, name string) error
}
