package configstore

import (
	"context"

	"github.com/adbstack/agent-tools/pkg/pagination"
)

// System defines the interface for configuration storage and retrieval.
// Set has upsert semantics; entries are never deleted implicitly.
type System interface {
	Get(ctx context.Context, agent, key string) (*Entry, error)
	Set(ctx context.Context, cmd SetCommand) (*Entry, error)
	List(ctx context.Context, agent string) ([]Entry, error)
	Search(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Entry], error)
}
