package teams

import "context"

// System defines the interface for definition storage. ReplaceAll installs a
// complete definition set: names absent from the new set are removed, and
// the rest are created or replaced, leaving exactly the desired state.
type System interface {
	ReplaceAll(ctx context.Context, defs Definitions) error
	Tasks(ctx context.Context) ([]Task, error)
	Agents(ctx context.Context) ([]Agent, error)
	Teams(ctx context.Context) ([]Team, error)
	FindTeam(ctx context.Context, name string) (*Team, error)
}
