package configstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adbstack/agent-tools/pkg/pagination"
	"github.com/adbstack/agent-tools/pkg/query"
	"github.com/adbstack/agent-tools/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a configuration store repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "configstore"),
		pagination: pagination,
	}
}

func (r *repo) Get(ctx context.Context, agent, key string) (*Entry, error) {
	q := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 AND %s = $2",
		projection.Columns(),
		projection.Table(),
		projection.Column("Agent"),
		projection.Column("Key"),
	)

	e, err := repository.QueryOne(ctx, r.db, q, []any{agent, key}, scanEntry)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

func (r *repo) Set(ctx context.Context, cmd SetCommand) (*Entry, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO agent_config (key, value, agent)
		VALUES ($1, $2, $3)
		ON CONFLICT (key, agent) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
		RETURNING id, key, value, agent, created_at, updated_at`

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Entry, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Key, cmd.Value, cmd.Agent}, scanEntry)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("config entry set", "agent", e.Agent, "key", e.Key)
	return &e, nil
}

func (r *repo) List(ctx context.Context, agent string) ([]Entry, error) {
	q := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC",
		projection.Columns(),
		projection.Table(),
		projection.Column("Agent"),
		projection.Column("Key"),
	)

	entries, err := repository.QueryMany(ctx, r.db, q, []any{agent}, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("list config entries: %w", err)
	}
	return entries, nil
}

func (r *repo) Search(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Entry], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Key", "Agent")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count config entries: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	entries, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("query config entries: %w", err)
	}

	result := pagination.NewPageResult(entries, total, page.Page, page.PageSize)
	return &result, nil
}

func validate(cmd SetCommand) error {
	if strings.TrimSpace(cmd.Key) == "" {
		return fmt.Errorf("%w: key required", ErrInvalidKey)
	}
	if strings.TrimSpace(cmd.Agent) == "" {
		return fmt.Errorf("%w: agent required", ErrInvalidKey)
	}
	return nil
}
