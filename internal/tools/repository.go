package tools

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

// New creates a tool registry repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "tools"),
		pagination: pagination,
	}
}

func (r *repo) Upsert(ctx context.Context, cmd UpsertCommand) (*Binding, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO tool_bindings (name, instruction, target_operation, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			instruction = EXCLUDED.instruction,
			target_operation = EXCLUDED.target_operation,
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING id, name, instruction, target_operation, description, created_at, updated_at`

	b, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Binding, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Name, cmd.Instruction, cmd.TargetOperation, cmd.Description}, scanBinding)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("tool registered", "name", b.Name, "target", b.TargetOperation)
	return &b, nil
}

func (r *repo) Find(ctx context.Context, name string) (*Binding, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("Name", name)

	b, err := repository.QueryOne(ctx, r.db, q, args, scanBinding)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &b, nil
}

func (r *repo) Names(ctx context.Context) ([]string, error) {
	q := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s ASC",
		projection.Column("Name"),
		projection.Table(),
		projection.Column("Name"),
	)

	names, err := repository.QueryMany(ctx, r.db, q, nil, func(s repository.Scanner) (string, error) {
		var name string
		err := s.Scan(&name)
		return name, err
	})
	if err != nil {
		return nil, fmt.Errorf("list tool names: %w", err)
	}
	return names, nil
}

func (r *repo) Search(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Binding], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count tools: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	bindings, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanBinding)
	if err != nil {
		return nil, fmt.Errorf("query tools: %w", err)
	}

	result := pagination.NewPageResult(bindings, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Delete(ctx context.Context, name string) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, "DELETE FROM tool_bindings WHERE name = $1", name)
		return struct{}{}, err
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("tool removed", "name", name)
	return nil
}

func validate(cmd UpsertCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidBinding)
	}
	if strings.TrimSpace(cmd.Instruction) == "" {
		return fmt.Errorf("%w: instruction required", ErrInvalidBinding)
	}
	if strings.TrimSpace(cmd.TargetOperation) == "" {
		return fmt.Errorf("%w: target operation required", ErrInvalidBinding)
	}
	return nil
}
