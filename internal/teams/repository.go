package teams

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/adbstack/agent-tools/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a definitions repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "teams"),
	}
}

func (r *repo) ReplaceAll(ctx context.Context, defs Definitions) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := r.replaceTasks(ctx, tx, defs.Tasks); err != nil {
			return struct{}{}, fmt.Errorf("replace tasks: %w", err)
		}
		if err := r.replaceAgents(ctx, tx, defs.Agents); err != nil {
			return struct{}{}, fmt.Errorf("replace agents: %w", err)
		}
		if err := r.replaceTeams(ctx, tx, defs.Teams); err != nil {
			return struct{}{}, fmt.Errorf("replace teams: %w", err)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("definitions replaced",
		"tasks", len(defs.Tasks),
		"agents", len(defs.Agents),
		"teams", len(defs.Teams),
	)
	return nil
}

func (r *repo) replaceTasks(ctx context.Context, tx *sql.Tx, tasks []TaskCommand) error {
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.Name
	}

	if err := deleteMissing(ctx, tx, "task_definitions", names); err != nil {
		return err
	}

	const q = `
		INSERT INTO task_definitions (name, instruction, tools, requires_confirmation)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			instruction = EXCLUDED.instruction,
			tools = EXCLUDED.tools,
			requires_confirmation = EXCLUDED.requires_confirmation,
			updated_at = NOW()`

	for _, t := range tasks {
		tools, err := json.Marshal(t.Tools)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q, t.Name, t.Instruction, tools, t.RequiresConfirmation); err != nil {
			return fmt.Errorf("task %q: %w", t.Name, err)
		}
	}
	return nil
}

func (r *repo) replaceAgents(ctx context.Context, tx *sql.Tx, agents []AgentCommand) error {
	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = a.Name
	}

	if err := deleteMissing(ctx, tx, "agent_definitions", names); err != nil {
		return err
	}

	const q = `
		INSERT INTO agent_definitions (name, role, profile)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			role = EXCLUDED.role,
			profile = EXCLUDED.profile,
			updated_at = NOW()`

	for _, a := range agents {
		if _, err := tx.ExecContext(ctx, q, a.Name, a.Role, a.Profile); err != nil {
			return fmt.Errorf("agent %q: %w", a.Name, err)
		}
	}
	return nil
}

func (r *repo) replaceTeams(ctx context.Context, tx *sql.Tx, teams []TeamCommand) error {
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
	}

	if err := deleteMissing(ctx, tx, "team_definitions", names); err != nil {
		return err
	}

	const q = `
		INSERT INTO team_definitions (name, mode, members)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			mode = EXCLUDED.mode,
			members = EXCLUDED.members,
			updated_at = NOW()`

	for _, t := range teams {
		members, err := json.Marshal(t.Members)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q, t.Name, string(t.Mode), members); err != nil {
			return fmt.Errorf("team %q: %w", t.Name, err)
		}
	}
	return nil
}

// deleteMissing removes definitions whose names are absent from the new set,
// so reinstalls never accumulate stale entries from earlier releases.
func deleteMissing(ctx context.Context, tx *sql.Tx, table string, names []string) error {
	keep, err := json.Marshal(names)
	if err != nil {
		return err
	}

	q := fmt.Sprintf(
		"DELETE FROM %s WHERE NOT (name = ANY(SELECT jsonb_array_elements_text($1::jsonb)))",
		table,
	)
	_, err = tx.ExecContext(ctx, q, string(keep))
	return err
}

func (r *repo) Tasks(ctx context.Context) ([]Task, error) {
	const q = `
		SELECT id, name, instruction, tools, requires_confirmation, created_at, updated_at
		FROM task_definitions ORDER BY name ASC`

	return repository.QueryMany(ctx, r.db, q, nil, func(s repository.Scanner) (Task, error) {
		var (
			t     Task
			tools []byte
		)
		if err := s.Scan(&t.ID, &t.Name, &t.Instruction, &tools, &t.RequiresConfirmation, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return t, err
		}
		err := json.Unmarshal(tools, &t.Tools)
		return t, err
	})
}

func (r *repo) Agents(ctx context.Context) ([]Agent, error) {
	const q = `
		SELECT id, name, role, profile, created_at, updated_at
		FROM agent_definitions ORDER BY name ASC`

	return repository.QueryMany(ctx, r.db, q, nil, func(s repository.Scanner) (Agent, error) {
		var a Agent
		err := s.Scan(&a.ID, &a.Name, &a.Role, &a.Profile, &a.CreatedAt, &a.UpdatedAt)
		return a, err
	})
}

func (r *repo) Teams(ctx context.Context) ([]Team, error) {
	const q = `
		SELECT id, name, mode, members, created_at, updated_at
		FROM team_definitions ORDER BY name ASC`

	return repository.QueryMany(ctx, r.db, q, nil, scanTeam)
}

func (r *repo) FindTeam(ctx context.Context, name string) (*Team, error) {
	const q = `
		SELECT id, name, mode, members, created_at, updated_at
		FROM team_definitions WHERE name = $1`

	t, err := repository.QueryOne(ctx, r.db, q, []any{name}, scanTeam)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func scanTeam(s repository.Scanner) (Team, error) {
	var (
		t       Team
		mode    string
		members []byte
	)
	if err := s.Scan(&t.ID, &t.Name, &mode, &members, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return t, err
	}
	t.Mode = ExecutionMode(mode)
	err := json.Unmarshal(members, &t.Members)
	return t, err
}
