package installer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// checkPrivileges verifies the connected role can create objects in the
// public schema before any step runs, so a missing grant fails the install
// up front instead of partway through.
func checkPrivileges(ctx context.Context, db *sql.DB) error {
	var ok bool
	err := db.QueryRowContext(ctx,
		`SELECT has_schema_privilege(current_user, 'public', 'CREATE')`,
	).Scan(&ok)
	if err != nil {
		return fmt.Errorf("query schema privilege: %w", err)
	}
	if !ok {
		return errors.New("role lacks CREATE on schema public")
	}
	return nil
}
