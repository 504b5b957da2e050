// Package credentials resolves the cloud credential an operation should use.
// Resolution precedence: an explicit credential always wins, otherwise the
// calling agent's stored CREDENTIAL_NAME is used. Results are never cached;
// configuration may change between invocations within the same session.
package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/adbstack/agent-tools/internal/configstore"
)

// Caller identifies who is invoking a resolver. It replaces ambient
// session-state lookup so resolution stays testable without a live session.
type Caller struct {
	// Agent is the tool-group namespace owning the configuration.
	Agent string

	// User is the database user the call executes as.
	User string
}

// Resolver resolves credentials against the configuration store.
type Resolver struct {
	store configstore.System
}

// NewResolver creates a credential resolver backed by the given store.
func NewResolver(store configstore.System) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the credential name for an operation. A non-empty explicit
// credential is returned unchanged. Otherwise the caller's stored
// CREDENTIAL_NAME is consulted. ErrConfigurationMissing is returned when
// neither source yields a value.
func (r *Resolver) Resolve(ctx context.Context, explicit string, caller Caller) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	entry, err := r.store.Get(ctx, caller.Agent, configstore.KeyCredentialName)
	if err != nil {
		if errors.Is(err, configstore.ErrNotFound) {
			return "", fmt.Errorf("%w: no credential configured for agent %q", ErrConfigurationMissing, caller.Agent)
		}
		return "", fmt.Errorf("read credential for agent %q: %w", caller.Agent, err)
	}

	if entry.Value == "" {
		return "", fmt.Errorf("%w: empty credential configured for agent %q", ErrConfigurationMissing, caller.Agent)
	}
	return entry.Value, nil
}
