package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/adbstack/agent-tools/internal/compartments"
	"github.com/adbstack/agent-tools/internal/configstore"
	"github.com/adbstack/agent-tools/internal/credentials"
	"github.com/adbstack/agent-tools/pkg/decode"
)

// Operations implements the in-process target operations: configuration
// access and compartment resolution. The remaining catalog targets are
// control-plane pass-throughs bound via BindAccepted.
type Operations struct {
	cred   *credentials.Resolver
	comp   *compartments.Resolver
	lister compartments.Lister
	store  configstore.System
	logger *slog.Logger
}

// NewOperations creates the in-process operation set.
func NewOperations(
	cred *credentials.Resolver,
	comp *compartments.Resolver,
	lister compartments.Lister,
	store configstore.System,
	logger *slog.Logger,
) *Operations {
	return &Operations{
		cred:   cred,
		comp:   comp,
		lister: lister,
		store:  store,
		logger: logger.With("system", "operations"),
	}
}

// BindAll binds every implemented operation plus the accepted pass-throughs
// for the rest of the catalog.
func (o *Operations) BindAll(d *Dispatcher) {
	d.Bind(OpResolveCompartment, o.ResolveCompartment)
	d.Bind(OpListCompartments, o.ListCompartments)
	d.Bind(OpGetConfig, o.GetConfig)
	d.Bind(OpSetConfig, o.SetConfig)

	for _, cmd := range Catalog() {
		if _, bound := d.ops[cmd.TargetOperation]; !bound {
			d.BindAccepted(cmd.TargetOperation)
		}
	}
}

type resolveCompartmentParams struct {
	CompartmentName string `json:"compartment_name"`
}

// ResolveCompartment resolves a compartment name to its OCID after
// verifying the caller's authentication configuration.
func (o *Operations) ResolveCompartment(ctx context.Context, inv Invocation) (any, error) {
	if err := o.checkAuth(ctx, inv); err != nil {
		return nil, err
	}

	params, err := decode.FromMap[resolveCompartmentParams](inv.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if params.CompartmentName == "" {
		return nil, fmt.Errorf("%w: compartment_name required", ErrInvalidParams)
	}

	return o.comp.ResolveOCID(ctx, params.CompartmentName)
}

// ListCompartments lists the active compartments in the tenancy.
func (o *Operations) ListCompartments(ctx context.Context, inv Invocation) (any, error) {
	if err := o.checkAuth(ctx, inv); err != nil {
		return nil, err
	}

	all, err := o.lister.ListCompartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", compartments.ErrRemote, err)
	}
	return all, nil
}

type configParams struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}

// GetConfig reads a configuration entry for the calling agent.
func (o *Operations) GetConfig(ctx context.Context, inv Invocation) (any, error) {
	params, err := decode.FromMap[configParams](inv.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return o.store.Get(ctx, inv.Agent, params.Key)
}

// SetConfig creates or replaces a configuration entry for the calling agent.
func (o *Operations) SetConfig(ctx context.Context, inv Invocation) (any, error) {
	params, err := decode.FromMap[configParams](inv.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	return o.store.Set(ctx, configstore.SetCommand{
		Key:   params.Key,
		Value: params.Value,
		Agent: inv.Agent,
	})
}

// checkAuth verifies the caller can authenticate to the cloud: either the
// agent runs in resource principal mode, or a credential must resolve.
func (o *Operations) checkAuth(ctx context.Context, inv Invocation) error {
	entry, err := o.store.Get(ctx, inv.Agent, configstore.KeyEnableResourcePrincipal)
	if err == nil {
		if enabled, parseErr := strconv.ParseBool(entry.Value); parseErr == nil && enabled {
			return nil
		}
	} else if !errors.Is(err, configstore.ErrNotFound) {
		return err
	}

	_, err = o.cred.Resolve(ctx, inv.Credential, credentials.Caller{Agent: inv.Agent})
	return err
}
