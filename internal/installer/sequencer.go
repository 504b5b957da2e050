package installer

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/adbstack/agent-tools/internal/compartments"
	"github.com/adbstack/agent-tools/internal/configstore"
	"github.com/adbstack/agent-tools/internal/teams"
	"github.com/adbstack/agent-tools/internal/tools"
)

// ToolRegistrar provisions the tool catalog during install.
type ToolRegistrar interface {
	RegisterAll(ctx context.Context) tools.Report
}

// Resolver resolves compartment names against the tenancy during install.
type Resolver interface {
	ResolveOCID(ctx context.Context, name string) (*compartments.Resolution, error)
}

// Options configures an install run.
type Options struct {
	Agent   string
	Profile string
	Params  SetupParams
}

// Sequencer runs the installation steps in order: privilege preflight, schema
// migration, configuration seeding, definition provisioning, and tool
// registration. Setup failures abort the run; registration failures do not.
type Sequencer struct {
	db        *sql.DB
	store     configstore.System
	defs      teams.System
	registrar ToolRegistrar
	resolver  Resolver
	logger    *slog.Logger

	preflight func(ctx context.Context, db *sql.DB) error
	migrate   func(db *sql.DB) error
}

// NewSequencer creates an installer over the given systems. resolver may be
// nil when no cloud client is available; compartment names are then stored
// without OCID resolution.
func NewSequencer(
	db *sql.DB,
	store configstore.System,
	defs teams.System,
	reg ToolRegistrar,
	resolver Resolver,
	logger *slog.Logger,
) *Sequencer {
	return &Sequencer{
		db:        db,
		store:     store,
		defs:      defs,
		registrar: reg,
		resolver:  resolver,
		logger:    logger.With("system", "installer"),
		preflight: checkPrivileges,
		migrate:   runMigrations,
	}
}

// Run executes the installation sequence for opts.Agent. It returns an error
// wrapping ErrSetup when a fatal step fails; tool registration failures are
// logged and reported but never abort the run.
func (s *Sequencer) Run(ctx context.Context, opts Options) error {
	if opts.Agent == "" {
		return fmt.Errorf("%w: agent required", ErrSetup)
	}
	if opts.Profile == "" {
		opts.Profile = "GENAI"
	}

	s.logger.Info("checking privileges")
	if err := s.preflight(ctx, s.db); err != nil {
		return fmt.Errorf("%w: privilege check: %v", ErrSetup, err)
	}

	s.logger.Info("applying schema")
	if err := s.migrate(s.db); err != nil {
		return fmt.Errorf("%w: schema: %v", ErrSetup, err)
	}

	s.logger.Info("seeding configuration", "agent", opts.Agent)
	if err := s.applyConfig(ctx, opts.Agent, opts.Params); err != nil {
		return fmt.Errorf("%w: configuration: %v", ErrSetup, err)
	}

	s.logger.Info("installing definitions", "agent", opts.Agent)
	defs := DefaultDefinitions(opts.Agent, opts.Profile)
	names := make([]string, 0, len(tools.Catalog()))
	for _, cmd := range tools.Catalog() {
		names = append(names, cmd.Name)
	}
	if err := teams.Validate(defs, names); err != nil {
		return fmt.Errorf("%w: definitions: %v", ErrSetup, err)
	}
	if err := s.defs.ReplaceAll(ctx, defs); err != nil {
		return fmt.Errorf("%w: definitions: %v", ErrSetup, err)
	}

	s.logger.Info("registering tools")
	report := s.registrar.RegisterAll(ctx)
	if !report.OK() {
		for name, err := range report.Failed {
			s.logger.Warn("tool not registered", "name", name, "error", err)
		}
	}
	s.logger.Info("install complete",
		"registered", len(report.Registered),
		"failed", len(report.Failed),
	)
	return nil
}

// applyConfig upserts only the configuration keys present in params. When a
// compartment name arrives without an OCID, the OCID is resolved against the
// live tenancy; resolution failure stores the name alone and warns, so a
// later resolve call can still succeed once connectivity returns.
func (s *Sequencer) applyConfig(ctx context.Context, agent string, params SetupParams) error {
	set := func(key, value string) error {
		_, err := s.store.Set(ctx, configstore.SetCommand{
			Key:   key,
			Value: value,
			Agent: agent,
		})
		return err
	}

	if params.CredentialName != "" {
		if err := set(configstore.KeyCredentialName, params.CredentialName); err != nil {
			return err
		}
	}

	if params.CompartmentName != "" {
		if err := set(configstore.KeyCompartmentName, params.CompartmentName); err != nil {
			return err
		}
	}

	ocid := params.CompartmentOCID
	if ocid == "" && params.CompartmentName != "" && s.resolver != nil {
		res, err := s.resolver.ResolveOCID(ctx, params.CompartmentName)
		if err != nil {
			s.logger.Warn("compartment not resolved during install",
				"name", params.CompartmentName,
				"error", err,
			)
		} else {
			ocid = res.OCID
		}
	}
	if ocid != "" {
		if err := set(configstore.KeyCompartmentOCID, ocid); err != nil {
			return err
		}
	}

	if params.UseResourcePrincipal != nil {
		value := strconv.FormatBool(*params.UseResourcePrincipal)
		if err := set(configstore.KeyEnableResourcePrincipal, value); err != nil {
			return err
		}
	}

	return nil
}
