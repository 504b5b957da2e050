package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/adbstack/agent-tools/internal/compartments"
	"github.com/adbstack/agent-tools/internal/config"
	"github.com/adbstack/agent-tools/internal/configstore"
	"github.com/adbstack/agent-tools/internal/credentials"
	"github.com/adbstack/agent-tools/internal/oci"
	"github.com/adbstack/agent-tools/internal/teams"
	"github.com/adbstack/agent-tools/internal/tools"
)

// Modules holds the wired domain handlers.
type Modules struct {
	Config       *configstore.Handler
	Compartments *compartments.Handler
	Tools        *tools.Handler
	Teams        *teams.Handler
}

// NewModules wires every domain system against the database and the cloud
// client and returns the handlers ready to mount.
func NewModules(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*Modules, error) {
	store := configstore.New(db, logger, cfg.Pagination)
	toolSys := tools.New(db, logger, cfg.Pagination)
	teamSys := teams.New(db, logger)

	cloud, err := oci.New(&cfg.Cloud)
	if err != nil {
		return nil, err
	}

	credResolver := credentials.NewResolver(store)
	compResolver := compartments.NewResolver(cloud, logger, cfg.Cloud.CallTimeoutDuration())

	dispatcher := tools.NewDispatcher(logger)
	ops := tools.NewOperations(credResolver, compResolver, cloud, store, logger)
	ops.BindAll(dispatcher)

	registrar := tools.NewRegistrar(toolSys, logger)

	return &Modules{
		Config:       configstore.NewHandler(store, logger, cfg.Pagination),
		Compartments: compartments.NewHandler(compResolver, logger),
		Tools:        tools.NewHandler(toolSys, dispatcher, registrar, logger, cfg.Pagination),
		Teams:        teams.NewHandler(teamSys, logger),
	}, nil
}

// Mount registers every handler's routes on the mux.
func (m *Modules) Mount(mux *http.ServeMux) {
	m.Config.Mount(mux)
	m.Compartments.Mount(mux)
	m.Tools.Mount(mux)
	m.Teams.Mount(mux)
}
