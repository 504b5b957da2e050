package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/adbstack/agent-tools/internal/compartments"
	"github.com/adbstack/agent-tools/internal/config"
	"github.com/adbstack/agent-tools/internal/configstore"
	"github.com/adbstack/agent-tools/internal/installer"
	"github.com/adbstack/agent-tools/internal/oci"
	"github.com/adbstack/agent-tools/internal/teams"
	"github.com/adbstack/agent-tools/internal/tools"
	"github.com/adbstack/agent-tools/pkg/pagination"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn        = flag.String("dsn", "", "Database connection string")
		agent      = flag.String("agent", "", "Agent namespace to install (required)")
		profile    = flag.String("profile", "GENAI", "AI profile assigned to the default agent")
		params     = flag.String("config", "", "Setup configuration as inline JSON")
		paramsFile = flag.String("config-file", "", "Setup configuration file (overrides -config)")
	)
	flag.Parse()

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}
	if *agent == "" {
		log.Fatal("agent namespace required: use -agent flag")
	}

	payload := *params
	if *paramsFile != "" {
		data, err := os.ReadFile(*paramsFile)
		if err != nil {
			log.Fatalf("failed to read config file: %v", err)
		}
		payload = string(data)
	}

	setup, err := installer.ParseParams(payload)
	if err != nil {
		log.Fatalf("invalid setup configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	var page pagination.Config
	if err := page.Finalize(); err != nil {
		log.Fatalf("pagination defaults: %v", err)
	}

	store := configstore.New(db, logger, page)
	toolSys := tools.New(db, logger, page)
	teamSys := teams.New(db, logger)
	registrar := tools.NewRegistrar(toolSys, logger)

	seq := installer.NewSequencer(
		db,
		store,
		teamSys,
		registrar,
		cloudResolver(logger),
		logger,
	)

	err = seq.Run(context.Background(), installer.Options{
		Agent:   *agent,
		Profile: *profile,
		Params:  setup,
	})
	if err != nil {
		log.Fatalf("install failed: %v", err)
	}

	fmt.Printf("install completed for agent %s\n", *agent)
}

// cloudResolver builds a compartment resolver when cloud credentials are
// available. Installation proceeds without one: compartment names are then
// stored unresolved and looked up later by the running service.
func cloudResolver(logger *slog.Logger) installer.Resolver {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("no service configuration; skipping compartment resolution", "error", err)
		return nil
	}
	if err := cfg.Finalize(); err != nil {
		logger.Warn("invalid service configuration; skipping compartment resolution", "error", err)
		return nil
	}

	cloud, err := oci.New(&cfg.Cloud)
	if err != nil {
		logger.Warn("cloud client unavailable; skipping compartment resolution", "error", err)
		return nil
	}

	return compartments.NewResolver(cloud, logger, cfg.Cloud.CallTimeoutDuration())
}
