package tools

import (
	"context"
	"log/slog"
)

// Registrar provisions the tool catalog into the registry.
type Registrar struct {
	sys    System
	logger *slog.Logger
}

// NewRegistrar creates a registrar over the given registry.
func NewRegistrar(sys System, logger *slog.Logger) *Registrar {
	return &Registrar{
		sys:    sys,
		logger: logger.With("system", "registrar"),
	}
}

// Report records the outcome of a batch registration.
type Report struct {
	Registered []string         `json:"registered"`
	Failed     map[string]error `json:"failed,omitempty"`
}

// OK reports whether every tool registered successfully.
func (r Report) OK() bool {
	return len(r.Failed) == 0
}

// RegisterAll registers every catalog tool, replacing existing bindings with
// the same name. Registration is best-effort: a failing tool is logged and
// recorded in the report, and the remaining tools are still attempted.
func (r *Registrar) RegisterAll(ctx context.Context) Report {
	return r.Register(ctx, Catalog())
}

// Register registers the given bindings with the same best-effort semantics
// as RegisterAll.
func (r *Registrar) Register(ctx context.Context, cmds []UpsertCommand) Report {
	report := Report{
		Registered: make([]string, 0, len(cmds)),
		Failed:     make(map[string]error),
	}

	for _, cmd := range cmds {
		if _, err := r.sys.Upsert(ctx, cmd); err != nil {
			r.logger.Error("tool registration failed", "name", cmd.Name, "error", err)
			report.Failed[cmd.Name] = err
			continue
		}
		report.Registered = append(report.Registered, cmd.Name)
	}

	if len(report.Failed) == 0 {
		report.Failed = nil
	}
	return report
}
