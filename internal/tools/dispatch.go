package tools

import (
	"context"
	"fmt"
	"log/slog"
)

// Target operation identifiers implemented in-process.
const (
	OpResolveCompartment = "compartments.resolve"
	OpListCompartments   = "compartments.list"
	OpGetConfig          = "config.get"
	OpSetConfig          = "config.set"
)

// Invocation carries the inputs of a single tool call.
type Invocation struct {
	// Agent is the tool-group namespace the call executes under.
	Agent string `json:"agent"`

	// Credential optionally overrides the agent's configured credential.
	Credential string `json:"credential,omitempty"`

	// Params holds operation-specific arguments.
	Params map[string]any `json:"params,omitempty"`
}

// Operation executes a target operation and returns its payload.
type Operation func(ctx context.Context, inv Invocation) (any, error)

// Dispatcher routes target operation references to their implementations.
type Dispatcher struct {
	ops    map[string]Operation
	logger *slog.Logger
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		ops:    make(map[string]Operation),
		logger: logger.With("system", "dispatch"),
	}
}

// Bind associates a target operation reference with its implementation.
func (d *Dispatcher) Bind(target string, op Operation) {
	d.ops[target] = op
}

// BindAccepted binds targets whose work is carried out by the cloud control
// plane. The operation returns immediately once the request is accepted;
// callers poll the resource's own status API separately.
func (d *Dispatcher) BindAccepted(targets ...string) {
	for _, target := range targets {
		t := target
		d.Bind(t, func(ctx context.Context, inv Invocation) (any, error) {
			return map[string]any{"target": t, "accepted": true}, nil
		})
	}
}

// Dispatch executes the operation a binding targets, converting the outcome
// into a result envelope. Errors never propagate past this boundary.
func (d *Dispatcher) Dispatch(ctx context.Context, target string, inv Invocation) Result[any] {
	op, ok := d.ops[target]
	if !ok {
		return Failure[any](KindNotFound, fmt.Sprintf("%v: %q", ErrUnknownTarget, target))
	}

	data, err := op(ctx, inv)
	if err != nil {
		d.logger.Warn("operation failed", "target", target, "agent", inv.Agent, "error", err)
		return Failure[any](KindOf(err), err.Error())
	}

	return Success("operation completed", data)
}
