package tools

import (
	"errors"

	"github.com/adbstack/agent-tools/internal/compartments"
	"github.com/adbstack/agent-tools/internal/configstore"
	"github.com/adbstack/agent-tools/internal/credentials"
)

// Status discriminates tool invocation outcomes. Orchestrators inspect this
// field rather than relying on transport-level errors.
type Status string

// Invocation statuses.
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ErrorKind classifies an invocation failure so the orchestrator can choose
// a remediation: fix configuration, re-check a name, or retry the remote call.
type ErrorKind string

// Failure classifications.
const (
	KindConfigurationMissing ErrorKind = "configuration_missing"
	KindNotFound             ErrorKind = "not_found"
	KindRemoteFailure        ErrorKind = "remote_operation_failure"
	KindSetupFailure         ErrorKind = "setup_failure"
)

// Result is the envelope every tool invocation returns. Data carries the
// operation's concrete payload on success and is omitted on failure.
type Result[T any] struct {
	Status  Status    `json:"status"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"error_kind,omitempty"`
	Data    T         `json:"data,omitempty"`
}

// Success creates a successful result with the given message and payload.
func Success[T any](message string, data T) Result[T] {
	return Result[T]{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// Failure creates an error result with the given classification and message.
func Failure[T any](kind ErrorKind, message string) Result[T] {
	return Result[T]{
		Status:  StatusError,
		Message: message,
		Kind:    kind,
	}
}

// Wrap converts a (payload, error) pair into a result envelope, classifying
// the error through KindOf.
func Wrap[T any](data T, message string, err error) Result[T] {
	if err != nil {
		return Failure[T](KindOf(err), err.Error())
	}
	return Success(message, data)
}

// KindOf classifies an error from the resolver and registry layers.
// Unrecognized errors default to remote failure, the most common failure
// mode in a thin-wrapper system.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, credentials.ErrConfigurationMissing):
		return KindConfigurationMissing
	case errors.Is(err, compartments.ErrNotFound),
		errors.Is(err, configstore.ErrNotFound),
		errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindRemoteFailure
	}
}
