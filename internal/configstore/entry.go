// Package configstore provides the per-agent configuration store. Each entry
// is an opaque value scoped by (key, agent), so multiple agents in the same
// database never collide. Entries are written by the installer or explicit
// reconfiguration and read live on every resolution call.
package configstore

import (
	"time"

	"github.com/google/uuid"
)

// Recognized configuration keys.
const (
	KeyCredentialName          = "CREDENTIAL_NAME"
	KeyCompartmentName         = "COMPARTMENT_NAME"
	KeyCompartmentOCID         = "COMPARTMENT_OCID"
	KeyEnableResourcePrincipal = "ENABLE_RESOURCE_PRINCIPAL"
)

// Entry represents a single configuration value owned by an agent.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Agent     string    `json:"agent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetCommand contains the data required to create or replace a configuration entry.
type SetCommand struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Agent string `json:"agent"`
}
