// Package tools provides the tool registry: named, instruction-annotated
// bindings an LLM orchestrator selects between. Each binding pairs a unique
// name with natural-language usage guidance and a reference to the
// underlying operation. Registration is idempotent; re-registering a name
// replaces its instruction and target.
package tools

import (
	"time"

	"github.com/google/uuid"
)

// Binding represents a registered tool.
type Binding struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Instruction     string    `json:"instruction"`
	TargetOperation string    `json:"target_operation"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UpsertCommand contains the data required to register or replace a tool binding.
type UpsertCommand struct {
	Name            string `json:"name"`
	Instruction     string `json:"instruction"`
	TargetOperation string `json:"target_operation"`
	Description     string `json:"description"`
}
