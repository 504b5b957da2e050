// Package teams provides task, agent, and team definitions: the named units
// an LLM orchestrator executes. Definitions are replaced wholesale on every
// install run; there is no incremental migration between versions.
package teams

import (
	"time"

	"github.com/google/uuid"
)

// ExecutionMode determines how a team runs its members.
type ExecutionMode string

// Supported execution modes.
const (
	ModeSequential ExecutionMode = "sequential"
	ModeParallel   ExecutionMode = "parallel"
)

// Task represents a stored task definition: instruction text, the tools the
// task may select between, and whether destructive operations require a
// prior human confirmation.
type Task struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Instruction          string    `json:"instruction"`
	Tools                []string  `json:"tools"`
	RequiresConfirmation bool      `json:"requires_confirmation"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Agent represents a stored agent definition: a role persona bound to an AI
// profile identifier.
type Agent struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Profile   string    `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member pairs an agent with the task it performs within a team.
type Member struct {
	Agent string `json:"agent"`
	Task  string `json:"task"`
}

// Team represents a stored team definition: one or more (agent, task) pairs
// and an execution mode.
type Team struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Mode      ExecutionMode `json:"mode"`
	Members   []Member      `json:"members"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TaskCommand contains the data required to define a task.
type TaskCommand struct {
	Name                 string   `json:"name"`
	Instruction          string   `json:"instruction"`
	Tools                []string `json:"tools"`
	RequiresConfirmation bool     `json:"requires_confirmation"`
}

// AgentCommand contains the data required to define an agent.
type AgentCommand struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Profile string `json:"profile"`
}

// TeamCommand contains the data required to define a team.
type TeamCommand struct {
	Name    string        `json:"name"`
	Mode    ExecutionMode `json:"mode"`
	Members []Member      `json:"members"`
}

// Definitions is the complete definition set an install run provisions.
type Definitions struct {
	Tasks  []TaskCommand  `json:"tasks"`
	Agents []AgentCommand `json:"agents"`
	Teams  []TeamCommand  `json:"teams"`
}
