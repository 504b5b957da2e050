package teams_test

import (
	"errors"
	"testing"

	"github.com/adbstack/agent-tools/internal/teams"
)

func validDefinitions() teams.Definitions {
	return teams.Definitions{
		Tasks: []teams.TaskCommand{{
			Name:        "ops_task",
			Instruction: "Manage tenancy resources.",
			Tools:       []string{"resolve_compartment", "list_compartments"},
		}},
		Agents: []teams.AgentCommand{{
			Name:    "ops_agent",
			Role:    "Cloud assistant",
			Profile: "GENAI",
		}},
		Teams: []teams.TeamCommand{{
			Name: "ops_team",
			Mode: teams.ModeSequential,
			Members: []teams.Member{
				{Agent: "ops_agent", Task: "ops_task"},
			},
		}},
	}
}

var toolNames = []string{"resolve_compartment", "list_compartments", "get_agent_config"}

func TestValidate(t *testing.T) {
	if err := teams.Validate(validDefinitions(), toolNames); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*teams.Definitions)
		wantErr error
	}{
		{
			name:    "empty task name",
			mutate:  func(d *teams.Definitions) { d.Tasks[0].Name = "" },
			wantErr: teams.ErrInvalid,
		},
		{
			name: "duplicate task",
			mutate: func(d *teams.Definitions) {
				d.Tasks = append(d.Tasks, d.Tasks[0])
			},
			wantErr: teams.ErrInvalid,
		},
		{
			name: "unknown tool",
			mutate: func(d *teams.Definitions) {
				d.Tasks[0].Tools = []string{"delete_tenancy"}
			},
			wantErr: teams.ErrUnknownRef,
		},
		{
			name: "duplicate agent",
			mutate: func(d *teams.Definitions) {
				d.Agents = append(d.Agents, d.Agents[0])
			},
			wantErr: teams.ErrInvalid,
		},
		{
			name:    "unknown mode",
			mutate:  func(d *teams.Definitions) { d.Teams[0].Mode = "round_robin" },
			wantErr: teams.ErrInvalid,
		},
		{
			name:    "empty team",
			mutate:  func(d *teams.Definitions) { d.Teams[0].Members = nil },
			wantErr: teams.ErrInvalid,
		},
		{
			name: "member references unknown agent",
			mutate: func(d *teams.Definitions) {
				d.Teams[0].Members[0].Agent = "ghost"
			},
			wantErr: teams.ErrUnknownRef,
		},
		{
			name: "member references unknown task",
			mutate: func(d *teams.Definitions) {
				d.Teams[0].Members[0].Task = "ghost"
			},
			wantErr: teams.ErrUnknownRef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs := validDefinitions()
			tt.mutate(&defs)

			err := teams.Validate(defs, toolNames)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ParallelMode(t *testing.T) {
	defs := validDefinitions()
	defs.Teams[0].Mode = teams.ModeParallel

	if err := teams.Validate(defs, toolNames); err != nil {
		t.Errorf("Validate() failed for parallel mode: %v", err)
	}
}
