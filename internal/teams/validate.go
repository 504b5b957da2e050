package teams

import (
	"fmt"
	"strings"
)

// Validate checks a definition set for internal consistency: every task tool
// must exist in toolNames, every team member must reference an agent and a
// task defined in the same set, and execution modes must be recognized.
func Validate(defs Definitions, toolNames []string) error {
	tools := make(map[string]bool, len(toolNames))
	for _, name := range toolNames {
		tools[name] = true
	}

	tasks := make(map[string]bool, len(defs.Tasks))
	for _, task := range defs.Tasks {
		if strings.TrimSpace(task.Name) == "" {
			return fmt.Errorf("%w: task name required", ErrInvalid)
		}
		if tasks[task.Name] {
			return fmt.Errorf("%w: task %q defined twice", ErrInvalid, task.Name)
		}
		tasks[task.Name] = true

		for _, tool := range task.Tools {
			if !tools[tool] {
				return fmt.Errorf("%w: task %q uses tool %q", ErrUnknownRef, task.Name, tool)
			}
		}
	}

	agents := make(map[string]bool, len(defs.Agents))
	for _, agent := range defs.Agents {
		if strings.TrimSpace(agent.Name) == "" {
			return fmt.Errorf("%w: agent name required", ErrInvalid)
		}
		if agents[agent.Name] {
			return fmt.Errorf("%w: agent %q defined twice", ErrInvalid, agent.Name)
		}
		agents[agent.Name] = true
	}

	for _, team := range defs.Teams {
		if strings.TrimSpace(team.Name) == "" {
			return fmt.Errorf("%w: team name required", ErrInvalid)
		}
		if team.Mode != ModeSequential && team.Mode != ModeParallel {
			return fmt.Errorf("%w: team %q has unknown mode %q", ErrInvalid, team.Name, team.Mode)
		}
		if len(team.Members) == 0 {
			return fmt.Errorf("%w: team %q has no members", ErrInvalid, team.Name)
		}
		for _, member := range team.Members {
			if !agents[member.Agent] {
				return fmt.Errorf("%w: team %q references agent %q", ErrUnknownRef, team.Name, member.Agent)
			}
			if !tasks[member.Task] {
				return fmt.Errorf("%w: team %q references task %q", ErrUnknownRef, team.Name, member.Task)
			}
		}
	}

	return nil
}
