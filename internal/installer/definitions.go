package installer

import (
	"github.com/adbstack/agent-tools/internal/teams"
	"github.com/adbstack/agent-tools/internal/tools"
)

// DefaultDefinitions builds the task, agent, and team definitions an install
// run provisions for the target agent namespace. The task enumerates every
// catalog tool; destructive operations require explicit user confirmation,
// enforced through the task instruction the orchestrator follows.
func DefaultDefinitions(agent, profile string) teams.Definitions {
	catalog := tools.Catalog()
	names := make([]string, len(catalog))
	for i, cmd := range catalog {
		names[i] = cmd.Name
	}

	task := teams.TaskCommand{
		Name: agent + "_task",
		Instruction: "You manage cloud resources on behalf of the user. " +
			"Resolve compartment names to OCIDs before acting on resources. " +
			"Before any operation that creates, modifies, or deletes a resource, " +
			"describe what will happen and ask the user to confirm. " +
			"Never proceed with a destructive operation without explicit confirmation.",
		Tools:                names,
		RequiresConfirmation: true,
	}

	agentDef := teams.AgentCommand{
		Name:    agent + "_agent",
		Role:    "A cloud infrastructure assistant that provisions and inspects tenancy resources using the registered tools.",
		Profile: profile,
	}

	team := teams.TeamCommand{
		Name: agent + "_team",
		Mode: teams.ModeSequential,
		Members: []teams.Member{
			{Agent: agentDef.Name, Task: task.Name},
		},
	}

	return teams.Definitions{
		Tasks:  []teams.TaskCommand{task},
		Agents: []teams.AgentCommand{agentDef},
		Teams:  []teams.TeamCommand{team},
	}
}
