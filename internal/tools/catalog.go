package tools

// Catalog is the fixed set of tool bindings RegisterAll provisions. The set
// changes between releases (tools added, removed, renamed), which is why
// registration carries replace semantics rather than plain create.
func Catalog() []UpsertCommand {
	return []UpsertCommand{
		{
			Name:            "resolve_compartment",
			Instruction:     "Use this tool to find the OCID of a compartment when the user refers to a compartment by name. Always resolve the compartment before creating or listing cloud resources in it.",
			TargetOperation: OpResolveCompartment,
			Description:     "Resolves a compartment name to its OCID by listing the tenancy's compartments.",
		},
		{
			Name:            "get_agent_config",
			Instruction:     "Use this tool to read a stored configuration value, such as the default credential or compartment, for the current agent.",
			TargetOperation: OpGetConfig,
			Description:     "Reads a configuration entry scoped to the calling agent.",
		},
		{
			Name:            "set_agent_config",
			Instruction:     "Use this tool to store a configuration value for the current agent, for example the default credential name or compartment. Confirm the value with the user before storing it.",
			TargetOperation: OpSetConfig,
			Description:     "Creates or replaces a configuration entry scoped to the calling agent.",
		},
		{
			Name:            "list_compartments",
			Instruction:     "Use this tool to list the compartments available in the tenancy when the user wants to browse compartments or the compartment name is unknown.",
			TargetOperation: OpListCompartments,
			Description:     "Lists the active compartments visible in the tenancy.",
		},
		{
			Name:            "create_bucket",
			Instruction:     "Use this tool to create an object storage bucket. Ask the user for the bucket name and target compartment, and confirm before creating.",
			TargetOperation: "objectstorage.create_bucket",
			Description:     "Creates an object storage bucket in a compartment.",
		},
		{
			Name:            "list_buckets",
			Instruction:     "Use this tool to list the object storage buckets in a compartment.",
			TargetOperation: "objectstorage.list_buckets",
			Description:     "Lists object storage buckets in a compartment.",
		},
		{
			Name:            "create_vault_secret",
			Instruction:     "Use this tool to store a secret in the vault. Never echo the secret value back to the user, and confirm the secret name and vault before storing.",
			TargetOperation: "vault.create_secret",
			Description:     "Creates a secret in a vault.",
		},
		{
			Name:            "get_vault_secret",
			Instruction:     "Use this tool to retrieve a secret from the vault by name.",
			TargetOperation: "vault.get_secret",
			Description:     "Retrieves a vault secret by name.",
		},
		{
			Name:            "create_autonomous_database",
			Instruction:     "Use this tool to provision an Autonomous Database. Ask for the display name, compartment, and workload type, and always confirm with the user before provisioning. Provisioning continues after this tool returns; check status separately.",
			TargetOperation: "adb.create",
			Description:     "Provisions an Autonomous Database in a compartment.",
		},
		{
			Name:            "list_autonomous_databases",
			Instruction:     "Use this tool to list the Autonomous Databases in a compartment.",
			TargetOperation: "adb.list",
			Description:     "Lists Autonomous Databases in a compartment.",
		},
		{
			Name:            "create_network_load_balancer",
			Instruction:     "Use this tool to create a network load balancer. Ask for the display name, compartment, and subnet, and confirm before creating.",
			TargetOperation: "nlb.create",
			Description:     "Creates a network load balancer in a compartment.",
		},
	}
}
