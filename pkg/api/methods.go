package api

const (
	MethodListWorkflows      = "list_workflows"
	MethodCreateWorkflow     = "create_workflow"
	MethodUpdateWorkflow     = "update_workflow"
	MethodDeleteWorkflow     = "delete_workflow"
	MethodRunWorkflow        = "run_workflow"
	MethodGetExecutionStatus = "get_execution_status"
)

// Methods returns the supported method names in discovery order
func Methods() []string {
	return []string{
		MethodListWorkflows,
		MethodCreateWorkflow,
		MethodUpdateWorkflow,
		MethodDeleteWorkflow,
		MethodRunWorkflow,
		MethodGetExecutionStatus,
	}
}
