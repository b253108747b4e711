package messages

// Post-install usage help.
const (
	InstallUsageCommands = `  /start-work - Initialize new work items
    Example: /start-work mdo-123 api-refactor
    Example: /start-work "" my-feature (auto-number)

  /create-plan - Create detailed phase plans
    Example: /create-plan

  /run-plan - Execute PLAN.md files
    Example: /run-plan .planning/ID-01-feature/phases/01-01-PLAN.md
`
	InstallQuickStartSteps = `  1. /start-work - Initialize work item
  2. /create-plan - Create detailed plans
  3. /run-plan <path> - Execute plans
`
)
