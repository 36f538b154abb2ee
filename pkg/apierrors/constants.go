package apierrors

const (
	MsgUnauthorized     = "unauthorized"
	MsgPermissionDenied = "permissionDenied"

	MsgActorBusinessUnitRequired = "actorBusinessUnitRequired"

	MsgInvalidTemplateID      = "invalidTemplateID"
	MsgInvalidProjectID       = "invalidProjectID"
	MsgInvalidTemplatePayload = "invalidTemplatePayload"
	MsgInvalidBusinessUnit    = "invalidBusinessUnit"
	MsgInvalidListQuery       = "invalidListQuery"
	MsgTemplateNameRequired   = "templateNameRequired"
	MsgTemplateTypeRequired   = "templateTypeRequired"
	MsgTemplateTasksRequired  = "templateTasksRequired"
	MsgTaskTitleRequired      = "taskTitleRequired"
	MsgInvalidPriority        = "invalidPriority"
	MsgInvalidOptionsSchema   = "invalidOptionsSchema"
	MsgNoTemplateChanges      = "noTemplateChanges"
	MsgTemplateNotFound       = "templateNotFound"
	MsgProjectNotFound        = "projectNotFound"

	MsgInvalidPreviewPayload   = "invalidPreviewPayload"
	MsgUnknownOption           = "unknownOption"
	MsgUnknownOptionNamed      = "unknownOptionNamed"
	MsgOptionTypeMismatch      = "optionTypeMismatch"
	MsgOptionTypeMismatchNamed = "optionTypeMismatchNamed"
	MsgAnchorDateRequired      = "anchorDateRequired"

	MsgInvalidGeneratePayload = "invalidGeneratePayload"
	MsgNoTasksToCreate        = "noTasksToCreate"
	MsgInvalidDueDate         = "invalidDueDate"

	MsgFailListTemplates    = "failListTemplates"
	MsgFailGetTemplate      = "failGetTemplate"
	MsgFailCreateTemplate   = "failCreateTemplate"
	MsgFailUpdateTemplate   = "failUpdateTemplate"
	MsgFailDeleteTemplate   = "failDeleteTemplate"
	MsgFailPreviewTemplate  = "failPreviewTemplate"
	MsgFailGenerateTasks    = "failGenerateTasks"
	MsgFailListProjectTasks = "failListProjectTasks"
)
