package constants

// Context keys shared between middleware and handlers.
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

// Pagination bounds.
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Validation bounds.
const (
	MinPasswordLength = 8
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MaxTitleLength    = 200
	MaxDescriptionLen = 5000
	MaxEstimatedHours = 1000
	MaxActualHours    = 2000
)
