package models

import "errors"

// Domain validation errors returned by aggregate constructors and business methods.
var (
	// Task errors
	ErrTaskIDRequired     = errors.New("task ID is required")
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title cannot exceed 200 characters")
	ErrDescriptionTooLong = errors.New("description cannot exceed 5000 characters")
	ErrAssigneeRequired   = errors.New("assigned user ID is required")
	ErrCreatorRequired    = errors.New("creator user ID is required")
	ErrStatusRequired     = errors.New("task status is required")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrPriorityRequired   = errors.New("task priority is required")
	ErrInvalidPriority    = errors.New("invalid task priority")
	ErrInvalidCategory    = errors.New("invalid task category")

	// User errors
	ErrUserIDRequired      = errors.New("user ID is required")
	ErrUsernameRequired    = errors.New("username is required")
	ErrInvalidUsername     = errors.New("username must be 3-50 characters of letters, digits or underscore")
	ErrEmailRequired       = errors.New("email is required")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordHashMissing = errors.New("password hash is required")
	ErrInvalidRole         = errors.New("invalid user role")
)
