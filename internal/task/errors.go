package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrProjectsUnavailable = errors.New("failed to list projects")
)
