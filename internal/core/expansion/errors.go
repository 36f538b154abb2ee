package expansion

import "errors"

var (
	ErrSessionClosed          = errors.New("generation session is closed")
	ErrAnchorDateRequired     = errors.New("anchor date is required")
	ErrNoFinalTasks           = errors.New("no tasks left to generate")
	ErrIndexOutOfRange        = errors.New("task index out of range")
	ErrMissingRequiredOptions = errors.New("required options are missing")
	ErrProjectRequired        = errors.New("project id is required")
)
