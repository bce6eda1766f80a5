package pipeline

import (
	"github.com/pkg/errors"
)

// Routine, caller-recoverable conditions of the pipeline. Compared with
// errors.Is by the API layer to pick the response code.
var (
	// ErrEmptySelection: bundle creation attempted with zero candidates.
	ErrEmptySelection = errors.New("bundle requires at least one candidate")
	// ErrInvalidTransition: transition requested from a terminal state or
	// skipping a funnel stage.
	ErrInvalidTransition = errors.New("status transition not allowed")
	// ErrNotFound: referenced bundle, job or candidate does not exist.
	ErrNotFound = errors.New("record not found")
)
