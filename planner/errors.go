package planner

import "errors"

// ErrMissingSpmCapacity indicates Run/DryRun was called without
// WithSpmCapacity; the backend-provided capacity has no safe default.
var ErrMissingSpmCapacity = errors.New("planner: spm capacity not configured")
