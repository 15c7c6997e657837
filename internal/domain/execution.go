package domain

// ExitCommandNotFound is the conventional shell exit code for a missing
// executable. A missing target is a normal ExecutionResult, never an error.
const ExitCommandNotFound = 127

// ExecutionResult wraps details from the command executor. It is immutable
// after creation; non-zero exit codes are values, not errors.
type ExecutionResult struct {
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
}

// Success reports whether the command exited cleanly.
func (r ExecutionResult) Success() bool {
	return r.ExitCode == 0
}
