// Package domain defines core entities and value objects for termai.
//
// The domain layer is independent of infrastructure concerns and represents
// pure data structures plus the few pure functions that operate on them.
package domain

import (
	"errors"
	"strings"
)

// CommandStep is a single shell command produced by the oracle.
type CommandStep string

// ErrEmptyPlan is returned when the oracle output contains no usable command.
var ErrEmptyPlan = errors.New("oracle returned no usable command")

// PlaceholderCommand stands in for oracle output when generation fails, so
// downstream flows always have a visibly-labeled command to show instead of
// crashing.
const PlaceholderCommand = "echo 'Error: No command generated'"

// SplitPlan turns raw oracle output into an ordered list of command steps.
// Blank lines are discarded, order is preserved and duplicates are kept.
// A plan with zero steps is an error, not an empty success.
func SplitPlan(raw string) ([]CommandStep, error) {
	var steps []CommandStep
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		steps = append(steps, CommandStep(line))
	}
	if len(steps) == 0 {
		return nil, ErrEmptyPlan
	}
	return steps, nil
}
