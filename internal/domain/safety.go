package domain

// Verdict is the classifier's judgment for one command string.
type Verdict struct {
	Safe   bool
	Reason string
}

// SafetyMode controls whether Safe-verdict commands run without confirmation.
type SafetyMode int

const (
	// SafetyConfirmAlways asks before every execution.
	SafetyConfirmAlways SafetyMode = 0
	// SafetyAutoRunSafe skips confirmation when the verdict is Safe.
	SafetyAutoRunSafe SafetyMode = 1
)

// AllSafe reports whether every verdict in the plan is Safe.
func AllSafe(verdicts []Verdict) bool {
	for _, v := range verdicts {
		if !v.Safe {
			return false
		}
	}
	return true
}
