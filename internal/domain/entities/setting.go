package entities

// StepResult is the outcome of one smoke test step.
type StepResult struct {
	Name   string
	Passed bool
	Status int
	Detail string
}

// SmokeResult aggregates every step of a smoke run.
type SmokeResult struct {
	Steps []StepResult
}

// Passed returns the number of successful steps.
func (r *SmokeResult) Passed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Passed {
			n++
		}
	}
	return n
}

// Failed returns the number of failed steps.
func (r *SmokeResult) Failed() int {
	return len(r.Steps) - r.Passed()
}
