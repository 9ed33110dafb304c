package domain

import "github.com/google/uuid"

// TestRun is one intended execution instance of a test. Repetition
// produces multiple runs wrapping the same test; the ID distinguishes
// them in engine output.
type TestRun struct {
	id   string
	test *Test
}

// NewTestRun creates a run instance wrapping test.
func NewTestRun(test *Test) *TestRun {
	return &TestRun{
		id:   uuid.NewString(),
		test: test,
	}
}

// ID returns the run's unique identifier.
func (r *TestRun) ID() string { return r.id }

// Test returns the wrapped test.
func (r *TestRun) Test() *Test { return r.test }
