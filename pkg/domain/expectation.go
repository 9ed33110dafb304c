// Package domain defines the entities of the test-definition tree.
package domain

// Expectation classifies the anticipated outcome of a suite or test,
// independent of its skip state.
type Expectation string

const (
	// ExpectationOk means the entity is expected to pass.
	ExpectationOk Expectation = "ok"
	// ExpectationFail means the entity is expected to fail.
	ExpectationFail Expectation = "fail"
	// ExpectationFixme marks a known-broken entity awaiting a fix.
	ExpectationFixme Expectation = "fixme"
)

// Entity is the minimal contract shared by suites and tests that the
// selection passes rely on.
type Entity interface {
	SetSkipped(bool)
	SetExpectation(Expectation)
}

var (
	_ Entity = (*Suite)(nil)
	_ Entity = (*Test)(nil)
)
