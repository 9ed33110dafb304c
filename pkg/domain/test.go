package domain

import (
	"context"
	"strings"
	"time"
)

// UnboundedTimeout is the finite stand-in stored when a timeout of zero
// is requested. Zero means "effectively no limit", but the execution
// engine always receives a concrete deadline to enforce.
const UnboundedTimeout = 100000 * time.Second

// TestFunc is the deferred body of a test. Bodies are never invoked
// during tree construction; the execution engine calls them with a
// context carrying the test's deadline.
type TestFunc func(ctx context.Context) error

// Test is a leaf node of the test tree: one runnable unit with a
// deferred body and a timeout.
type Test struct {
	name        string
	location    Location
	suite       *Suite
	body        TestFunc
	timeout     time.Duration
	skipped     bool
	expectation Expectation
}

// NewTest creates a test owned by suite. The body is stored, not run.
func NewTest(suite *Suite, name string, body TestFunc, location Location) *Test {
	return &Test{
		name:        name,
		location:    location,
		suite:       suite,
		body:        body,
		expectation: ExpectationOk,
	}
}

// Name returns the test's display name.
func (t *Test) Name() string { return t.name }

// Location returns where the test was declared.
func (t *Test) Location() Location { return t.location }

// Suite returns the owning suite.
func (t *Test) Suite() *Suite { return t.suite }

// Body returns the deferred test body.
func (t *Test) Body() TestFunc { return t.body }

// SetTimeout sets the test's timeout. Zero maps to UnboundedTimeout.
func (t *Test) SetTimeout(d time.Duration) {
	if d == 0 {
		d = UnboundedTimeout
	}
	t.timeout = d
}

// Timeout returns the test's effective timeout.
func (t *Test) Timeout() time.Duration { return t.timeout }

// SetSkipped sets whether the test is excluded from execution.
func (t *Test) SetSkipped(skipped bool) { t.skipped = skipped }

// Skipped reports whether the test is marked skipped.
func (t *Test) Skipped() bool { return t.skipped }

// SetExpectation sets the anticipated outcome for the test.
func (t *Test) SetExpectation(e Expectation) { t.expectation = e }

// Expectation returns the anticipated outcome for the test.
func (t *Test) Expectation() Expectation { return t.expectation }

// TitlePath returns the ancestor suite names, outermost first, ending
// with the test's own name.
func (t *Test) TitlePath() []string {
	return append(t.suite.TitlePath(), t.name)
}

// FullTitle joins the title path with slashes, the form matched by glob
// based selection.
func (t *Test) FullTitle() string {
	return strings.Join(t.TitlePath(), "/")
}
