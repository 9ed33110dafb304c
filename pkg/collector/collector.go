// Package collector turns declarative registration calls into the
// test-definition tree: suites and tests with chained modifiers and
// attributes. Construction is single-threaded; the tree is built in one
// synchronous pass before anything executes.
package collector

import (
	"time"

	"github.com/dnxresearch/playwright/pkg/domain"
)

// DefaultTimeout is stamped on newly created tests unless overridden via
// WithDefaultTimeout.
const DefaultTimeout = 10 * time.Second

// SuiteModifier mutates a suite with caller-supplied arguments at build time.
type SuiteModifier func(s *domain.Suite, args ...any)

// SuiteAttribute mutates a suite with no arguments at build time.
type SuiteAttribute func(s *domain.Suite)

// TestModifier mutates a test with caller-supplied arguments at build time.
type TestModifier func(t *domain.Test, args ...any)

// TestAttribute mutates a test with no arguments at build time.
type TestAttribute func(t *domain.Test)

// Collector owns the current-suite cursor during tree construction and
// accumulates every suite and test created, in construction order.
type Collector struct {
	root    *domain.Suite
	current *domain.Suite
	suites  []*domain.Suite
	tests   []*domain.Test

	suiteModifiers  map[string]SuiteModifier
	suiteAttributes map[string]SuiteAttribute
	testModifiers   map[string]TestModifier
	testAttributes  map[string]TestAttribute

	defaultTimeout time.Duration
}

// New creates a collector whose cursor points at a fresh root suite.
func New(opts ...Option) *Collector {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	applyDefaults(options)

	root := domain.NewSuite(nil, "", domain.Location{})
	return &Collector{
		root:            root,
		current:         root,
		suiteModifiers:  make(map[string]SuiteModifier),
		suiteAttributes: make(map[string]SuiteAttribute),
		testModifiers:   make(map[string]TestModifier),
		testAttributes:  make(map[string]TestAttribute),
		defaultTimeout:  options.DefaultTimeout,
	}
}

// Root returns the root suite.
func (c *Collector) Root() *domain.Suite { return c.root }

// Describe registers a suite under the current cursor and synchronously
// runs body with the cursor moved to the new suite. The body may itself
// call Describe and It; nesting depth is unbounded.
func (c *Collector) Describe(name string, body func()) *domain.Suite {
	return c.describe(name, body, nil, domain.CaptureLocation(1))
}

// It registers a test under the current cursor with the collector's
// default timeout. The body is stored, never invoked; execution belongs
// to the engine.
func (c *Collector) It(name string, body domain.TestFunc) *domain.Test {
	return c.it(name, body, nil, domain.CaptureLocation(1))
}

func (c *Collector) describe(name string, body func(), entries []suiteEntry, loc domain.Location) *domain.Suite {
	suite := domain.NewSuite(c.current, name, loc)
	for _, e := range entries {
		e.apply(suite)
	}
	c.current = suite
	if body != nil {
		body()
	}
	c.suites = append(c.suites, suite)
	c.current = suite.ParentSuite()
	return suite
}

func (c *Collector) it(name string, body domain.TestFunc, entries []testEntry, loc domain.Location) *domain.Test {
	test := domain.NewTest(c.current, name, body, loc)
	test.SetTimeout(c.defaultTimeout)
	for _, e := range entries {
		e.apply(test)
	}
	c.tests = append(c.tests, test)
	return test
}

// BeforeAll registers a hook on the current suite's environment.
func (c *Collector) BeforeAll(h domain.Hook) { c.current.Environment().BeforeAll(h) }

// BeforeEach registers a hook on the current suite's environment.
func (c *Collector) BeforeEach(h domain.Hook) { c.current.Environment().BeforeEach(h) }

// AfterAll registers a hook on the current suite's environment.
func (c *Collector) AfterAll(h domain.Hook) { c.current.Environment().AfterAll(h) }

// AfterEach registers a hook on the current suite's environment.
func (c *Collector) AfterEach(h domain.Hook) { c.current.Environment().AfterEach(h) }

// UseEnvironment attaches env to the current suite and returns it.
func (c *Collector) UseEnvironment(env *domain.Environment) *domain.Environment {
	return c.current.AddEnvironment(env)
}

// AddSuiteModifier registers fn under name for subsequently chained
// suites. Registering an existing name replaces it; already-built suites
// are unaffected.
func (c *Collector) AddSuiteModifier(name string, fn SuiteModifier) {
	c.suiteModifiers[name] = fn
}

// AddSuiteAttribute registers fn under name for subsequently chained suites.
func (c *Collector) AddSuiteAttribute(name string, fn SuiteAttribute) {
	c.suiteAttributes[name] = fn
}

// AddTestModifier registers fn under name for subsequently chained tests.
func (c *Collector) AddTestModifier(name string, fn TestModifier) {
	c.testModifiers[name] = fn
}

// AddTestAttribute registers fn under name for subsequently chained tests.
func (c *Collector) AddTestAttribute(name string, fn TestAttribute) {
	c.testAttributes[name] = fn
}

// Tests returns every test ever created, in construction order.
func (c *Collector) Tests() []*domain.Test { return c.tests }

// Suites returns every suite ever created. A suite is appended after its
// body has run, so nested suites precede their parents.
func (c *Collector) Suites() []*domain.Suite { return c.suites }
