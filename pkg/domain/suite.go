package domain

// Suite is a named container node in the test tree. Suites nest suites
// and tests; each suite belongs to exactly one parent, and the root suite
// has no parent, no name and no location.
type Suite struct {
	name         string
	location     Location
	parent       *Suite
	skipped      bool
	expectation  Expectation
	env          *Environment
	environments []*Environment
}

// NewSuite creates a suite under parent. A nil parent creates a root suite.
func NewSuite(parent *Suite, name string, location Location) *Suite {
	return &Suite{
		name:        name,
		location:    location,
		parent:      parent,
		expectation: ExpectationOk,
		env:         &Environment{},
	}
}

// Name returns the suite's display name. Empty for the root suite.
func (s *Suite) Name() string { return s.name }

// Location returns where the suite was declared.
func (s *Suite) Location() Location { return s.location }

// ParentSuite returns the owning suite, or nil for the root.
func (s *Suite) ParentSuite() *Suite { return s.parent }

// Environment returns the suite's own hook registrar.
func (s *Suite) Environment() *Environment { return s.env }

// AddEnvironment attaches an external environment to the suite and
// returns it.
func (s *Suite) AddEnvironment(env *Environment) *Environment {
	s.environments = append(s.environments, env)
	return env
}

// Environments returns the attached external environments in attachment
// order. The suite's own Environment is not included.
func (s *Suite) Environments() []*Environment { return s.environments }

// SetSkipped sets whether the suite and its descendants are excluded from
// execution.
func (s *Suite) SetSkipped(skipped bool) { s.skipped = skipped }

// Skipped reports whether the suite is marked skipped.
func (s *Suite) Skipped() bool { return s.skipped }

// SetExpectation sets the anticipated outcome for the suite.
func (s *Suite) SetExpectation(e Expectation) { s.expectation = e }

// Expectation returns the anticipated outcome for the suite.
func (s *Suite) Expectation() Expectation { return s.expectation }

// TitlePath returns the names of the suite's named ancestors followed by
// its own name, outermost first. The unnamed root contributes nothing.
func (s *Suite) TitlePath() []string {
	if s == nil || s.parent == nil {
		return nil
	}
	return append(s.parent.TitlePath(), s.name)
}
