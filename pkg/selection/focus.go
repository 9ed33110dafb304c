// Package selection computes what actually runs from a collected tree:
// focus-based narrowing, glob title matching and repeat-based expansion.
// All passes read the fixed ancestry chain; none change tree shape.
package selection

import "github.com/dnxresearch/playwright/pkg/domain"

// FocusedFilter narrows a test list to the subset implied by explicitly
// focused suites and tests. A focus on a suite selects its descendants;
// a focus on a single test selects that test without pulling in its
// unfocused siblings.
type FocusedFilter struct {
	testSet  map[*domain.Test]struct{}
	suiteSet map[*domain.Suite]struct{}
	tests    []*domain.Test
	suites   []*domain.Suite
}

// NewFocusedFilter creates a filter with an empty focus set.
func NewFocusedFilter() *FocusedFilter {
	return &FocusedFilter{
		testSet:  make(map[*domain.Test]struct{}),
		suiteSet: make(map[*domain.Suite]struct{}),
	}
}

// MarkFocused records entity as explicitly focused. Marking the same
// entity twice is a no-op; entities that are neither suites nor tests
// are ignored.
func (f *FocusedFilter) MarkFocused(entity domain.Entity) {
	switch e := entity.(type) {
	case *domain.Suite:
		if _, ok := f.suiteSet[e]; !ok {
			f.suiteSet[e] = struct{}{}
			f.suites = append(f.suites, e)
		}
	case *domain.Test:
		if _, ok := f.testSet[e]; !ok {
			f.testSet[e] = struct{}{}
			f.tests = append(f.tests, e)
		}
	}
}

// HasFocusedTestsOrSuites reports whether anything is focused.
func (f *FocusedFilter) HasFocusedTestsOrSuites() bool {
	return len(f.testSet) > 0 || len(f.suiteSet) > 0
}

// FocusedTests returns the directly focused tests in marking order.
func (f *FocusedFilter) FocusedTests() []*domain.Test { return f.tests }

// FocusedSuites returns the directly focused suites in marking order.
func (f *FocusedFilter) FocusedSuites() []*domain.Suite { return f.suites }

// Filter returns the tests that should execute given the focus marks.
// With nothing focused the input is returned as is. Focused tests and
// focused ancestor suites are un-skipped and reset to ExpectationOk.
// The result preserves input order and is always a subsequence of the
// input.
func (f *FocusedFilter) Filter(tests []*domain.Test) []*domain.Test {
	if !f.HasFocusedTestsOrSuites() {
		return tests
	}

	// Every ancestor of a directly focused test is poisoned: a suite in
	// this set no longer selects its other descendants, otherwise
	// focusing one test would drag in its siblings through the shared
	// parent.
	ignored := make(map[*domain.Suite]struct{})
	for _, t := range tests {
		_, focused := f.testSet[t]
		if focused {
			t.SetSkipped(false)
			t.SetExpectation(domain.ExpectationOk)
		}
		for s := t.Suite(); s != nil; s = s.ParentSuite() {
			if _, ok := f.suiteSet[s]; ok {
				s.SetSkipped(false)
				s.SetExpectation(domain.ExpectationOk)
			}
			if focused {
				ignored[s] = struct{}{}
			}
		}
	}

	var selected []*domain.Test
	for _, t := range tests {
		if _, ok := f.testSet[t]; ok {
			selected = append(selected, t)
			continue
		}
		for s := t.Suite(); s != nil; s = s.ParentSuite() {
			if _, ok := f.suiteSet[s]; !ok {
				continue
			}
			if _, ok := ignored[s]; ok {
				continue
			}
			selected = append(selected, t)
			break
		}
	}
	return selected
}
