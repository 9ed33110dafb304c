package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnxresearch/playwright/pkg/domain"
)

// tree is a small fixture: root -> suite -> {tests...}.
func newSuiteWithTests(t *testing.T, names ...string) (*domain.Suite, []*domain.Test) {
	t.Helper()

	root := domain.NewSuite(nil, "", domain.Location{})
	suite := domain.NewSuite(root, "suite", domain.Location{})
	tests := make([]*domain.Test, 0, len(names))
	for _, name := range names {
		tests = append(tests, domain.NewTest(suite, name, nil, domain.Location{}))
	}
	return suite, tests
}

func TestFocusedFilter_EmptyFocusSetIsIdentity(t *testing.T) {
	_, tests := newSuiteWithTests(t, "a", "b", "c")
	f := NewFocusedFilter()

	got := f.Filter(tests)

	assert.Equal(t, tests, got)
	assert.False(t, f.HasFocusedTestsOrSuites())
}

func TestFocusedFilter_FocusedTestSelectsOnlyItself(t *testing.T) {
	_, tests := newSuiteWithTests(t, "focused", "sibling")
	f := NewFocusedFilter()
	f.MarkFocused(tests[0])

	got := f.Filter(tests)

	require.Len(t, got, 1)
	assert.Same(t, tests[0], got[0])
}

func TestFocusedFilter_FocusedSuiteSelectsDescendants(t *testing.T) {
	suite, tests := newSuiteWithTests(t, "a", "b")
	tests[0].SetSkipped(true)
	suite.SetExpectation(domain.ExpectationFail)

	f := NewFocusedFilter()
	f.MarkFocused(suite)

	got := f.Filter(tests)

	assert.Equal(t, tests, got)
	assert.False(t, suite.Skipped())
	assert.Equal(t, domain.ExpectationOk, suite.Expectation())
	assert.True(t, tests[0].Skipped(),
		"descendants of a focused suite keep their own skip state")
}

func TestFocusedFilter_DirectFocusDoesNotLeakThroughAncestors(t *testing.T) {
	// root -> parent (focused? no) -> {focused test, sibling}; the shared
	// parent must not pull the sibling in.
	root := domain.NewSuite(nil, "", domain.Location{})
	parent := domain.NewSuite(root, "parent", domain.Location{})
	focused := domain.NewTest(parent, "focused", nil, domain.Location{})
	sibling := domain.NewTest(parent, "sibling", nil, domain.Location{})

	f := NewFocusedFilter()
	f.MarkFocused(focused)

	got := f.Filter([]*domain.Test{focused, sibling})

	require.Len(t, got, 1)
	assert.Same(t, focused, got[0])
}

func TestFocusedFilter_FocusedTestInsideFocusedSuiteNarrows(t *testing.T) {
	// When a suite is focused and one of its tests is directly focused,
	// the direct focus wins: the suite is poisoned for its other tests.
	suite, tests := newSuiteWithTests(t, "direct", "other")
	f := NewFocusedFilter()
	f.MarkFocused(suite)
	f.MarkFocused(tests[0])

	got := f.Filter(tests)

	require.Len(t, got, 1)
	assert.Same(t, tests[0], got[0])
}

func TestFocusedFilter_SeparateFocusedSuiteStillSelects(t *testing.T) {
	// Two sibling suites: one has a directly focused test, the other is
	// focused as a whole. The second suite's tests are all selected.
	root := domain.NewSuite(nil, "", domain.Location{})
	first := domain.NewSuite(root, "first", domain.Location{})
	second := domain.NewSuite(root, "second", domain.Location{})
	direct := domain.NewTest(first, "direct", nil, domain.Location{})
	unpicked := domain.NewTest(first, "unpicked", nil, domain.Location{})
	s1 := domain.NewTest(second, "s1", nil, domain.Location{})
	s2 := domain.NewTest(second, "s2", nil, domain.Location{})

	f := NewFocusedFilter()
	f.MarkFocused(direct)
	f.MarkFocused(second)

	got := f.Filter([]*domain.Test{direct, unpicked, s1, s2})

	assert.Equal(t, []*domain.Test{direct, s1, s2}, got)
}

func TestFocusedFilter_NormalizesFocusedTestState(t *testing.T) {
	_, tests := newSuiteWithTests(t, "t")
	tests[0].SetSkipped(true)
	tests[0].SetExpectation(domain.ExpectationFixme)

	f := NewFocusedFilter()
	f.MarkFocused(tests[0])

	got := f.Filter(tests)

	require.Len(t, got, 1)
	assert.False(t, tests[0].Skipped())
	assert.Equal(t, domain.ExpectationOk, tests[0].Expectation())
}

func TestFocusedFilter_FocusThroughNestedAncestor(t *testing.T) {
	root := domain.NewSuite(nil, "", domain.Location{})
	outer := domain.NewSuite(root, "outer", domain.Location{})
	inner := domain.NewSuite(outer, "inner", domain.Location{})
	test := domain.NewTest(inner, "deep", nil, domain.Location{})

	f := NewFocusedFilter()
	f.MarkFocused(outer)

	got := f.Filter([]*domain.Test{test})

	require.Len(t, got, 1)
	assert.Same(t, test, got[0])
}

func TestFocusedFilter_Accessors(t *testing.T) {
	suite, tests := newSuiteWithTests(t, "a", "b")
	f := NewFocusedFilter()
	f.MarkFocused(tests[1])
	f.MarkFocused(suite)
	f.MarkFocused(tests[0])
	f.MarkFocused(tests[0]) // duplicate marks collapse

	assert.True(t, f.HasFocusedTestsOrSuites())
	assert.Equal(t, []*domain.Test{tests[1], tests[0]}, f.FocusedTests())
	assert.Equal(t, []*domain.Suite{suite}, f.FocusedSuites())
}

func TestFocusedFilter_PreservesInputOrder(t *testing.T) {
	suite, tests := newSuiteWithTests(t, "a", "b", "c", "d")
	f := NewFocusedFilter()
	f.MarkFocused(suite)

	got := f.Filter(tests)

	assert.Equal(t, tests, got, "selection is a subsequence in input order")
}
