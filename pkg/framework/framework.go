// Package framework bundles a collector with the selection passes and
// pre-registers the standard modifier and attribute set, so callers can
// author trees with skip/fixme/fail/slow/only/repeat semantics without
// wiring the handlers themselves.
package framework

import (
	"github.com/dnxresearch/playwright/pkg/collector"
	"github.com/dnxresearch/playwright/pkg/domain"
	"github.com/dnxresearch/playwright/pkg/selection"
)

// Standard names registered by New, for both suites and tests unless
// noted.
const (
	// ModifierSkip excludes the entity. An optional leading bool argument
	// makes the skip conditional: With(ModifierSkip, false) is a no-op.
	ModifierSkip = "skip"
	// ModifierFail marks the entity as expected to fail, with the same
	// optional condition argument.
	ModifierFail = "fail"
	// ModifierRepeat records the entity's repeat count (one int argument).
	ModifierRepeat = "repeat"
	// AttributeFixme skips the entity and marks it known-broken.
	AttributeFixme = "fixme"
	// AttributeSlow triples the test's timeout. Tests only.
	AttributeSlow = "slow"
	// AttributeOnly focuses the entity on the bundle's filter.
	AttributeOnly = "only"
)

const slowMultiplier = 3

// Bundle wires a Collector, a FocusedFilter and a Repeater together.
type Bundle struct {
	Collector *collector.Collector
	Filter    *selection.FocusedFilter
	Repeater  *selection.Repeater
}

// New returns a bundle with the standard handlers registered.
func New(opts ...collector.Option) *Bundle {
	b := &Bundle{
		Collector: collector.New(opts...),
		Filter:    selection.NewFocusedFilter(),
		Repeater:  selection.NewRepeater(),
	}
	b.register()
	return b
}

func (b *Bundle) register() {
	c := b.Collector

	c.AddSuiteModifier(ModifierSkip, func(s *domain.Suite, args ...any) {
		if condition(args) {
			s.SetSkipped(true)
		}
	})
	c.AddTestModifier(ModifierSkip, func(t *domain.Test, args ...any) {
		if condition(args) {
			t.SetSkipped(true)
		}
	})

	c.AddSuiteModifier(ModifierFail, func(s *domain.Suite, args ...any) {
		if condition(args) {
			s.SetExpectation(domain.ExpectationFail)
		}
	})
	c.AddTestModifier(ModifierFail, func(t *domain.Test, args ...any) {
		if condition(args) {
			t.SetExpectation(domain.ExpectationFail)
		}
	})

	c.AddSuiteModifier(ModifierRepeat, func(s *domain.Suite, args ...any) {
		if n, ok := repeatCount(args); ok {
			b.Repeater.Repeat(s, n)
		}
	})
	c.AddTestModifier(ModifierRepeat, func(t *domain.Test, args ...any) {
		if n, ok := repeatCount(args); ok {
			b.Repeater.Repeat(t, n)
		}
	})

	c.AddSuiteAttribute(AttributeFixme, func(s *domain.Suite) {
		s.SetSkipped(true)
		s.SetExpectation(domain.ExpectationFixme)
	})
	c.AddTestAttribute(AttributeFixme, func(t *domain.Test) {
		t.SetSkipped(true)
		t.SetExpectation(domain.ExpectationFixme)
	})

	c.AddTestAttribute(AttributeSlow, func(t *domain.Test) {
		t.SetTimeout(t.Timeout() * slowMultiplier)
	})

	c.AddSuiteAttribute(AttributeOnly, func(s *domain.Suite) {
		b.Filter.MarkFocused(s)
	})
	c.AddTestAttribute(AttributeOnly, func(t *domain.Test) {
		b.Filter.MarkFocused(t)
	})
}

// condition interprets an optional leading bool argument; missing or
// non-bool arguments mean unconditional.
func condition(args []any) bool {
	if len(args) > 0 {
		if cond, ok := args[0].(bool); ok {
			return cond
		}
	}
	return true
}

func repeatCount(args []any) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	n, ok := args[0].(int)
	return n, ok
}

// Runs applies the whole selection pipeline: focus filtering over the
// collected tests, then repeat expansion.
func (b *Bundle) Runs() []*domain.TestRun {
	return b.Repeater.CreateTestRuns(b.Filter.Filter(b.Collector.Tests()))
}

// RunsMatching narrows the focused selection to tests whose title path
// matches any of the glob patterns before expansion.
func (b *Bundle) RunsMatching(patterns ...string) []*domain.TestRun {
	tests := b.Filter.Filter(b.Collector.Tests())
	tests = selection.NewTitleFilter(patterns...).Filter(tests)
	return b.Repeater.CreateTestRuns(tests)
}
