package collector

import "github.com/dnxresearch/playwright/pkg/domain"

// Chains are immutable snapshots of pending modifier and attribute
// applications. Every chain call resolves the name against the
// collector's registry immediately and returns a new value with the
// resolved entry appended; the receiver is never mutated, so a base
// chain can be reused and extended independently. Unknown names have no
// entry in the registry and leave the chain unchanged.

type suiteEntry struct {
	modifier  SuiteModifier
	attribute SuiteAttribute
	args      []any
}

func (e suiteEntry) apply(s *domain.Suite) {
	if e.attribute != nil {
		e.attribute(s)
		return
	}
	e.modifier(s, e.args...)
}

type testEntry struct {
	modifier  TestModifier
	attribute TestAttribute
	args      []any
}

func (e testEntry) apply(t *domain.Test) {
	if e.attribute != nil {
		e.attribute(t)
		return
	}
	e.modifier(t, e.args...)
}

// SuiteChain accumulates modifier and attribute applications for one
// suite registration.
type SuiteChain struct {
	collector *Collector
	entries   []suiteEntry
}

// TestChain accumulates modifier and attribute applications for one test
// registration.
type TestChain struct {
	collector *Collector
	entries   []testEntry
}

// SuiteChain starts an empty chain. Calling Describe on it directly is
// equivalent to Collector.Describe.
func (c *Collector) SuiteChain() SuiteChain {
	return SuiteChain{collector: c}
}

// TestChain starts an empty chain. Calling It on it directly is
// equivalent to Collector.It.
func (c *Collector) TestChain() TestChain {
	return TestChain{collector: c}
}

// With appends the named modifier with its arguments. Chaining the same
// name twice appends two independent entries, applied in chain order.
func (ch SuiteChain) With(name string, args ...any) SuiteChain {
	fn, ok := ch.collector.suiteModifiers[name]
	if !ok {
		return ch
	}
	return ch.extend(suiteEntry{modifier: fn, args: args})
}

// Mark appends the named attribute.
func (ch SuiteChain) Mark(name string) SuiteChain {
	fn, ok := ch.collector.suiteAttributes[name]
	if !ok {
		return ch
	}
	return ch.extend(suiteEntry{attribute: fn})
}

func (ch SuiteChain) extend(e suiteEntry) SuiteChain {
	entries := make([]suiteEntry, len(ch.entries), len(ch.entries)+1)
	copy(entries, ch.entries)
	return SuiteChain{collector: ch.collector, entries: append(entries, e)}
}

// Describe commits the suite, applying the accumulated entries in order
// before the body runs.
func (ch SuiteChain) Describe(name string, body func()) *domain.Suite {
	return ch.collector.describe(name, body, ch.entries, domain.CaptureLocation(1))
}

// With appends the named modifier with its arguments. Chaining the same
// name twice appends two independent entries, applied in chain order.
func (ch TestChain) With(name string, args ...any) TestChain {
	fn, ok := ch.collector.testModifiers[name]
	if !ok {
		return ch
	}
	return ch.extend(testEntry{modifier: fn, args: args})
}

// Mark appends the named attribute.
func (ch TestChain) Mark(name string) TestChain {
	fn, ok := ch.collector.testAttributes[name]
	if !ok {
		return ch
	}
	return ch.extend(testEntry{attribute: fn})
}

func (ch TestChain) extend(e testEntry) TestChain {
	entries := make([]testEntry, len(ch.entries), len(ch.entries)+1)
	copy(entries, ch.entries)
	return TestChain{collector: ch.collector, entries: append(entries, e)}
}

// It commits the test, applying the accumulated entries in order.
func (ch TestChain) It(name string, body domain.TestFunc) *domain.Test {
	return ch.collector.it(name, body, ch.entries, domain.CaptureLocation(1))
}
