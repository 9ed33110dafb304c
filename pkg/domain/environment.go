package domain

import "context"

// Hook is a callback run by the execution engine around the tests of a
// suite. The engine supplies the context carrying its deadline.
type Hook func(ctx context.Context) error

// Environment holds the hook sets attached to a suite. The zero value is
// ready to use.
type Environment struct {
	beforeAll  []Hook
	beforeEach []Hook
	afterAll   []Hook
	afterEach  []Hook
}

// BeforeAll registers a hook to run once before the suite's tests.
func (e *Environment) BeforeAll(h Hook) { e.beforeAll = append(e.beforeAll, h) }

// BeforeEach registers a hook to run before every test of the suite.
func (e *Environment) BeforeEach(h Hook) { e.beforeEach = append(e.beforeEach, h) }

// AfterAll registers a hook to run once after the suite's tests.
func (e *Environment) AfterAll(h Hook) { e.afterAll = append(e.afterAll, h) }

// AfterEach registers a hook to run after every test of the suite.
func (e *Environment) AfterEach(h Hook) { e.afterEach = append(e.afterEach, h) }

// BeforeAllHooks returns the registered before-all hooks in registration order.
func (e *Environment) BeforeAllHooks() []Hook { return e.beforeAll }

// BeforeEachHooks returns the registered before-each hooks in registration order.
func (e *Environment) BeforeEachHooks() []Hook { return e.beforeEach }

// AfterAllHooks returns the registered after-all hooks in registration order.
func (e *Environment) AfterAllHooks() []Hook { return e.afterAll }

// AfterEachHooks returns the registered after-each hooks in registration order.
func (e *Environment) AfterEachHooks() []Hook { return e.afterEach }
