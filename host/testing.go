package host

import (
	"sync"
)

// TestingContext is an in-memory SDK. Input is set up front with
// WithInput; output and exit code are inspected after the call.
type TestingContext struct {
	sync.RWMutex
	input    []byte
	output   []byte
	exitCode ExitCode
	exited   bool
}

func NewTestingContext() *TestingContext {
	return &TestingContext{}
}

func (c *TestingContext) WithInput(b []byte) *TestingContext {
	c.Lock()
	defer c.Unlock()

	c.input = append([]byte(nil), b...)

	return c
}

func (c *TestingContext) Input() []byte {
	c.RLock()
	defer c.RUnlock()

	return append([]byte(nil), c.input...)
}

func (c *TestingContext) WriteOutput(b []byte) {
	c.Lock()
	defer c.Unlock()

	c.output = append(c.output, b...)
}

// TakeOutput returns the captured output and clears it.
func (c *TestingContext) TakeOutput() []byte {
	c.Lock()
	defer c.Unlock()

	o := c.output
	c.output = nil

	return o
}

func (c *TestingContext) Exit(code ExitCode) {
	c.Lock()
	defer c.Unlock()

	c.exitCode = code
	c.exited = true
}

// ExitCode returns the exit code; false if Exit was never called.
func (c *TestingContext) ExitCode() (ExitCode, bool) {
	c.RLock()
	defer c.RUnlock()

	return c.exitCode, c.exited
}
