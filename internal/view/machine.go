// Package view drives the per-page view state of the web front-end.
//
// A page moves Idle -> Loading -> Loaded | Failed for every fetch it makes.
// Banners live beside the phase: the error banner is only visible in
// Failed, and the success banner is hidden while Loading but survives a
// failed cycle unless the cycle asked for a reset.
package view

import (
	"context"
	"fmt"
	"sync"
)

// Phase is the coarse state of a page.
type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is an immutable snapshot of a page.
type State[T any] struct {
	Phase   Phase
	Data    T
	Error   string
	Success string
}

// Loading reports whether a fetch is in flight.
func (s State[T]) Loading() bool {
	return s.Phase == Loading
}

// Outcome is what a successful fetch hands back: a mutation applied to the
// page data and an optional success banner.
type Outcome[T any] struct {
	Apply   func(*T)
	Success string
}

// Cycle describes one fetch.
type Cycle[T any] struct {
	// Reset clears both banners on entry (mounts and dependent inputs).
	Reset bool
	// Enter mutates the data as the cycle starts, before the fetch.
	Enter func(*T)
	Fetch func(ctx context.Context) (Outcome[T], error)
	// Recover cleans the data after a failed fetch.
	Recover func(*T)
	// Describe turns a fetch error into the error banner.
	Describe func(error) string
}

// Machine holds one page's state. It is safe for concurrent cycles; the
// last cycle to settle wins.
type Machine[T any] struct {
	mu      sync.Mutex
	phase   Phase
	data    T
	err     string
	success string
}

// NewMachine returns a machine in Idle holding initial.
func NewMachine[T any](initial T) *Machine[T] {
	return &Machine[T]{data: initial}
}

// Snapshot returns the current state.
func (m *Machine[T]) Snapshot() State[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

func (m *Machine[T]) snapshot() State[T] {
	s := State[T]{Phase: m.phase, Data: m.data}
	switch m.phase {
	case Loading:
	case Failed:
		s.Error = m.err
		s.Success = m.success
	default:
		s.Success = m.success
	}
	return s
}

// Run executes one cycle and returns the settled state. Loading is always
// left, even when Fetch panics; the panic is reported as a failure.
func (m *Machine[T]) Run(ctx context.Context, c Cycle[T]) (st State[T]) {
	m.begin(c)

	var (
		out Outcome[T]
		err error
	)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
		st = m.settle(c, out, err)
	}()

	out, err = c.Fetch(ctx)
	return st
}

func (m *Machine[T]) begin(c Cycle[T]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.phase = Loading
	if c.Reset {
		m.err = ""
		m.success = ""
	}
	if c.Enter != nil {
		c.Enter(&m.data)
	}
}

func (m *Machine[T]) settle(c Cycle[T], out Outcome[T], err error) State[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		if c.Recover != nil {
			c.Recover(&m.data)
		}
		m.phase = Failed
		if c.Describe != nil {
			m.err = c.Describe(err)
		} else {
			m.err = err.Error()
		}
		return m.snapshot()
	}

	if out.Apply != nil {
		out.Apply(&m.data)
	}
	m.phase = Loaded
	m.err = ""
	if out.Success != "" {
		m.success = out.Success
	}
	return m.snapshot()
}

// Reject fails the page without a fetch, e.g. on invalid input.
func (m *Machine[T]) Reject(msg string) State[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.phase = Failed
	m.err = msg
	return m.snapshot()
}

// Update applies a local change that needs no fetch.
func (m *Machine[T]) Update(fn func(*T)) State[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	fn(&m.data)
	return m.snapshot()
}
