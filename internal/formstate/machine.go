// Package formstate tracks the contact form's visible state for each
// visitor: idle input, pending spinner and revealed result.
package formstate

import (
	"errors"
	"sync"
	"time"

	"github.com/wigconnect/wigconnect/internal/contact"
	"github.com/wigconnect/wigconnect/internal/settings"
)

type State int

const (
	Idle State = iota
	Pending
	Result
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Result:
		return "result"
	}
	return "unknown"
}

// ErrBusy is returned when a submission arrives while a previous one is
// pending or showing its result.
var ErrBusy = errors.New("formstate: form is not idle")

// Machine is the state of one visitor's contact form. Its methods are safe
// for concurrent use.
type Machine struct {
	mu      sync.Mutex
	state   State
	link    contact.Link
	task    *delayedTask
	touched time.Time
}

func NewMachine() *Machine {
	return &Machine{touched: time.Now()}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Link returns the link revealed by the last completed submission.
func (m *Machine) Link() (contact.Link, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.link, m.state == Result
}

// Submit validates raw against the snapshot's settings. Invalid input
// leaves the machine Idle and returns the validation error. Valid input
// moves it to Pending; the returned channel yields the link once the
// configured loading delay has passed, or is closed empty if Reset cancels
// the submission first.
func (m *Machine) Submit(raw string, snap *settings.Snapshot) (<-chan contact.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched = time.Now()

	if m.state != Idle {
		return nil, ErrBusy
	}

	link, err := contact.Build(raw, snap.Document)
	if err != nil {
		return nil, err
	}

	out := make(chan contact.Link, 1)
	var task *delayedTask
	task = schedule(snap.Document.LoadingDelay(), func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		// A Reset may have replaced the task between the timer firing and
		// this callback taking the lock.
		if m.task != task {
			close(out)
			return
		}
		m.task = nil
		m.state = Result
		m.link = link
		out <- link
		close(out)
	}, func() {
		close(out)
	})
	m.task = task
	m.state = Pending
	return out, nil
}

// Reset returns the machine to Idle, cancelling any pending reveal.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched = time.Now()

	if m.task != nil {
		m.task.cancel()
		m.task = nil
	}
	m.state = Idle
	m.link = contact.Link{}
}

func (m *Machine) lastTouched() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.touched
}
