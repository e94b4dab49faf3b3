// Package generation drives the ballot generation form: pick a section and
// an election, submit once, show the result, then reset.
package generation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/sufragio/internal/api"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// FailureMessage is shown when a generation fails without a server message.
const FailureMessage = "Error al generar la papeleta"

var (
	// ErrIncomplete is returned by Submit when section or election is unset.
	ErrIncomplete = errors.New("section and election must both be selected")

	// ErrInFlight is returned by Submit while a submission is outstanding.
	ErrInFlight = errors.New("a generation is already in progress")

	// ErrLocked is returned by field edits and Submit while a submission is
	// outstanding or a generated ballot is still on display.
	ErrLocked = errors.New("form is locked until the current generation settles")
)

// State is the workflow phase.
type State int

const (
	Idle State = iota
	Submitting
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Generator is the remote ballot assembler.
type Generator interface {
	GenerateBallot(ctx context.Context, key domain.BallotKey) (*domain.Ballot, error)
}

// Snapshot is a consistent copy of the workflow state.
type Snapshot struct {
	State   State
	Key     domain.BallotKey
	Ballot  *domain.Ballot // set only in Success
	Message string         // set only in Failed
	Err     error          // underlying failure, set only in Failed
}

// CanSubmit reports whether a Submit would issue a request.
func (s Snapshot) CanSubmit() bool {
	return s.Key.Complete() && (s.State == Idle || s.State == Failed)
}

// Workflow is the generation state machine. It is safe for concurrent use;
// at most one request is outstanding per Workflow.
type Workflow struct {
	gen       Generator
	delay     time.Duration
	onRefresh func()

	mu      sync.Mutex
	state   State
	key     domain.BallotKey
	ballot  *domain.Ballot
	message string
	err     error
}

// New creates an idle Workflow. onRefresh, if non-nil, is called each time
// a successful generation settles back to Idle.
func New(gen Generator, displayDelay time.Duration, onRefresh func()) *Workflow {
	return &Workflow{gen: gen, delay: displayDelay, onRefresh: onRefresh}
}

// DisplayDelay is how long a generated ballot stays on display before
// Settle should be called.
func (w *Workflow) DisplayDelay() time.Duration { return w.delay }

func (w *Workflow) SetSection(id int64) error {
	return w.edit(func() { w.key.SectionID = id })
}

func (w *Workflow) SetElection(id int64) error {
	return w.edit(func() { w.key.ElectionID = id })
}

// edit applies a field change. Editing a failed form clears the failure.
func (w *Workflow) edit(apply func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case Submitting, Success:
		return ErrLocked
	case Failed:
		w.state = Idle
		w.message = ""
		w.err = nil
	}
	apply()
	return nil
}

// Submit sends the generation request and blocks until it completes.
// It issues no request and leaves the state unchanged when the key is
// incomplete (ErrIncomplete) or a submission is outstanding (ErrInFlight).
// A remote failure is not returned as an error; it moves the workflow to
// Failed and is visible in the returned Snapshot.
func (w *Workflow) Submit(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	switch {
	case w.state == Submitting:
		w.mu.Unlock()
		return w.Snapshot(), ErrInFlight
	case w.state == Success:
		w.mu.Unlock()
		return w.Snapshot(), ErrLocked
	case !w.key.Complete():
		w.mu.Unlock()
		return w.Snapshot(), ErrIncomplete
	}
	w.state = Submitting
	w.message = ""
	w.err = nil
	key := w.key
	w.mu.Unlock()

	ballot, err := w.gen.GenerateBallot(ctx, key)

	w.mu.Lock()
	if err != nil {
		w.state = Failed
		w.message = api.DisplayMessage(err, FailureMessage)
		w.err = err
	} else {
		w.state = Success
		w.ballot = ballot
	}
	snap := w.snapshotLocked()
	w.mu.Unlock()
	return snap, nil
}

// Settle ends the display of a successful generation: the form is cleared,
// the workflow returns to Idle, and the refresh callback fires. It reports
// false and does nothing in any other state.
func (w *Workflow) Settle() bool {
	w.mu.Lock()
	if w.state != Success {
		w.mu.Unlock()
		return false
	}
	w.state = Idle
	w.key = domain.BallotKey{}
	w.ballot = nil
	refresh := w.onRefresh
	w.mu.Unlock()

	if refresh != nil {
		refresh()
	}
	return true
}

// SettleAfter waits the display delay and then settles. It returns early
// without settling if ctx is done.
func (w *Workflow) SettleAfter(ctx context.Context) bool {
	t := time.NewTimer(w.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return w.Settle()
	}
}

// Snapshot returns the current state.
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Workflow) snapshotLocked() Snapshot {
	return Snapshot{
		State:   w.state,
		Key:     w.key,
		Ballot:  w.ballot,
		Message: w.message,
		Err:     w.err,
	}
}
