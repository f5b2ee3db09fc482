package export

import (
	"fmt"
	"slices"

	"github.com/oklog/ulid/v2"
)

// State is a step of an export job.
type State string

const (
	StateIdle           State = "idle"
	StateRendering      State = "rendering"
	StateRasterized     State = "rasterized"
	StateDownloaded     State = "downloaded"
	StateShareAttempted State = "share_attempted"
	StatePrintQueued    State = "print_queued"
	StateFailed         State = "failed"
)

var transitions = map[State][]State{
	StateIdle:       {StateRendering},
	StateRendering:  {StateRasterized, StateFailed},
	StateRasterized: {StateDownloaded, StateShareAttempted, StatePrintQueued, StateFailed},
}

// Terminal reports whether no further transition is possible from s.
func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}

// Op names what the caller asked for.
type Op string

const (
	OpDownload Op = "download"
	OpShare    Op = "share"
	OpPrint    Op = "print"
	OpThermal  Op = "thermal"
)

// Job tracks one export request through the state machine.
type Job struct {
	ID      string
	Receipt int64
	Op      Op
	history []State
}

func newJob(receipt int64, op Op) *Job {
	return &Job{
		ID:      ulid.Make().String(),
		Receipt: receipt,
		Op:      op,
		history: []State{StateIdle},
	}
}

// State returns the current state.
func (j *Job) State() State {
	return j.history[len(j.history)-1]
}

// History returns every state visited, oldest first.
func (j *Job) History() []State {
	return slices.Clone(j.history)
}

func (j *Job) advance(to State) error {
	from := j.State()
	if !slices.Contains(transitions[from], to) {
		return fmt.Errorf("export job %s: illegal transition %s -> %s", j.ID, from, to)
	}
	j.history = append(j.history, to)
	return nil
}
