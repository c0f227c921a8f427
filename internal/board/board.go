// Package board holds the ordered destination list and the id of the card
// currently being dragged. All mutation happens from the UI event loop, so
// Board does no locking.
package board

import (
	"errors"
	"fmt"

	"github.com/jask/wanderlist/internal/destination"
	"github.com/jask/wanderlist/internal/logging"
)

var (
	ErrUnknownDestination = errors.New("unknown destination")
	ErrDragInProgress     = errors.New("drag in progress")
)

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseDragging Phase = "dragging"
)

type Outcome string

const (
	OutcomeMoved         Outcome = "moved"
	OutcomeNoTarget      Outcome = "no_target"
	OutcomeDroppedOnSelf Outcome = "dropped_on_self"
	OutcomeUnknownID     Outcome = "unknown_id"
)

// Result describes what EndDrag did. From and To are only meaningful when
// Outcome is OutcomeMoved.
type Result struct {
	Outcome Outcome
	Source  destination.Destination
	From    int
	To      int
}

func (r Result) Moved() bool { return r.Outcome == OutcomeMoved }

// Snapshot is an immutable view handed to renderers.
type Snapshot struct {
	Items    []destination.Destination
	ActiveID *destination.ID
	Active   *destination.Destination
	Phase    Phase
}

// Board is the list state holder.
type Board struct {
	list   destination.List
	active *destination.ID
	log    logging.Logger
}

type Option func(*Board)

func WithLogger(l logging.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

func New(list destination.List, opts ...Option) *Board {
	b := &Board{list: list, log: logging.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With("component", "board")
	return b
}

func (b *Board) List() destination.List { return b.list }

func (b *Board) Phase() Phase {
	if b.active != nil {
		return PhaseDragging
	}
	return PhaseIdle
}

// ActiveID reports the id being dragged, if any.
func (b *Board) ActiveID() (destination.ID, bool) {
	if b.active == nil {
		return 0, false
	}
	return *b.active, true
}

// StartDrag records id as the active identifier.
func (b *Board) StartDrag(id destination.ID) error {
	if b.list.IndexOf(id) < 0 {
		b.log.Warn("drag start for unknown destination", "id", id)
		return fmt.Errorf("start drag %d: %w", id, ErrUnknownDestination)
	}
	active := id
	b.active = &active
	b.log.Debug("drag started", "id", id)
	return nil
}

// EndDrag clears the active identifier and, when overID names a different
// card, moves sourceID into overID's slot. Unknown ids leave the list as
// it was and are reported through the outcome.
func (b *Board) EndDrag(sourceID destination.ID, overID *destination.ID) Result {
	b.active = nil

	src, ok := b.list.Find(sourceID)
	if !ok {
		b.log.Warn("drag end for unknown source", "source", sourceID)
		return Result{Outcome: OutcomeUnknownID}
	}
	res := Result{Source: src, From: b.list.IndexOf(sourceID)}
	switch {
	case overID == nil:
		res.Outcome = OutcomeNoTarget
	case *overID == sourceID:
		res.Outcome = OutcomeDroppedOnSelf
	default:
		next, moved := b.list.MoveID(sourceID, *overID)
		if !moved {
			b.log.Warn("drag end over unknown target", "source", sourceID, "target", *overID)
			res.Outcome = OutcomeUnknownID
			break
		}
		res.To = next.IndexOf(sourceID)
		res.Outcome = OutcomeMoved
		b.list = next
		b.log.Info("destination moved", "id", sourceID, "from", res.From, "to", res.To)
	}
	if res.Outcome != OutcomeMoved {
		res.To = res.From
		b.log.Debug("drag ended without move", "id", sourceID, "outcome", res.Outcome)
	}
	return res
}

// CancelDrag aborts a drag without touching the list.
func (b *Board) CancelDrag() {
	if b.active != nil {
		b.log.Debug("drag cancelled", "id", *b.active)
	}
	b.active = nil
}

// Replace swaps in a whole new list, e.g. one restored from the store.
func (b *Board) Replace(list destination.List) error {
	if b.active != nil {
		return ErrDragInProgress
	}
	b.list = list
	return nil
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{Items: b.list.Items(), Phase: b.Phase()}
	if b.active != nil {
		id := *b.active
		s.ActiveID = &id
		if d, ok := b.list.Find(id); ok {
			s.Active = &d
		}
	}
	return s
}
