package dnd

import "github.com/jask/wanderlist/internal/destination"

type PointerAction int

const (
	PointerPress PointerAction = iota
	PointerMotion
	PointerRelease
)

// PointerEvent is a device-neutral pointer sample.
type PointerEvent struct {
	Input  Input
	Action PointerAction
	At     Point
}

type DragStart struct {
	Input    Input
	ActiveID destination.ID
}

type DragMove struct {
	ActiveID destination.ID
	OverID   *destination.ID
	Delta    Point
}

// DragEnd carries the card under the pointer at release, or nil.
type DragEnd struct {
	ActiveID destination.ID
	OverID   *destination.ID
}

type DragCancel struct {
	ActiveID destination.ID
}

// Handlers receive the drag lifecycle. Every started drag is closed by
// exactly one OnDragEnd or OnDragCancel.
type Handlers struct {
	OnDragStart  func(DragStart)
	OnDragMove   func(DragMove)
	OnDragEnd    func(DragEnd)
	OnDragCancel func(DragCancel)
}

// Result tells the caller what a pointer event amounted to.
type Result string

const (
	ResultIgnored Result = "ignored"
	ResultPending Result = "pending"
	ResultStarted Result = "started"
	ResultMoved   Result = "moved"
	ResultEnded   Result = "ended"
	ResultClicked Result = "clicked"
)

// Context routes input to sensors and resolves drop targets against the
// current droppable layout.
type Context struct {
	sensors    map[Input]Sensor
	detect     CollisionDetector
	handlers   Handlers
	droppables []Rect

	owner     Input
	activeID  destination.ID
	dragging  bool
	startRect Rect
	delta     Point
	over      *destination.ID
}

func NewContext(detect CollisionDetector, handlers Handlers, sensors ...Sensor) *Context {
	if detect == nil {
		detect = ClosestCenter
	}
	c := &Context{
		sensors:  make(map[Input]Sensor, len(sensors)),
		detect:   detect,
		handlers: handlers,
	}
	for _, s := range sensors {
		c.sensors[s.Input()] = s
	}
	return c
}

// SetDroppables replaces the layout used for hit testing and collisions.
func (c *Context) SetDroppables(rects []Rect) {
	c.droppables = append(c.droppables[:0], rects...)
}

func (c *Context) Sensor(in Input) (Sensor, bool) {
	s, ok := c.sensors[in]
	return s, ok
}

func (c *Context) Dragging() bool { return c.dragging }

// Active returns the id being dragged.
func (c *Context) Active() (destination.ID, bool) {
	if !c.dragging {
		return 0, false
	}
	return c.activeID, true
}

func (c *Context) Over() *destination.ID {
	if c.over == nil {
		return nil
	}
	id := *c.over
	return &id
}

func (c *Context) Delta() Point { return c.delta }

// Pointer feeds one pointer sample through the sensor registered for its
// input kind.
func (c *Context) Pointer(ev PointerEvent) Result {
	s, ok := c.sensors[ev.Input]
	if !ok {
		return ResultIgnored
	}
	if c.owner != "" && c.owner != ev.Input {
		return ResultIgnored
	}

	switch ev.Action {
	case PointerPress:
		if c.dragging {
			return ResultIgnored
		}
		// A pending gesture whose release never arrived is stale.
		if s.Pending() {
			s.Reset()
			c.reset()
		}
		r, ok := hit(c.droppables, ev.At)
		if !ok {
			return ResultIgnored
		}
		s.Press(r.ID, ev.At)
		c.owner = ev.Input
		c.startRect = r
		return ResultPending

	case PointerMotion:
		if !s.Pending() && !s.Dragging() {
			return ResultIgnored
		}
		if s.Motion(ev.At) {
			id, _ := s.ActiveID()
			c.begin(ev.Input, id, s.Delta())
			return ResultStarted
		}
		if !s.Dragging() {
			return ResultPending
		}
		c.move(s.Delta())
		return ResultMoved

	case PointerRelease:
		if !s.Pending() && !s.Dragging() {
			return ResultIgnored
		}
		if s.Motion(ev.At) {
			id, _ := s.ActiveID()
			c.begin(ev.Input, id, s.Delta())
		} else if s.Dragging() {
			c.move(s.Delta())
		}
		if !s.Release() {
			c.reset()
			return ResultClicked
		}
		c.end()
		return ResultEnded
	}
	return ResultIgnored
}

// Cancel aborts any gesture in progress.
func (c *Context) Cancel() {
	if c.owner != "" {
		if s, ok := c.sensors[c.owner]; ok {
			s.Reset()
		}
	}
	if !c.dragging {
		c.reset()
		return
	}
	id := c.activeID
	c.reset()
	if c.handlers.OnDragCancel != nil {
		c.handlers.OnDragCancel(DragCancel{ActiveID: id})
	}
}

func (c *Context) begin(in Input, id destination.ID, delta Point) {
	c.owner = in
	c.activeID = id
	c.dragging = true
	c.delta = delta
	if i, ok := find(c.droppables, id); ok {
		c.startRect = c.droppables[i]
	}
	c.resolveOver()
	if c.handlers.OnDragStart != nil {
		c.handlers.OnDragStart(DragStart{Input: in, ActiveID: id})
	}
}

func (c *Context) move(delta Point) {
	c.delta = delta
	c.resolveOver()
	if c.handlers.OnDragMove != nil {
		c.handlers.OnDragMove(DragMove{ActiveID: c.activeID, OverID: c.Over(), Delta: delta})
	}
}

func (c *Context) resolveOver() {
	if id, ok := c.detect(c.startRect.Translate(c.delta), c.droppables); ok {
		c.over = &id
		return
	}
	c.over = nil
}

func (c *Context) end() {
	ev := DragEnd{ActiveID: c.activeID, OverID: c.Over()}
	c.reset()
	if c.handlers.OnDragEnd != nil {
		c.handlers.OnDragEnd(ev)
	}
}

func (c *Context) reset() {
	c.owner = ""
	c.activeID = 0
	c.dragging = false
	c.startRect = Rect{}
	c.delta = Point{}
	c.over = nil
}
