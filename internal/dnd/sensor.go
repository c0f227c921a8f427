package dnd

import "github.com/jask/wanderlist/internal/destination"

type Input string

const (
	InputMouse    Input = "mouse"
	InputTouch    Input = "touch"
	InputKeyboard Input = "keyboard"
)

// ActivationConstraint separates a click from a drag: the pointer has to
// travel strictly further than Distance cells before a drag starts.
type ActivationConstraint struct {
	Distance int
}

func (c ActivationConstraint) Exceeded(delta Point) bool {
	return delta.X*delta.X+delta.Y*delta.Y > c.Distance*c.Distance
}

// Sensor recognises a drag gesture from one kind of input device.
type Sensor interface {
	Input() Input
	Press(id destination.ID, at Point)
	// Motion reports true exactly once, on the move that activates the drag.
	Motion(at Point) bool
	// Release ends the gesture and reports whether a drag was active.
	Release() bool
	Reset()
	Pending() bool
	Dragging() bool
	ActiveID() (destination.ID, bool)
	Delta() Point
}

type sensorState int

const (
	sensorIdle sensorState = iota
	sensorPending
	sensorDragging
)

// DistanceSensor activates once the pointer has travelled past its
// constraint. Mouse and touch share it.
type DistanceSensor struct {
	input      Input
	constraint ActivationConstraint
	state      sensorState
	id         destination.ID
	origin     Point
	current    Point
}

func NewMouseSensor(c ActivationConstraint) *DistanceSensor {
	return &DistanceSensor{input: InputMouse, constraint: c}
}

func NewTouchSensor(c ActivationConstraint) *DistanceSensor {
	return &DistanceSensor{input: InputTouch, constraint: c}
}

func (s *DistanceSensor) Input() Input { return s.input }

func (s *DistanceSensor) Press(id destination.ID, at Point) {
	s.state = sensorPending
	s.id = id
	s.origin = at
	s.current = at
}

func (s *DistanceSensor) Motion(at Point) bool {
	if s.state == sensorIdle {
		return false
	}
	s.current = at
	if s.state == sensorPending && s.constraint.Exceeded(s.Delta()) {
		s.state = sensorDragging
		return true
	}
	return false
}

func (s *DistanceSensor) Release() bool {
	was := s.state == sensorDragging
	s.Reset()
	return was
}

func (s *DistanceSensor) Reset() {
	s.state = sensorIdle
	s.id = 0
	s.origin = Point{}
	s.current = Point{}
}

func (s *DistanceSensor) Pending() bool  { return s.state == sensorPending }
func (s *DistanceSensor) Dragging() bool { return s.state == sensorDragging }

func (s *DistanceSensor) ActiveID() (destination.ID, bool) {
	if s.state == sensorIdle {
		return 0, false
	}
	return s.id, true
}

func (s *DistanceSensor) Delta() Point { return s.current.Sub(s.origin) }
