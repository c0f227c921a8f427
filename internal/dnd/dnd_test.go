package dnd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/wanderlist/internal/destination"
)

// column lays out four 40x4 cards stacked from row 2.
func column() []Rect {
	rects := make([]Rect, 0, 4)
	for i := 0; i < 4; i++ {
		rects = append(rects, Rect{ID: destination.ID(i + 1), X: 0, Y: 2 + i*4, W: 40, H: 4})
	}
	return rects
}

type recorder struct {
	starts  []DragStart
	moves   []DragMove
	ends    []DragEnd
	cancels []DragCancel
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		OnDragStart:  func(e DragStart) { r.starts = append(r.starts, e) },
		OnDragMove:   func(e DragMove) { r.moves = append(r.moves, e) },
		OnDragEnd:    func(e DragEnd) { r.ends = append(r.ends, e) },
		OnDragCancel: func(e DragCancel) { r.cancels = append(r.cancels, e) },
	}
}

func newTestContext(distance int) (*Context, *recorder) {
	rec := &recorder{}
	c := NewContext(ClosestCenter, rec.handlers(),
		NewMouseSensor(ActivationConstraint{Distance: distance}),
		NewTouchSensor(ActivationConstraint{Distance: distance}),
	)
	c.SetDroppables(column())
	return c, rec
}

func press(in Input, x, y int) PointerEvent {
	return PointerEvent{Input: in, Action: PointerPress, At: Point{X: x, Y: y}}
}

func motion(in Input, x, y int) PointerEvent {
	return PointerEvent{Input: in, Action: PointerMotion, At: Point{X: x, Y: y}}
}

func release(in Input, x, y int) PointerEvent {
	return PointerEvent{Input: in, Action: PointerRelease, At: Point{X: x, Y: y}}
}

func TestActivationConstraintIsStrict(t *testing.T) {
	c := ActivationConstraint{Distance: 2}
	require.False(t, c.Exceeded(Point{X: 2}))
	require.False(t, c.Exceeded(Point{X: 1, Y: 1}))
	require.True(t, c.Exceeded(Point{X: 2, Y: 1}))
	require.True(t, c.Exceeded(Point{Y: -3}))

	zero := ActivationConstraint{}
	require.False(t, zero.Exceeded(Point{}))
	require.True(t, zero.Exceeded(Point{X: 1}))
}

func TestDistanceSensorLifecycle(t *testing.T) {
	s := NewMouseSensor(ActivationConstraint{Distance: 2})
	require.Equal(t, InputMouse, s.Input())
	_, ok := s.ActiveID()
	require.False(t, ok)

	s.Press(3, Point{X: 5, Y: 5})
	require.True(t, s.Pending())
	require.False(t, s.Motion(Point{X: 6, Y: 6}))
	require.True(t, s.Pending())
	require.True(t, s.Motion(Point{X: 5, Y: 8}))
	require.True(t, s.Dragging())
	require.False(t, s.Motion(Point{X: 5, Y: 9}), "activation is reported once")
	require.Equal(t, Point{Y: 4}, s.Delta())

	id, ok := s.ActiveID()
	require.True(t, ok)
	require.Equal(t, destination.ID(3), id)
	require.True(t, s.Release())
	require.False(t, s.Dragging())
	require.False(t, s.Release())
}

func TestClickBelowThresholdEmitsNothing(t *testing.T) {
	c, rec := newTestContext(2)
	require.Equal(t, ResultPending, c.Pointer(press(InputMouse, 3, 3)))
	require.Equal(t, ResultPending, c.Pointer(motion(InputMouse, 4, 4)))
	require.Equal(t, ResultClicked, c.Pointer(release(InputMouse, 4, 4)))
	require.Empty(t, rec.starts)
	require.Empty(t, rec.ends)
	require.False(t, c.Dragging())
}

func TestPressOutsideCardsIsIgnored(t *testing.T) {
	c, _ := newTestContext(2)
	require.Equal(t, ResultIgnored, c.Pointer(press(InputMouse, 3, 0)))
	require.Equal(t, ResultIgnored, c.Pointer(motion(InputMouse, 3, 10)))
	require.Equal(t, ResultIgnored, c.Pointer(release(InputMouse, 3, 10)))
}

func TestPressAfterLostReleaseRestartsGesture(t *testing.T) {
	c, rec := newTestContext(2)
	require.Equal(t, ResultPending, c.Pointer(press(InputMouse, 10, 3)))
	// The release for card 1 never arrives.
	require.Equal(t, ResultPending, c.Pointer(press(InputMouse, 10, 15)))
	require.Equal(t, ResultStarted, c.Pointer(motion(InputMouse, 10, 11)))
	require.Len(t, rec.starts, 1)
	require.Equal(t, destination.ID(4), rec.starts[0].ActiveID)

	require.Equal(t, ResultEnded, c.Pointer(release(InputMouse, 10, 11)))
	require.Equal(t, destination.ID(4), rec.ends[0].ActiveID)
	require.Equal(t, destination.ID(3), *rec.ends[0].OverID)
}

func TestPressOutsideDropsStalePendingGesture(t *testing.T) {
	c, rec := newTestContext(2)
	c.Pointer(press(InputMouse, 10, 3))
	require.Equal(t, ResultIgnored, c.Pointer(press(InputMouse, 10, 0)))
	require.Equal(t, ResultIgnored, c.Pointer(motion(InputMouse, 10, 11)))
	require.Empty(t, rec.starts)
	require.False(t, c.Dragging())
}

func TestMouseDragFirstCardOntoThird(t *testing.T) {
	c, rec := newTestContext(2)
	require.Equal(t, ResultPending, c.Pointer(press(InputMouse, 10, 3)))
	require.Equal(t, ResultStarted, c.Pointer(motion(InputMouse, 10, 7)))
	require.Len(t, rec.starts, 1)
	require.Equal(t, destination.ID(1), rec.starts[0].ActiveID)
	require.Equal(t, InputMouse, rec.starts[0].Input)

	active, ok := c.Active()
	require.True(t, ok)
	require.Equal(t, destination.ID(1), active)
	require.Equal(t, destination.ID(2), *c.Over())

	require.Equal(t, ResultMoved, c.Pointer(motion(InputMouse, 10, 11)))
	require.Equal(t, destination.ID(3), *c.Over())
	require.Equal(t, Point{Y: 8}, c.Delta())

	require.Equal(t, ResultEnded, c.Pointer(release(InputMouse, 10, 11)))
	require.Len(t, rec.ends, 1)
	require.Equal(t, destination.ID(1), rec.ends[0].ActiveID)
	require.NotNil(t, rec.ends[0].OverID)
	require.Equal(t, destination.ID(3), *rec.ends[0].OverID)
	require.False(t, c.Dragging())
	require.NotEmpty(t, rec.moves)
}

func TestReleaseBackOnOriginEndsOverSelf(t *testing.T) {
	c, rec := newTestContext(1)
	c.Pointer(press(InputMouse, 10, 14))
	c.Pointer(motion(InputMouse, 10, 8))
	c.Pointer(release(InputMouse, 10, 14))
	require.Len(t, rec.ends, 1)
	require.Equal(t, destination.ID(4), *rec.ends[0].OverID)
	require.Equal(t, rec.ends[0].ActiveID, *rec.ends[0].OverID)
}

func TestReleaseBeyondThresholdWithoutMotionStillDrags(t *testing.T) {
	c, rec := newTestContext(2)
	c.Pointer(press(InputTouch, 10, 15))
	require.Equal(t, ResultEnded, c.Pointer(release(InputTouch, 10, 3)))
	require.Len(t, rec.starts, 1)
	require.Len(t, rec.ends, 1)
	require.Equal(t, destination.ID(4), rec.ends[0].ActiveID)
	require.Equal(t, destination.ID(1), *rec.ends[0].OverID)
}

func TestOtherInputIgnoredWhileGestureOwned(t *testing.T) {
	c, rec := newTestContext(1)
	c.Pointer(press(InputTouch, 1, 3))
	c.Pointer(motion(InputTouch, 1, 6))
	require.True(t, c.Dragging())

	require.Equal(t, ResultIgnored, c.Pointer(press(InputMouse, 1, 10)))
	require.Equal(t, ResultIgnored, c.Pointer(release(InputMouse, 1, 10)))
	require.Empty(t, rec.ends)

	c.Pointer(release(InputTouch, 1, 6))
	require.Len(t, rec.ends, 1)
}

func TestUnregisteredInputIgnored(t *testing.T) {
	rec := &recorder{}
	c := NewContext(nil, rec.handlers(), NewMouseSensor(ActivationConstraint{Distance: 1}))
	c.SetDroppables(column())
	require.Equal(t, ResultIgnored, c.Pointer(press(InputTouch, 1, 3)))
	_, ok := c.Sensor(InputTouch)
	require.False(t, ok)
}

func TestCancelEmitsExactlyOneTerminalCallback(t *testing.T) {
	c, rec := newTestContext(1)
	c.Pointer(press(InputMouse, 1, 3))
	c.Pointer(motion(InputMouse, 1, 9))
	c.Cancel()
	require.Len(t, rec.cancels, 1)
	require.Equal(t, destination.ID(1), rec.cancels[0].ActiveID)
	require.Equal(t, ResultIgnored, c.Pointer(release(InputMouse, 1, 9)))
	require.Empty(t, rec.ends)

	// Cancelling a pending press is silent.
	c.Pointer(press(InputMouse, 1, 3))
	c.Cancel()
	require.Len(t, rec.cancels, 1)
	require.Equal(t, ResultIgnored, c.Pointer(release(InputMouse, 1, 3)))
}

func TestClosestCenter(t *testing.T) {
	rects := column()
	id, ok := ClosestCenter(Rect{X: 0, Y: 8, W: 40, H: 4}, rects)
	require.True(t, ok)
	require.Equal(t, destination.ID(2), id)

	id, _ = ClosestCenter(Rect{X: 0, Y: 100, W: 40, H: 4}, rects)
	require.Equal(t, destination.ID(4), id)

	// Exactly halfway between cards 1 and 2 resolves to the earlier card.
	id, _ = ClosestCenter(Rect{X: 0, Y: 4, W: 40, H: 4}, rects)
	require.Equal(t, destination.ID(1), id)

	_, ok = ClosestCenter(Rect{}, nil)
	require.False(t, ok)
}

func TestKeyboardSensor(t *testing.T) {
	c, rec := newTestContext(2)
	k := NewKeyboardSensor(c)
	require.Equal(t, InputKeyboard, k.Input())

	require.False(t, k.Step(1), "no drag yet")
	require.False(t, k.Pick(99))
	require.True(t, k.Pick(2))
	require.Len(t, rec.starts, 1)
	require.Equal(t, InputKeyboard, rec.starts[0].Input)
	require.Equal(t, destination.ID(2), *c.Over())

	require.True(t, k.Step(1))
	require.Equal(t, destination.ID(3), *c.Over())
	require.True(t, k.Step(5))
	require.Equal(t, destination.ID(4), *c.Over())
	require.False(t, k.Step(1), "clamped at the end")
	require.Equal(t, Point{Y: 8}, c.Delta())

	require.Equal(t, ResultIgnored, c.Pointer(press(InputMouse, 1, 3)), "mouse ignored while keyboard owns the drag")

	require.True(t, k.Drop())
	require.Len(t, rec.ends, 1)
	require.Equal(t, destination.ID(2), rec.ends[0].ActiveID)
	require.Equal(t, destination.ID(4), *rec.ends[0].OverID)
	require.False(t, k.Drop())

	require.True(t, k.Pick(1))
	require.True(t, k.Cancel())
	require.Len(t, rec.cancels, 1)
	require.False(t, c.Dragging())
}
