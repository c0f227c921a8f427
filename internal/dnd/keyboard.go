package dnd

import "github.com/jask/wanderlist/internal/destination"

// KeyboardSensor drives a drag from discrete key presses. It has no
// activation distance: Pick starts the drag immediately and Step walks the
// drop target through the droppables in layout order.
type KeyboardSensor struct {
	ctx *Context
}

func NewKeyboardSensor(ctx *Context) *KeyboardSensor {
	return &KeyboardSensor{ctx: ctx}
}

func (k *KeyboardSensor) Input() Input { return InputKeyboard }

func (k *KeyboardSensor) Active() bool {
	return k.ctx.dragging && k.ctx.owner == InputKeyboard
}

// Pick lifts the card with the given id.
func (k *KeyboardSensor) Pick(id destination.ID) bool {
	if k.ctx.owner != "" {
		return false
	}
	if _, ok := find(k.ctx.droppables, id); !ok {
		return false
	}
	k.ctx.begin(InputKeyboard, id, Point{})
	return true
}

// Step moves the drop target by n droppables, clamped to the ends.
func (k *KeyboardSensor) Step(n int) bool {
	if !k.Active() || len(k.ctx.droppables) == 0 {
		return false
	}
	cur := k.ctx.activeID
	if k.ctx.over != nil {
		cur = *k.ctx.over
	}
	i, ok := find(k.ctx.droppables, cur)
	if !ok {
		i = 0
	}
	next := i + n
	if next < 0 {
		next = 0
	}
	if next >= len(k.ctx.droppables) {
		next = len(k.ctx.droppables) - 1
	}
	if next == i {
		return false
	}
	target := k.ctx.droppables[next]
	k.ctx.move(Point{X: target.X, Y: target.Y}.Sub(Point{X: k.ctx.startRect.X, Y: k.ctx.startRect.Y}))
	return true
}

// Drop releases the card over the current target.
func (k *KeyboardSensor) Drop() bool {
	if !k.Active() {
		return false
	}
	k.ctx.end()
	return true
}

func (k *KeyboardSensor) Cancel() bool {
	if !k.Active() {
		return false
	}
	k.ctx.Cancel()
	return true
}
