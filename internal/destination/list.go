package destination

// List is an immutable ordered sequence of destinations. Every reorder
// produces a new List; slices handed out by a List are copies.
type List struct {
	items []Destination
}

// NewList validates items and returns them as a List in the given order.
func NewList(items ...Destination) (List, error) {
	if err := validate(items); err != nil {
		return List{}, err
	}
	return List{items: append([]Destination(nil), items...)}, nil
}

// MustDefaults returns the default destinations as a List.
func MustDefaults() List {
	l, err := NewList(Defaults()...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l List) Len() int { return len(l.items) }

func (l List) At(i int) Destination { return l.items[i] }

func (l List) Items() []Destination {
	return append([]Destination(nil), l.items...)
}

func (l List) IDs() []ID {
	ids := make([]ID, len(l.items))
	for i, d := range l.items {
		ids[i] = d.ID
	}
	return ids
}

// IndexOf returns the position of id, or -1.
func (l List) IndexOf(id ID) int {
	for i, d := range l.items {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func (l List) Find(id ID) (Destination, bool) {
	if i := l.IndexOf(id); i >= 0 {
		return l.items[i], true
	}
	return Destination{}, false
}

// MoveID moves source into target's current slot. The bool is false, and
// the receiver is returned unchanged, when either id is unknown or the two
// ids are equal.
func (l List) MoveID(source, target ID) (List, bool) {
	if source == target {
		return l, false
	}
	from, to := l.IndexOf(source), l.IndexOf(target)
	if from < 0 || to < 0 {
		return l, false
	}
	return List{items: Move(l.items, from, to)}, true
}

// Reorder applies a saved id order. Known ids listed in ids come first;
// anything the saved order does not mention keeps its relative position
// after them. Unknown ids are ignored.
func (l List) Reorder(ids []ID) List {
	out := make([]Destination, 0, len(l.items))
	placed := make(map[ID]bool, len(l.items))
	for _, id := range ids {
		if placed[id] {
			continue
		}
		if d, ok := l.Find(id); ok {
			out = append(out, d)
			placed[id] = true
		}
	}
	for _, d := range l.items {
		if !placed[d.ID] {
			out = append(out, d)
		}
	}
	return List{items: out}
}

// Move removes the element at from and reinserts it at to, shifting the
// run in between by one. The input slice is never modified.
func Move[T any](s []T, from, to int) []T {
	out := append([]T(nil), s...)
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return out
	}
	v := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = v
	return out
}
