package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/wanderlist/internal/destination"
	"github.com/jask/wanderlist/internal/dnd"
)

const (
	headerHeight = 2
	cardHeight   = 4

	notAllowedMarker = "⊘"
	locationMarker   = "📍"
)

// itemState is what the drag layer knows about one card.
type itemState struct {
	Dragging bool
	Over     bool
	Selected bool
}

// renderItem draws one destination card. It always occupies cardHeight
// rows and exactly width columns so the layout never shifts mid-drag.
func renderItem(d destination.Destination, st itemState, width int) string {
	inner := max(width-4, 1)

	name := d.Name
	if st.Dragging {
		name = notAllowedMarker + " " + name
	}
	cursor := "  "
	if st.Selected {
		cursor = "▶ "
	}
	first := clip(cursor+d.Image.Glyph+"  "+name, inner)
	second := clip("    "+locationMarker+" "+d.Location, inner)

	style := cardStyle.Width(width - 2)
	switch {
	case st.Over:
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(colorDropTarget)
	case st.Selected:
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(colorCursor)
	default:
		style = style.Border(lipgloss.HiddenBorder())
	}

	if st.Dragging {
		style = style.Inherit(draggingStyle)
		return style.Render(first + "\n" + second)
	}
	return style.Render(nameStyle.Render(first) + "\n" + locationStyle.Render(second))
}

// renderPreview draws the floating card that follows the pointer.
func renderPreview(d destination.Destination, width int) string {
	label := clip(d.Image.Glyph+" "+d.Name, max(width-4, 1))
	return previewStyle.Width(width - 2).Render(nameStyle.Render(label))
}

// layoutCards places one rect per destination, keyed by id.
func layoutCards(items []destination.Destination, width int) []dnd.Rect {
	rects := make([]dnd.Rect, len(items))
	for i, d := range items {
		rects[i] = dnd.Rect{ID: d.ID, X: 0, Y: headerHeight + i*cardHeight, W: width, H: cardHeight}
	}
	return rects
}

func renderList(items []destination.Destination, states map[destination.ID]itemState, width int) string {
	cards := make([]string, len(items))
	for i, d := range items {
		cards[i] = renderItem(d, states[d.ID], width)
	}
	return strings.Join(cards, "\n")
}
