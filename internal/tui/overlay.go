package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/wanderlist/internal/dnd"
)

// overlayAt draws the drag preview over the rendered frame with its top-left
// corner at cell at. Preview rows that fall outside the frame are dropped.
// When width is positive the preview is kept inside it and every touched
// row is clipped to it.
func overlayAt(frame, preview string, at dnd.Point, width int) string {
	rows := strings.Split(frame, "\n")
	previewWidth := lipgloss.Width(preview)
	x := max(at.X, 0)
	if width > 0 && x+previewWidth > width {
		x = max(width-previewWidth, 0)
	}

	for i, cells := range strings.Split(preview, "\n") {
		row := at.Y + i
		if row < 0 || row >= len(rows) {
			continue
		}
		under := rows[row]
		composed := padCells(ansi.Truncate(under, x, ""), x) +
			padCells(cells, previewWidth) +
			ansi.TruncateLeft(under, x+previewWidth, "")
		if width > 0 {
			composed = ansi.Truncate(composed, width, "")
		}
		rows[row] = composed
	}
	return strings.Join(rows, "\n")
}

// padCells widens s with trailing blanks to exactly w cells. Wider input is
// returned as is.
func padCells(s string, w int) string {
	return lipgloss.PlaceHorizontal(w, lipgloss.Left, s)
}

// clip shortens a card line to w cells, marking the cut with an ellipsis.
func clip(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "…")
}
