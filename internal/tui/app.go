package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/wanderlist/internal/board"
	"github.com/jask/wanderlist/internal/config"
	"github.com/jask/wanderlist/internal/database/repository"
	"github.com/jask/wanderlist/internal/destination"
	"github.com/jask/wanderlist/internal/dnd"
	"github.com/jask/wanderlist/internal/logging"
)

// OrderStore persists the display order.
type OrderStore interface {
	Load(ctx context.Context) ([]destination.ID, error)
	Save(ctx context.Context, ids []destination.ID) error
}

// MoveJournal records each reorder.
type MoveJournal interface {
	Record(ctx context.Context, m repository.Move) (repository.Move, error)
}

// Repos are optional; a nil Order disables persistence entirely.
type Repos struct {
	Order OrderStore
	Moves MoveJournal
}

// App is the composition root: it owns the board and the drag context and
// hands renderers immutable snapshots.
type App struct {
	ctx   context.Context
	cfg   config.Config
	repos Repos
	log   logging.Logger

	board    *board.Board
	dnd      *dnd.Context
	keyboard *dnd.KeyboardSensor
	layout   []dnd.Rect

	keys      keyMap
	help      help.Model
	cursor    int
	width     int
	status    string
	statusErr bool
	finding   bool
	query     string

	revision uint64
	writer   *orderWriter
	pending  []tea.Cmd
}

func New(ctx context.Context, cfg config.Config, list destination.List, repos Repos, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	log = log.With("component", "tui")
	a := &App{
		ctx:    ctx,
		cfg:    cfg,
		repos:  repos,
		log:    log,
		board:  board.New(list, board.WithLogger(log)),
		keys:   newKeyMap(),
		help:   help.New(),
		writer: &orderWriter{},
	}
	a.dnd = dnd.NewContext(dnd.ClosestCenter, dnd.Handlers{
		OnDragStart:  a.onDragStart,
		OnDragEnd:    a.onDragEnd,
		OnDragCancel: a.onDragCancel,
	},
		dnd.NewMouseSensor(dnd.ActivationConstraint{Distance: cfg.Drag.MouseDistance}),
		dnd.NewTouchSensor(dnd.ActivationConstraint{Distance: cfg.Drag.TouchDistance}),
	)
	a.keyboard = dnd.NewKeyboardSensor(a.dnd)
	a.syncLayout()
	return a
}

// Board exposes the state holder, mainly for tests and the CLI.
func (a *App) Board() *board.Board { return a.board }

func (a *App) Init() tea.Cmd {
	if a.repos.Order == nil {
		return nil
	}
	return a.loadOrder()
}

func (a *App) loadOrder() tea.Cmd {
	return func() tea.Msg {
		ids, err := a.repos.Order.Load(a.ctx)
		if err != nil {
			return errMsg{fmt.Errorf("load order: %w", err)}
		}
		return orderLoadedMsg(ids)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
		a.syncLayout()
	case tea.MouseMsg:
		a.handleMouse(tea.MouseEvent(m))
	case tea.KeyMsg:
		if cmd := a.handleKey(m); cmd != nil {
			a.pending = append(a.pending, cmd)
		}
	case orderLoadedMsg:
		a.applyOrder([]destination.ID(m))
	case orderSavedMsg:
		a.log.Debug("order saved", "revision", m.revision, "written", m.written)
	case errMsg:
		a.log.Error("store failure", "error", m.error)
		a.status = "error: " + m.Error()
		a.statusErr = true
	}
	return a, a.flush()
}

func (a *App) flush() tea.Cmd {
	if len(a.pending) == 0 {
		return nil
	}
	cmds := a.pending
	a.pending = nil
	return tea.Batch(cmds...)
}

func (a *App) handleMouse(ev tea.MouseEvent) {
	var action dnd.PointerAction
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return
		}
		action = dnd.PointerPress
		a.syncLayout()
	case tea.MouseActionMotion:
		action = dnd.PointerMotion
	case tea.MouseActionRelease:
		action = dnd.PointerRelease
	default:
		return
	}

	at := dnd.Point{X: ev.X, Y: ev.Y}
	if a.dnd.Pointer(dnd.PointerEvent{Input: dnd.InputMouse, Action: action, At: at}) == dnd.ResultClicked {
		if i, ok := a.cardAt(at); ok {
			a.cursor = i
		}
	}
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if m.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if a.finding {
		a.handleFindKey(m)
		return nil
	}
	if a.keyboard.Active() {
		switch {
		case key.Matches(m, a.keys.Up):
			a.keyboard.Step(-1)
		case key.Matches(m, a.keys.Down):
			a.keyboard.Step(1)
		case key.Matches(m, a.keys.Drop):
			a.keyboard.Drop()
		case key.Matches(m, a.keys.Cancel):
			a.keyboard.Cancel()
		}
		return nil
	}
	if a.dnd.Dragging() {
		if key.Matches(m, a.keys.Cancel) {
			a.dnd.Cancel()
		}
		return nil
	}

	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < a.board.List().Len()-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Grab):
		list := a.board.List()
		if list.Len() == 0 {
			return nil
		}
		a.syncLayout()
		a.keyboard.Pick(list.At(a.cursor).ID)
	case key.Matches(m, a.keys.Find):
		a.finding = true
		a.query = ""
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(m, a.keys.Cancel):
		a.setStatus("")
	}
	return nil
}

func (a *App) handleFindKey(m tea.KeyMsg) {
	switch m.Type {
	case tea.KeyEsc:
		a.finding = false
		a.query = ""
	case tea.KeyEnter:
		a.finding = false
		idx := closestByName(a.board.List().Items(), a.query)
		if idx < 0 {
			a.setStatus("no match")
			return
		}
		a.cursor = idx
		a.setStatus("found " + a.board.List().At(idx).Name)
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if r := []rune(a.query); len(r) > 0 {
			a.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		a.query += " "
	case tea.KeyRunes:
		a.query += string(m.Runes)
	}
}

// drag lifecycle

func (a *App) onDragStart(ev dnd.DragStart) {
	if err := a.board.StartDrag(ev.ActiveID); err != nil {
		a.log.Warn("drag start rejected", "error", err)
		return
	}
	if d, ok := a.board.List().Find(ev.ActiveID); ok {
		a.setStatus("dragging " + d.Name)
	}
}

func (a *App) onDragEnd(ev dnd.DragEnd) {
	res := a.board.EndDrag(ev.ActiveID, ev.OverID)
	switch res.Outcome {
	case board.OutcomeMoved:
		a.cursor = res.To
		a.syncLayout()
		a.setStatus(fmt.Sprintf("moved %s to position %d", res.Source.Name, res.To+1))
		if cmd := a.persistMove(res, *ev.OverID); cmd != nil {
			a.pending = append(a.pending, cmd)
		}
	case board.OutcomeDroppedOnSelf:
		a.setStatus("dropped on itself")
	case board.OutcomeNoTarget:
		a.setStatus("no drop target")
	default:
		a.setStatus("nothing moved")
	}
}

func (a *App) onDragCancel(dnd.DragCancel) {
	a.board.CancelDrag()
	a.setStatus("drag cancelled")
}

// applyOrder restores a saved order. A load that lands after the user has
// already moved a card is stale: the store holds the newer order.
func (a *App) applyOrder(ids []destination.ID) {
	if len(ids) == 0 {
		return
	}
	if a.revision > 0 {
		a.log.Info("saved order ignored after local move", "revision", a.revision)
		return
	}
	if err := a.board.Replace(a.board.List().Reorder(ids)); err != nil {
		a.log.Warn("saved order not applied", "error", err)
		return
	}
	a.syncLayout()
	a.setStatus("restored saved order")
}

func (a *App) persistMove(res board.Result, target destination.ID) tea.Cmd {
	if a.repos.Order == nil {
		return nil
	}
	a.revision++
	rev := a.revision
	ids := a.board.List().IDs()
	move := repository.Move{DestinationID: res.Source.ID, TargetID: target, FromIndex: res.From, ToIndex: res.To}
	return func() tea.Msg {
		written, err := a.writer.write(rev, func() error {
			return a.repos.Order.Save(a.ctx, ids)
		})
		if err != nil {
			return errMsg{fmt.Errorf("save order: %w", err)}
		}
		if a.repos.Moves != nil {
			if _, err := a.repos.Moves.Record(a.ctx, move); err != nil {
				return errMsg{fmt.Errorf("record move: %w", err)}
			}
		}
		return orderSavedMsg{revision: rev, written: written}
	}
}

// orderWriter drops saves that arrive after a newer one has landed;
// commands run concurrently and can finish out of order.
type orderWriter struct {
	mu      sync.Mutex
	written uint64
}

func (w *orderWriter) write(rev uint64, save func() error) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if rev <= w.written {
		return false, nil
	}
	if err := save(); err != nil {
		return false, err
	}
	w.written = rev
	return true, nil
}

// layout

func (a *App) cardWidth() int {
	w := a.cfg.UI.CardWidth
	if a.width > 0 && a.width < w {
		w = a.width
	}
	return max(w, 10)
}

func (a *App) syncLayout() {
	a.layout = layoutCards(a.board.List().Items(), a.cardWidth())
	a.dnd.SetDroppables(a.layout)
	if n := a.board.List().Len(); a.cursor >= n {
		a.cursor = max(n-1, 0)
	}
}

func (a *App) cardAt(p dnd.Point) (int, bool) {
	for i, r := range a.layout {
		if r.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

func (a *App) previewOrigin(id destination.ID) dnd.Point {
	d := a.dnd.Delta()
	for _, r := range a.layout {
		if r.ID == id {
			return dnd.Point{X: r.X + d.X + 2, Y: r.Y + d.Y + 1}
		}
	}
	return dnd.Point{X: 2, Y: headerHeight}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

// view

func (a *App) View() string {
	snap := a.board.Snapshot()
	over := a.dnd.Over()
	states := make(map[destination.ID]itemState, len(snap.Items))
	for i, d := range snap.Items {
		st := itemState{Selected: snap.ActiveID == nil && i == a.cursor}
		if snap.ActiveID != nil && *snap.ActiveID == d.ID {
			st.Dragging = true
		}
		if over != nil && *over == d.ID {
			st.Over = true
		}
		states[d.ID] = st
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Destinations"))
	b.WriteString("\n\n")
	b.WriteString(renderList(snap.Items, states, a.cardWidth()))
	b.WriteString("\n\n")
	b.WriteString(a.footer())
	out := b.String()

	if snap.Active != nil {
		preview := renderPreview(*snap.Active, a.cfg.UI.PreviewWidth)
		out = overlayAt(out, preview, a.previewOrigin(snap.Active.ID), a.width)
	}
	return out
}

func (a *App) footer() string {
	var lines []string
	if a.finding {
		lines = append(lines, promptStyle.Render("find: ")+a.query+"█")
	} else if a.status != "" {
		if a.statusErr {
			lines = append(lines, errorStyle.Render(a.status))
		} else {
			lines = append(lines, statusStyle.Render(a.status))
		}
	}
	if a.keyboard.Active() {
		lines = append(lines, a.help.View(draggingKeyMap{a.keys}))
	} else {
		lines = append(lines, a.help.View(a.keys))
	}
	return strings.Join(lines, "\n")
}

// messages
type orderLoadedMsg []destination.ID

type orderSavedMsg struct {
	revision uint64
	written  bool
}

type errMsg struct{ error }
