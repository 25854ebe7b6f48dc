package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"splitpane/internal/group"
	"splitpane/internal/layout"
	"splitpane/internal/tui/themes"
)

// DefaultStep is the keyboard resize step in percent.
const DefaultStep = 10

// SplitPane is the rendering half of a pane; sizing lives in the group.
type SplitPane struct {
	Title   string
	Content func(width, height int) string
}

// SplitView renders a group.Group as panes separated by one-cell dividers.
// Dividers double as resize handles: they can be dragged with the mouse, or
// focused with tab and moved with the keyboard.
type SplitView struct {
	BaseComponent
	FocusState

	group   *group.Group
	keys    KeyMap
	panes   map[string]*SplitPane
	step    float64
	active  int
	originX int
	originY int
	err     error
}

// NewSplitView creates a view over g. Panes must be added through AddPane so
// the view can keep one handle between every pair of panes.
func NewSplitView(g *group.Group) *SplitView {
	return &SplitView{
		BaseComponent: NewBaseComponent(),
		group:         g,
		keys:          DefaultKeyMap(g.Direction()),
		panes:         make(map[string]*SplitPane),
		step:          DefaultStep,
	}
}

// WithStep sets the keyboard resize step
func (s *SplitView) WithStep(step float64) *SplitView {
	s.SetStep(step)
	return s
}

// WithTheme sets the theme
func (s *SplitView) WithTheme(theme *themes.Theme) *SplitView {
	s.SetTheme(theme)
	return s
}

// WithSize sets the container dimensions
func (s *SplitView) WithSize(width, height int) *SplitView {
	s.SetSize(width, height)
	return s
}

// WithOrigin sets the screen cell of the view's top-left corner, used to map
// mouse coordinates.
func (s *SplitView) WithOrigin(x, y int) *SplitView {
	s.originX, s.originY = x, y
	return s
}

// WithKeyMap replaces the key bindings
func (s *SplitView) WithKeyMap(km KeyMap) *SplitView {
	s.keys = km
	return s
}

// SetStep sets the keyboard resize step. Non-positive values are ignored.
func (s *SplitView) SetStep(step float64) {
	if step > 0 {
		s.step = step
	}
}

// Step returns the keyboard resize step
func (s *SplitView) Step() float64 { return s.step }

// Group returns the underlying group
func (s *SplitView) Group() *group.Group { return s.group }

// KeyMap returns the key bindings
func (s *SplitView) KeyMap() KeyMap { return s.keys }

// ActiveHandle returns the index of the keyboard-focused handle
func (s *SplitView) ActiveHandle() int { return s.active }

// Err returns the error of the last rejected input, if any.
func (s *SplitView) Err() error { return s.err }

// AddPane registers p with the group and renders it with view.
func (s *SplitView) AddPane(p group.Pane, view SplitPane) (string, error) {
	id, err := s.group.RegisterPane(p)
	if err != nil {
		return "", err
	}
	s.panes[id] = &view
	s.syncHandles()
	return id, nil
}

// RemovePane unregisters a pane from the group.
func (s *SplitView) RemovePane(id string) bool {
	if !s.group.UnregisterPane(id) {
		return false
	}
	delete(s.panes, id)
	s.syncHandles()
	return true
}

func handleID(i int) string { return fmt.Sprintf("handle-%d", i) }

func (s *SplitView) syncHandles() {
	want := max(len(s.group.PaneIDs())-1, 0)
	have := len(s.group.Handles())
	for i := have; i < want; i++ {
		_ = s.group.RegisterHandle(handleID(i))
	}
	for i := have - 1; i >= want; i-- {
		s.group.UnregisterHandle(handleID(i))
	}
	if s.active >= want {
		s.active = max(want-1, 0)
	}
}

// Init implements tea.Model
func (s *SplitView) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *SplitView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if s.Focused() {
			s.handleKey(msg)
		}
	case tea.MouseMsg:
		s.handleMouse(msg)
	}
	return s, nil
}

func (s *SplitView) handleKey(msg tea.KeyMsg) {
	handles := s.group.Handles()
	if len(handles) == 0 {
		return
	}
	if s.active >= len(handles) {
		s.active = 0
	}
	h := handles[s.active]

	switch {
	case key.Matches(msg, s.keys.NextHandle):
		s.active = (s.active + 1) % len(handles)
	case key.Matches(msg, s.keys.PrevHandle):
		s.active = (s.active - 1 + len(handles)) % len(handles)
	case key.Matches(msg, s.keys.Shrink):
		s.err = s.group.UpdateDrag(h, -s.step, layout.TriggerKeyboard)
	case key.Matches(msg, s.keys.Grow):
		s.err = s.group.UpdateDrag(h, s.step, layout.TriggerKeyboard)
	case key.Matches(msg, s.keys.Min):
		s.err = s.group.UpdateDrag(h, -100, layout.TriggerKeyboard)
	case key.Matches(msg, s.keys.Max):
		s.err = s.group.UpdateDrag(h, 100, layout.TriggerKeyboard)
	case key.Matches(msg, s.keys.Toggle):
		s.err = s.toggle(h)
	}
}

// toggle collapses or expands the pane before handle h.
func (s *SplitView) toggle(h string) error {
	pivot, err := s.group.Pivot(h)
	if err != nil {
		return err
	}
	id := s.group.PaneIDs()[pivot.Before]
	collapsed, err := s.group.IsCollapsed(id)
	if err != nil {
		return err
	}
	if collapsed {
		return s.group.ExpandPane(id)
	}
	return s.group.CollapsePane(id)
}

func (s *SplitView) handleMouse(msg tea.MouseMsg) {
	pos := s.position(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		idx, rect, ok := s.dividerAt(pos)
		if !ok {
			return
		}
		s.active = idx
		s.err = s.group.StartDrag(handleID(idx), float64(pos), rect)
	case tea.MouseActionMotion:
		d, ok := s.group.Drag()
		if !ok {
			return
		}
		delta := d.Delta(float64(pos), float64(s.paneArea()))
		s.err = s.group.UpdateDrag(d.HandleID, delta, layout.TriggerPointer)
	case tea.MouseActionRelease:
		s.group.StopDrag()
	}
}

func (s *SplitView) horizontal() bool {
	return s.group.Direction() == group.Horizontal
}

// position maps a mouse event onto the resize axis, relative to the origin.
func (s *SplitView) position(msg tea.MouseMsg) int {
	if s.horizontal() {
		return msg.X - s.originX
	}
	return msg.Y - s.originY
}

func (s *SplitView) size() (width, height int) {
	width, height = s.width, s.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 1
	}
	return width, height
}

// paneArea is the number of cells along the axis shared by the panes.
func (s *SplitView) paneArea() int {
	width, height := s.size()
	axis := height
	if s.horizontal() {
		axis = width
	}
	return max(axis-len(s.group.Handles()), 0)
}

// dividerAt returns the handle drawn at pos along the axis.
func (s *SplitView) dividerAt(pos int) (int, group.Rect, bool) {
	width, height := s.size()
	cells := CellSizes(s.group.Layout(), s.paneArea())
	handles := len(s.group.Handles())

	offset := 0
	for i := 0; i < len(cells)-1 && i < handles; i++ {
		offset += cells[i]
		if pos == offset {
			rect := group.Rect{X: float64(offset), Width: 1, Height: float64(height)}
			if !s.horizontal() {
				rect = group.Rect{Y: float64(offset), Width: float64(width), Height: 1}
			}
			return i, rect, true
		}
		offset++
	}
	return 0, group.Rect{}, false
}

// View implements tea.Model
func (s *SplitView) View() string {
	return s.ViewWidth(s.width)
}

// ViewWidth renders the split view at a specific width
func (s *SplitView) ViewWidth(width int) string {
	if width > 0 && width != s.width {
		s.width = width
	}
	width, height := s.size()

	ids := s.group.PaneIDs()
	if len(ids) == 0 {
		return ""
	}
	cells := CellSizes(s.group.Layout(), s.paneArea())

	parts := make([]string, 0, 2*len(ids)-1)
	for i, id := range ids {
		if i > 0 {
			parts = append(parts, s.renderDivider(i-1, width, height))
		}
		w, h := width, height
		if s.horizontal() {
			w = cells[i]
		} else {
			h = cells[i]
		}
		if w == 0 || h == 0 {
			continue
		}
		parts = append(parts, s.renderPane(id, w, h))
	}

	if s.horizontal() {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *SplitView) renderPane(id string, w, h int) string {
	theme := s.Theme()
	pane := s.panes[id]

	var lines []string
	bodyHeight := h
	if pane != nil && pane.Title != "" {
		lines = append(lines, theme.Title.Render(truncate(pane.Title, w)))
		bodyHeight--
	}
	if pane != nil && pane.Content != nil && bodyHeight > 0 {
		lines = append(lines, pane.Content(w, bodyHeight))
	}

	return theme.Pane.
		Width(w).
		Height(h).
		MaxWidth(w).
		MaxHeight(h).
		Render(strings.Join(lines, "\n"))
}

func (s *SplitView) renderDivider(idx, width, height int) string {
	theme := s.Theme()

	style := theme.Divider
	if s.Focused() && idx == s.active {
		style = theme.DividerFocus
	}
	if d, ok := s.group.Drag(); ok && d.HandleID == handleID(idx) {
		style = theme.DividerFocus
		if s.group.Cursor().Blocked() {
			style = theme.DividerBlocked
		}
	}

	if s.horizontal() {
		return style.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
	}
	return style.Render(strings.Repeat("─", width))
}

// StatusLine summarizes the layout and cursor for a footer.
func (s *SplitView) StatusLine() string {
	theme := s.Theme()
	status := fmt.Sprintf("layout [%s]  cursor %s", s.group.Layout(), s.group.Cursor())
	if s.err != nil {
		return theme.Status.Render(status) + "  " + theme.Error.Render(s.err.Error())
	}
	return theme.Status.Render(status)
}

// HelpView renders the short key help.
func (s *SplitView) HelpView() string {
	theme := s.Theme()
	items := make([]string, 0, len(s.keys.ShortHelp()))
	for _, b := range s.keys.ShortHelp() {
		h := b.Help()
		items = append(items, theme.HelpKey.Render(h.Key)+" "+theme.HelpDesc.Render(h.Desc))
	}
	return theme.Help.Render(strings.Join(items, " • "))
}

// Focus implements FocusableComponent
func (s *SplitView) Focus() tea.Cmd {
	s.FocusState.Focus()
	return nil
}
