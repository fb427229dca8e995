package tabview

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jpstrikesback/tabview/internal/ui/styles"
)

type KeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
}

var DefaultKeyMap = KeyMap{
	NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
}

// PaneRenderer draws one pane's content at the given size. The returned
// string is placed into a cell-exact box by the model.
type PaneRenderer func(ctx PaneContext, width, height int) string

type Config struct {
	Routes        []Route
	InitialIndex  int
	InitialLayout Layout
	CanActivate   func(Route) bool
	RenderPane    PaneRenderer
	Keys          KeyMap
	Pager         Pager
	FPS           int
	ReduceMotion  bool
	// SelfContained makes the model own its navigation state: it applies
	// IndexChangedMsg itself instead of waiting for the owner to SetIndex.
	SelfContained bool
	// LazyMount defers rendering a pane until its index first becomes
	// visible; unseen panes draw as an empty box.
	LazyMount bool
}

// Model hosts the coordinator inside a bubbletea program: window sizes become
// layout measurements, keys and mouse clicks become jump requests, and frame
// ticks drive the pager while a transition is in flight.
type Model struct {
	coord      *Coordinator
	pager      Pager
	render     PaneRenderer
	keys       KeyMap
	out        *outbox
	zonePrefix string
	fps        int
	selfOwned  bool
	lazyMount  bool
	animating  bool
	width      int
	height     int
}

// outbox collects notifications raised by coordinator callbacks during a
// single Update call, to be drained into tea messages afterwards.
type outbox struct {
	indexChanged []int
	settled      []int
}

func New(conf Config) *Model {
	if conf.RenderPane == nil {
		conf.RenderPane = func(PaneContext, int, int) string { return "" }
	}
	if conf.Pager == nil {
		if conf.ReduceMotion {
			conf.Pager = InstantPager{}
		} else {
			conf.Pager = NewSpringPager(conf.FPS, defaultSpringFrequency, defaultSpringDamping)
		}
	}
	if conf.Keys.NextTab.Keys() == nil {
		conf.Keys = DefaultKeyMap
	}

	out := &outbox{}
	coord := NewCoordinator(CoordinatorConfig{
		Navigation:    NavigationState{Index: conf.InitialIndex, Routes: conf.Routes},
		InitialLayout: conf.InitialLayout,
		CanActivate:   conf.CanActivate,
		OnIndexChange: func(index int) { out.indexChanged = append(out.indexChanged, index) },
		OnSettled:     func(index int) { out.settled = append(out.settled, index) },
		ReduceMotion:  conf.ReduceMotion,
	})

	return &Model{
		coord:      coord,
		pager:      conf.Pager,
		render:     conf.RenderPane,
		keys:       conf.Keys,
		out:        out,
		zonePrefix: zone.NewPrefix(),
		fps:        conf.FPS,
		selfOwned:  conf.SelfContained,
		lazyMount:  conf.LazyMount,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Coordinator exposes the underlying protocol object, mainly for owners that
// need the render context outside of View (status bars and the like).
func (m *Model) Coordinator() *Coordinator { return m.coord }

// Navigation returns the model's current snapshot of the navigation state.
func (m *Model) Navigation() NavigationState { return m.coord.Navigation() }

// SetSize allocates a region to the tab view: one row of tab bar, the rest
// pane strip. Repeated identical sizes are absorbed by the coordinator.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.coord.OnLayoutMeasured(width, max(0, height-styles.TabBarHeight))
}

// SetIndex applies an index change decided by the owner and starts the
// transition toward it. The returned command drives the animation frames.
func (m *Model) SetIndex(index int) tea.Cmd {
	nav := m.coord.Navigation()
	if index < 0 || index >= len(nav.Routes) || !m.coord.Mounted() {
		return nil
	}

	fromIndex := nav.Index
	nav.Index = index
	m.coord.SetNavigation(nav)
	m.pager.Start(m.coord.Position(), fromIndex, index, m.coord.Layout().Width)
	m.animating = true

	return frameTick(m.fps)
}

// SetPager swaps the transition strategy. Takes effect on the next commit; a
// transition already in flight finishes under the old pager.
func (m *Model) SetPager(pager Pager) {
	if pager != nil && !m.animating {
		m.pager = pager
	}
}

// Unmount tears the view down. Every message arriving afterwards, including
// frames already queued, is absorbed without effect.
func (m *Model) Unmount() {
	m.animating = false
	m.coord.Unmount()
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.coord.Mounted() {
		return m, nil
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextTab):
			m.coord.JumpTo(m.adjacentKey(1))
		case key.Matches(msg, m.keys.PrevTab):
			m.coord.JumpTo(m.adjacentKey(-1))
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for _, route := range m.coord.Navigation().Routes {
				if zone.Get(m.zonePrefix + route.Key).InBounds(msg) {
					m.coord.JumpTo(route.Key)

					break
				}
			}
		}
	case JumpToMsg:
		m.coord.JumpTo(msg.Key)
	case IndexChangedMsg:
		if m.selfOwned {
			cmds = append(cmds, m.SetIndex(msg.Index))
		}
	case frameMsg:
		if m.animating {
			if m.pager.Step(m.coord.Position()) {
				m.animating = false
				m.coord.CompleteTransition()
			} else {
				cmds = append(cmds, frameTick(m.fps))
			}
		}
	}

	cmds = append(cmds, m.drainOutbox()...)

	return m, tea.Batch(cmds...)
}

// drainOutbox converts notifications captured during this Update into
// messages, so owners observe them through the normal program loop.
func (m *Model) drainOutbox() []tea.Cmd {
	var cmds []tea.Cmd

	for _, index := range m.out.indexChanged {
		i := index
		cmds = append(cmds, func() tea.Msg { return IndexChangedMsg{Index: i} })
	}
	for _, index := range m.out.settled {
		i := index
		cmds = append(cmds, func() tea.Msg { return SettledMsg{Index: i} })
	}

	m.out.indexChanged = m.out.indexChanged[:0]
	m.out.settled = m.out.settled[:0]

	return cmds
}

func (m *Model) adjacentKey(direction int) string {
	nav := m.coord.Navigation()
	if len(nav.Routes) == 0 {
		return ""
	}

	index := (nav.Index + direction + len(nav.Routes)) % len(nav.Routes)

	return nav.Routes[index].Key
}

// View renders the tab bar and pane strip. The embedding model must pass its
// final composed frame through zone.Scan, otherwise the marked tab labels
// never get coordinates and clicks cannot resolve.
func (m *Model) View() string {
	ctx := m.coord.RenderContext()

	return lipgloss.JoinVertical(lipgloss.Left, m.viewTabBar(ctx), m.viewStrip(ctx))
}

func (m *Model) viewTabBar(ctx RenderContext) string {
	var tabs []string

	for i, route := range ctx.Navigation.Routes {
		label := strings.TrimSpace(route.Icon + " " + route.Title)
		if i == ctx.Navigation.Index {
			tabs = append(tabs, zone.Mark(m.zonePrefix+route.Key, styles.TabsActive.Render(label)))
		} else {
			tabs = append(tabs, zone.Mark(m.zonePrefix+route.Key, styles.TabsInactive.Render(label)))
		}
	}

	return styles.TabContainer.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// viewStrip windows the pane strip at the column offset derived from the
// continuous position. At rest it shows exactly the active pane; mid-flight
// it shows the two adjacent panes split at the fractional boundary.
func (m *Model) viewStrip(ctx RenderContext) string {
	width := ctx.Layout.Width
	height := ctx.Layout.Height
	routes := ctx.Navigation.Routes

	if width <= 0 || height <= 0 || len(routes) == 0 {
		return ""
	}

	pos := clampFloat(ctx.Position, 0, float64(len(routes)-1))
	left := int(math.Floor(pos))
	right := int(math.Ceil(pos))
	shift := int(math.Round((pos - float64(left)) * float64(width)))

	if left == right || shift == 0 {
		return m.viewPane(ctx, left, width, height)
	}

	leftLines := strings.Split(m.viewPane(ctx, left, width, height), "\n")
	rightLines := strings.Split(m.viewPane(ctx, right, width, height), "\n")

	lines := make([]string, 0, height)
	for i := range height {
		row := leftLines[i] + rightLines[i]
		row = ansi.TruncateLeft(row, shift, "")
		lines = append(lines, ansi.Truncate(row, width, ""))
	}

	return strings.Join(lines, "\n")
}

// viewPane renders one pane into a cell-exact box. With LazyMount enabled a
// pane that has never been activated shows as an empty box until the first
// commit marks it loaded; without it every visible pane renders.
func (m *Model) viewPane(ctx RenderContext, index, width, height int) string {
	var content string
	if !m.lazyMount || m.coord.IsLoaded(index) || index == ctx.Navigation.Index {
		content = m.render(m.coord.PaneContext(ctx, index), width, height)
		m.coord.MarkLoaded(index)
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content)
}

func clampFloat(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}

	return v
}
