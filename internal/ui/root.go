package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jpstrikesback/tabview/internal/config"
	"github.com/jpstrikesback/tabview/internal/store"
	"github.com/jpstrikesback/tabview/internal/tabview"
	"github.com/jpstrikesback/tabview/internal/ui/styles"
)

const statusBarHeight = 1

type keymap struct {
	quit key.Binding
}

var defaultKeyMap = keymap{
	quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
}

const (
	RouteLogs     = "logs"
	RouteActivity = "activity"
	RouteAbout    = "about"
)

func demoRoutes() []tabview.Route {
	return []tabview.Route{
		{Key: RouteLogs, Title: "Logs", Icon: styles.IconLogs},
		{Key: RouteActivity, Title: "Activity", Icon: styles.IconActivity},
		{Key: RouteAbout, Title: "About", Icon: styles.IconInfo},
	}
}

// rootModel is the top level model for the ui side of the app. It owns the
// navigation state: the tab view only requests index changes, and the root
// applies them, persists the activation, and starts the transition.
type rootModel struct {
	tabs     *tabview.Model
	logs     logsModel
	activity activityModel
	about    aboutModel
	status   statusBarModel
	tabStore *store.Tabs
	conf     config.Config
	width    int
	height   int
}

func newRootModel(conf config.Config, tabs *store.Tabs, initialKey string, buildVersion string) *rootModel {
	routes := demoRoutes()
	initialIndex := 0
	for i, route := range routes {
		if route.Key == initialKey {
			initialIndex = i
		}
	}

	model := &rootModel{
		tabStore: tabs,
		conf:     conf,
		logs:     newLogsModel(),
		activity: newActivityModel(),
		about:    newAboutModel(buildVersion, conf),
		status:   newStatusBarModel(buildVersion),
	}
	model.tabs = tabview.New(tabview.Config{
		Routes:       routes,
		InitialIndex: initialIndex,
		FPS:          conf.FPS,
		ReduceMotion: conf.ReduceMotion,
		Pager:        pagerFor(conf),
		RenderPane:   model.renderPane,
	})
	model.status.route = routes[initialIndex]

	return model
}

func pagerFor(conf config.Config) tabview.Pager {
	if conf.ReduceMotion {
		return tabview.InstantPager{}
	}

	return tabview.NewSpringPager(conf.FPS, conf.SpringFrequency, conf.SpringDamping)
}

func (m *rootModel) renderPane(ctx tabview.PaneContext, width, height int) string {
	switch ctx.Route.Key {
	case RouteLogs:
		return m.logs.View(width, height)
	case RouteActivity:
		return m.activity.View(width, height)
	case RouteAbout:
		return m.about.View(width, height)
	default:
		return ""
	}
}

func (m *rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("tabview"),
		loadActivities(m.tabStore),
	)
}

func (m *rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tabs.SetSize(msg.Width, max(0, msg.Height-statusBarHeight))
		m.status.width = msg.Width

		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, defaultKeyMap.quit) {
			m.tabs.Unmount()

			return m, tea.Quit
		}
	case tabview.IndexChangedMsg:
		nav := m.tabs.Navigation()
		if msg.Index >= 0 && msg.Index < len(nav.Routes) {
			m.status.route = nav.Routes[msg.Index]
			cmds = append(cmds,
				m.tabs.SetIndex(msg.Index),
				recordActivation(m.tabStore, nav.Routes[msg.Index].Key))
		}
	case tabview.SettledMsg:
		m.status.settledOn = time.Now()
		slog.Debug("Tab settled", slog.Int("index", msg.Index))
	case LogLineMsg:
		m.logs = m.logs.Append(msg)
	case activitiesMsg:
		m.activity.activities = msg
	case config.Config:
		m.conf = msg
		m.about.conf = msg
		m.tabs.SetPager(pagerFor(msg))
		m.tabs.Coordinator().SetReduceMotion(msg.ReduceMotion)
		m.status.reduceMotion = msg.ReduceMotion
		slog.Info("Applied config update", slog.Bool("reduce_motion", msg.ReduceMotion))
	}

	tabs, cmdTabs := m.tabs.Update(inMsg)
	m.tabs = tabs
	cmds = append(cmds, cmdTabs)

	return m, tea.Batch(cmds...)
}

func (m *rootModel) View() string {
	m.status.context = m.tabs.Coordinator().RenderContext()

	// Scanning the composed frame records the tab label zones so clicks can
	// be resolved back to routes.
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, m.tabs.View(), m.status.View()))
}
