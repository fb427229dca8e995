package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// TabBarHeight is the number of rows the tab bar chrome occupies above the
// pane strip.
const TabBarHeight = 1

var (
	Accent = lipgloss.Color("#f4722b")

	Black    = lipgloss.Color("#111111")
	Gray     = lipgloss.Color("#3e3e3e")
	GrayDark = lipgloss.Color("#2f3030")
	White    = lipgloss.Color("#cccccc")
	Whiter   = lipgloss.Color("#aaaaaa")

	Red    = lipgloss.Color("#B8383B")
	Blu    = lipgloss.Color("#5885A2")
	Green  = lipgloss.Color("#4d7455")
	Gold   = lipgloss.Color("#ffd700")
	Purple = lipgloss.Color("#8650ac")
	Navy   = lipgloss.Color("#476291")

	TabContainer = lipgloss.NewStyle().Align(lipgloss.Center)
	TabsInactive = lipgloss.NewStyle().Bold(true).
			Foreground(Navy).PaddingLeft(2).PaddingRight(2)
	TabsActive = lipgloss.NewStyle().
			Foreground(Purple).PaddingLeft(2).PaddingRight(2)

	PaneTitle = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	PaneBody  = lipgloss.NewStyle().Foreground(White)
	PaneDim   = lipgloss.NewStyle().Foreground(Gray)

	LogTime = lipgloss.NewStyle().Foreground(Gray).Background(Black)
	LogLine = lipgloss.NewStyle().Foreground(Gold)

	StatusRoute    = lipgloss.NewStyle().Foreground(Green).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusPosition = lipgloss.NewStyle().Foreground(Navy).PaddingRight(2).Bold(true)
	StatusSettled  = lipgloss.NewStyle().Foreground(Gray).Align(lipgloss.Right).PaddingRight(2)
	StatusMotion   = lipgloss.NewStyle().Foreground(Gold).Align(lipgloss.Right).Bold(true).PaddingRight(1)
	StatusVersion  = lipgloss.NewStyle().Foreground(Green).Bold(true).Align(lipgloss.Center)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	IconLogs     = "🪵"
	IconActivity = "📈"
	IconInfo     = "💡"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

