package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jpstrikesback/tabview/internal/tabview"
	"github.com/jpstrikesback/tabview/internal/ui/styles"
)

// statusBarModel renders the bottom row: active route, the live position
// signal, and how long ago the last transition settled.
type statusBarModel struct {
	width        int
	version      string
	route        tabview.Route
	context      tabview.RenderContext
	settledOn    time.Time
	reduceMotion bool
}

func newStatusBarModel(version string) statusBarModel {
	return statusBarModel{version: version}
}

func (m statusBarModel) View() string {
	parts := []string{
		styles.StatusRoute.Render(m.route.Icon + " " + m.route.Title),
		styles.StatusPosition.Render(fmt.Sprintf("pos %.2f", m.context.Position)),
	}

	if !m.settledOn.IsZero() {
		parts = append(parts, styles.StatusSettled.Render("settled "+humanize.Time(m.settledOn)))
	}
	if m.reduceMotion {
		parts = append(parts, styles.StatusMotion.Render("reduced motion"))
	}
	parts = append(parts, styles.StatusVersion.Render(m.version))

	return lipgloss.NewStyle().Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}
