package ui

import (
	"fmt"
	"strings"

	"github.com/jpstrikesback/tabview/internal/config"
	"github.com/jpstrikesback/tabview/internal/ui/styles"
)

type aboutModel struct {
	version string
	conf    config.Config
}

func newAboutModel(version string, conf config.Config) aboutModel {
	return aboutModel{version: version, conf: conf}
}

func (m aboutModel) View(width, height int) string {
	rows := []string{
		styles.PaneTitle.Render("tabview"),
		"",
		styles.DetailRow("Version", m.version),
		styles.DetailRow("Reduce motion", fmt.Sprintf("%v", m.conf.ReduceMotion)),
		styles.DetailRow("Spring", fmt.Sprintf("%.1f Hz / %.1f damping", m.conf.SpringFrequency, m.conf.SpringDamping)),
		styles.DetailRow("FPS", fmt.Sprintf("%d", m.conf.FPS)),
		"",
		styles.PaneDim.Render("tab / shift+tab to switch panes, click a label, q to quit"),
	}

	if len(rows) > height && height > 0 {
		rows = rows[:height]
	}

	return strings.Join(rows, "\n")
}
