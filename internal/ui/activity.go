package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jpstrikesback/tabview/internal/store"
	"github.com/jpstrikesback/tabview/internal/ui/styles"
)

// activityModel shows per-tab activation history out of the store.
type activityModel struct {
	activities []store.Activity
}

func newActivityModel() activityModel {
	return activityModel{}
}

func (m activityModel) View(width, height int) string {
	if len(m.activities) == 0 {
		return styles.InfoMessage.Render("No tab activity recorded yet.")
	}

	rows := []string{styles.PaneTitle.Render("Tab activity")}
	for _, activity := range m.activities {
		rows = append(rows, styles.PaneBody.Render(
			fmt.Sprintf("%-12s %4d activations  ", activity.RouteKey, activity.Activations))+
			styles.PaneDim.Render("last "+humanize.Time(activity.LastActiveOn)))
	}

	if len(rows) > height && height > 0 {
		rows = rows[:height]
	}

	return strings.Join(rows, "\n")
}
