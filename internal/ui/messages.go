package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jpstrikesback/tabview/internal/store"
)

// LogLineMsg is one line from the followed log file, sent in by the app side
// of the program.
type LogLineMsg struct {
	When time.Time
	Line string
}

type activitiesMsg []store.Activity

func loadActivities(tabs *store.Tabs) tea.Cmd {
	return func() tea.Msg {
		activities, err := tabs.Activities(context.Background())
		if err != nil {
			slog.Error("Failed to load tab activity", slog.String("error", err.Error()))

			return nil
		}

		return activitiesMsg(activities)
	}
}

func recordActivation(tabs *store.Tabs, routeKey string) tea.Cmd {
	return func() tea.Msg {
		if err := tabs.RecordActivation(context.Background(), routeKey); err != nil {
			slog.Error("Failed to record tab activation", slog.String("error", err.Error()))

			return nil
		}

		activities, err := tabs.Activities(context.Background())
		if err != nil {
			return nil
		}

		return activitiesMsg(activities)
	}
}
