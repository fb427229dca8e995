package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jpstrikesback/tabview/internal/config"
	"github.com/jpstrikesback/tabview/internal/store"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, conf config.Config, tabs *store.Tabs, initialKey string, buildVersion string) *UI {
	zone.NewGlobal()

	fps := conf.FPS
	if fps <= 0 {
		fps = 60
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(conf, tabs, initialKey, buildVersion),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(fps)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
