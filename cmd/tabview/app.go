package main

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jpstrikesback/tabview/internal/config"
	"github.com/jpstrikesback/tabview/internal/follow"
	"github.com/jpstrikesback/tabview/internal/ui"
)

// App owns the background side of the program: the log follower and config
// reload notifications, both feeding messages into the running UI.
type App struct {
	config        config.Config
	configUpdates chan config.Config
}

func newApp(conf config.Config, configUpdates chan config.Config) *App {
	return &App{config: conf, configUpdates: configUpdates}
}

func (app *App) Run(ctx context.Context, userUI *ui.UI) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		app.watch(ctx, userUI)

		return nil
	})

	if app.config.FollowPath != "" {
		follower := follow.New(app.config.FollowPath)
		if err := follower.Open(); err != nil {
			slog.Warn("Failed to open follow file", slog.String("error", err.Error()),
				slog.String("path", app.config.FollowPath))
		} else {
			group.Go(func() error {
				follower.Start(ctx, func(line follow.Line) {
					userUI.Send(ui.LogLineMsg{When: line.When, Line: line.Text})
				})

				return nil
			})
		}
	}

	group.Go(func() error {
		defer cancel()

		return userUI.Run()
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// watch forwards config file changes into the UI so reduce-motion and spring
// settings apply without a restart.
func (app *App) watch(ctx context.Context, userUI *ui.UI) {
	for {
		select {
		case conf := <-app.configUpdates:
			app.config = conf
			userUI.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}
