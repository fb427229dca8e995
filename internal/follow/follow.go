// Package follow tails a text file and hands new lines to a receiver, for
// the logs pane.
package follow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/nxadm/tail"
)

var ErrOpen = errors.New("failed to open file for following")

type Line struct {
	When time.Time
	Text string
}

type Receiver func(Line)

type Follower struct {
	filePath string
	tail     *tail.Tail
}

func New(filePath string) *Follower {
	return &Follower{filePath: filePath}
}

func (f *Follower) Open() error {
	tailConfig := tail.Config{
		// Start at the end of the file, only watch for new lines.
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd,
		},
		// Ensure we don't see the log messages in stdout and mangle the ui
		Logger:    tail.DiscardingLogger,
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
	}

	tailFile, errTail := tail.TailFile(f.filePath, tailConfig)
	if errTail != nil {
		return errors.Join(errTail, ErrOpen)
	}

	f.tail = tailFile

	return nil
}

// Start reads lines until the context is cancelled. Open must have been
// called first.
func (f *Follower) Start(ctx context.Context, receiver Receiver) {
	defer func() {
		if errStop := f.tail.Stop(); errStop != nil {
			slog.Error("Failed to stop tailing file cleanly", slog.String("error", errStop.Error()))
		}
	}()

	for {
		select {
		case line, ok := <-f.tail.Lines:
			if !ok {
				return
			}
			if line.Err != nil {
				slog.Warn("Tail error", slog.String("error", line.Err.Error()))

				continue
			}
			receiver(Line{When: line.Time, Text: line.Text})
		case <-ctx.Done():
			return
		}
	}
}
