package tabview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// JumpToMsg asks the tab view to activate the route with the given key.
type JumpToMsg struct {
	Key string
}

// IndexChangedMsg is the outbound navigation request of a successful jump.
// Owners that hold the navigation state respond by applying the index and
// calling Model.SetIndex.
type IndexChangedMsg struct {
	Index int
}

// SettledMsg fires once the transition for a jump has come to rest. It is
// always deferred past the request, never delivered synchronously.
type SettledMsg struct {
	Index int
}

type frameMsg time.Time

func frameTick(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}

	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
