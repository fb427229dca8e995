package tabview_test

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/jpstrikesback/tabview/internal/tabview"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newTestModel() *tabview.Model {
	return tabview.New(tabview.Config{
		Routes:        threeRoutes().Routes,
		ReduceMotion:  true,
		SelfContained: true,
		FPS:           120,
		RenderPane: func(ctx tabview.PaneContext, _, _ int) string {
			return "pane:" + ctx.Route.Key
		},
	})
}

// pump feeds messages through Update, running returned commands and feeding
// their messages back in, until the model goes quiet.
func pump(t *testing.T, model *tabview.Model, msgs ...tea.Msg) []tea.Msg {
	t.Helper()

	var seen []tea.Msg
	queue := msgs
	for range 100 {
		if len(queue) == 0 {
			break
		}

		msg := queue[0]
		queue = queue[1:]
		seen = append(seen, msg)

		_, cmd := model.Update(msg)
		queue = append(queue, runCmd(cmd)...)
	}

	return seen
}

func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if msg == nil {
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, sub := range batch {
			out = append(out, runCmd(sub)...)
		}

		return out
	}

	return []tea.Msg{msg}
}

func TestModelMeasuresOnWindowSize(t *testing.T) {
	model := newTestModel()

	pump(t, model, tea.WindowSizeMsg{Width: 100, Height: 20})

	require.Equal(t, tabview.Layout{Width: 100, Height: 19, Measured: true},
		model.Coordinator().Layout())
}

func TestModelSelfContainedJump(t *testing.T) {
	model := newTestModel()

	seen := pump(t, model,
		tea.WindowSizeMsg{Width: 100, Height: 20},
		tabview.JumpToMsg{Key: "b"})

	require.Contains(t, seen, tabview.IndexChangedMsg{Index: 1})
	require.Contains(t, seen, tabview.SettledMsg{Index: 1})
	require.Equal(t, 1, model.Navigation().Index)
	require.InDelta(t, 1.0, model.Coordinator().Position().Position(), 1e-9)
}

func TestModelNextTabKey(t *testing.T) {
	model := newTestModel()

	seen := pump(t, model,
		tea.WindowSizeMsg{Width: 100, Height: 20},
		tea.KeyMsg{Type: tea.KeyTab})

	require.Contains(t, seen, tabview.IndexChangedMsg{Index: 1})
	require.Equal(t, 1, model.Navigation().Index)
}

func TestModelSilentAfterUnmount(t *testing.T) {
	model := newTestModel()
	pump(t, model, tea.WindowSizeMsg{Width: 100, Height: 20})

	model.Unmount()
	seen := pump(t, model, tabview.JumpToMsg{Key: "c"})

	require.NotContains(t, seen, tabview.IndexChangedMsg{Index: 2})
	require.Equal(t, 0, model.Navigation().Index)
}

func TestModelMouseClickJumps(t *testing.T) {
	model := newTestModel()
	pump(t, model, tea.WindowSizeMsg{Width: 60, Height: 10})

	// Zones only gain coordinates once the composed frame goes through
	// zone.Scan, the way the program loop does on every render.
	frame := zone.Scan(model.View())
	column := strings.Index(ansi.Strip(strings.Split(frame, "\n")[0]), "B")
	require.GreaterOrEqual(t, column, 0)

	click := tea.MouseMsg{
		X:      column,
		Y:      0,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	}

	// Zone bookkeeping lands asynchronously, so rescan and click until the
	// hit resolves and the self-contained model commits the index.
	require.Eventually(t, func() bool {
		zone.Scan(model.View())
		pump(t, model, click)

		return model.Navigation().Index == 1
	}, time.Second, 10*time.Millisecond)
}

func TestModelViewMidTransitionSplitsPanes(t *testing.T) {
	model := tabview.New(tabview.Config{
		Routes:        threeRoutes().Routes,
		ReduceMotion:  true,
		SelfContained: true,
		RenderPane: func(ctx tabview.PaneContext, width, _ int) string {
			return strings.Repeat(ctx.Route.Key, width)
		},
	})
	pump(t, model, tea.WindowSizeMsg{Width: 60, Height: 10})

	// Half a viewport into a gesture toward index 1: the strip must show the
	// trailing half of pane a and the leading half of pane b.
	model.Coordinator().Position().SetPan(-30)
	require.InDelta(t, 0.5, model.Coordinator().Position().Position(), 1e-9)

	lines := strings.Split(model.View(), "\n")
	require.Greater(t, len(lines), 1)
	require.Equal(t, strings.Repeat("a", 30)+strings.Repeat("b", 30), ansi.Strip(lines[1]))
}

func TestModelViewShowsBarAndActivePane(t *testing.T) {
	model := newTestModel()
	pump(t, model, tea.WindowSizeMsg{Width: 60, Height: 10})

	view := model.View()

	for _, title := range []string{"A", "B", "C"} {
		require.Contains(t, view, title)
	}
	require.Contains(t, view, "pane:a")
	require.NotContains(t, view, "pane:b")
}
