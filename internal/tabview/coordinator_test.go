package tabview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpstrikesback/tabview/internal/tabview"
)

func TestLayoutMeasurementIsIdempotent(t *testing.T) {
	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{Navigation: threeRoutes()})
	coord.OnLayoutMeasured(400, 800)

	require.Equal(t, tabview.Layout{Width: 400, Height: 800, Measured: true}, coord.Layout())

	// An offset written by the pager mid-flight must survive a repeated
	// report of the same size; only a real size change rebases.
	coord.Position().SetOffset(-123)
	coord.OnLayoutMeasured(400, 800)

	require.InDelta(t, -123, coord.Position().Offset(), 1e-9)
	require.Equal(t, tabview.Layout{Width: 400, Height: 800, Measured: true}, coord.Layout())
}

func TestLayoutMeasurementRebasesOffset(t *testing.T) {
	nav := threeRoutes()
	nav.Index = 1

	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{Navigation: nav})

	coord.OnLayoutMeasured(250, 500)
	require.InDelta(t, -250, coord.Position().Offset(), 1e-9)

	coord.OnLayoutMeasured(400, 800)
	require.InDelta(t, -400, coord.Position().Offset(), 1e-9)
	require.InDelta(t, 1.0, coord.Position().Position(), 1e-9)
}

func TestBootstrapFromZeroEstimate(t *testing.T) {
	nav := threeRoutes()
	nav.Index = 1

	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{Navigation: nav})

	coord.OnLayoutMeasured(0, 0)
	requireFinite(t, coord.Position().Position())

	coord.OnLayoutMeasured(400, 800)
	require.InDelta(t, -400, coord.Position().Offset(), 1e-9)
	requireFinite(t, coord.Position().Position())
}

func TestJumpToNotifiesOwnerExactlyOnce(t *testing.T) {
	var notified []int
	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{
		Navigation:    threeRoutes(),
		InitialLayout: tabview.Layout{Width: 300, Height: 600},
		OnIndexChange: func(index int) { notified = append(notified, index) },
	})

	coord.JumpTo("b")

	require.Equal(t, []int{1}, notified)
	// Committing the new offset is the pager's job, not the coordinator's.
	require.InDelta(t, 0, coord.Position().Offset(), 1e-9)
}

func TestJumpToGuardBlocksNotification(t *testing.T) {
	var notified []int
	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{
		Navigation:    threeRoutes(),
		InitialLayout: tabview.Layout{Width: 300, Height: 600},
		CanActivate:   func(tabview.Route) bool { return false },
		OnIndexChange: func(index int) { notified = append(notified, index) },
	})

	for _, key := range []string{"a", "b", "c"} {
		coord.JumpTo(key)
	}

	require.Empty(t, notified)
	require.InDelta(t, 0, coord.Position().Offset(), 1e-9)
}

func TestJumpToCurrentKeyIsNoop(t *testing.T) {
	var notified []int
	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{
		Navigation:    threeRoutes(),
		OnIndexChange: func(index int) { notified = append(notified, index) },
	})

	coord.JumpTo("a")

	require.Empty(t, notified)
}

func TestJumpToUnknownKeyIsNoop(t *testing.T) {
	var notified []int
	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{
		Navigation:    threeRoutes(),
		OnIndexChange: func(index int) { notified = append(notified, index) },
	})

	coord.JumpTo("nope")

	require.Empty(t, notified)
}

func TestSettledNotificationIsDeferred(t *testing.T) {
	var settled []int
	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{
		Navigation:    threeRoutes(),
		OnIndexChange: func(int) {},
		OnSettled:     func(index int) { settled = append(settled, index) },
	})

	coord.JumpTo("c")
	require.Empty(t, settled)

	coord.CompleteTransition()
	require.Equal(t, []int{2}, settled)

	// Completing again does not repeat the notification.
	coord.CompleteTransition()
	require.Equal(t, []int{2}, settled)
}

func TestUnmountedCoordinatorIsSilent(t *testing.T) {
	var notified, settled []int
	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{
		Navigation:    threeRoutes(),
		InitialLayout: tabview.Layout{Width: 300, Height: 600},
		OnIndexChange: func(index int) { notified = append(notified, index) },
		OnSettled:     func(index int) { settled = append(settled, index) },
	})

	// A jump already decided, then an unmount racing the settle.
	coord.JumpTo("b")
	coord.Unmount()
	coord.CompleteTransition()

	require.Equal(t, []int{1}, notified)
	require.Empty(t, settled)

	coord.JumpTo("c")
	coord.OnLayoutMeasured(999, 999)

	require.Equal(t, []int{1}, notified)
	require.Equal(t, tabview.Layout{Width: 300, Height: 600}, coord.Layout())
}

func TestLoadedIndicesGrowWithActivation(t *testing.T) {
	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{Navigation: threeRoutes()})

	require.True(t, coord.IsLoaded(0))
	require.False(t, coord.IsLoaded(2))

	nav := coord.Navigation()
	nav.Index = 2
	coord.SetNavigation(nav)

	require.True(t, coord.IsLoaded(2))
	require.False(t, coord.IsLoaded(1))
}

func TestRenderContextSnapshotsCells(t *testing.T) {
	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{Navigation: threeRoutes()})
	coord.OnLayoutMeasured(300, 600)

	ctx := coord.RenderContext()
	require.InDelta(t, 0.0, ctx.Position, 1e-9)

	coord.Position().SetPan(-150)

	// The old snapshot is immutable; a rebuilt one reflects the write.
	require.InDelta(t, 0.0, ctx.Position, 1e-9)
	require.InDelta(t, 0.5, coord.RenderContext().Position, 1e-9)

	pane := coord.PaneContext(coord.RenderContext(), 1)
	require.Equal(t, "b", pane.Route.Key)
	require.Equal(t, 1, pane.Index)
	require.False(t, pane.Focused)
}
