package tabview_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpstrikesback/tabview/internal/tabview"
)

func threeRoutes() tabview.NavigationState {
	return tabview.NavigationState{
		Index: 0,
		Routes: []tabview.Route{
			{Key: "a", Title: "A"},
			{Key: "b", Title: "B"},
			{Key: "c", Title: "C"},
		},
	}
}

func requireFinite(t *testing.T, v float64) {
	t.Helper()
	require.False(t, math.IsNaN(v))
	require.False(t, math.IsInf(v, 0))
}

func TestPositionFiniteUnderZeroLayouts(t *testing.T) {
	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{
		Navigation: threeRoutes(),
	})

	requireFinite(t, coord.Position().Position())

	for _, size := range [][2]int{{0, 0}, {0, 600}, {300, 0}, {300, 600}, {0, 0}} {
		coord.OnLayoutMeasured(size[0], size[1])
		requireFinite(t, coord.Position().Position())
	}
}

func TestPositionMatchesIndexAtRest(t *testing.T) {
	nav := threeRoutes()
	nav.Index = 2

	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{Navigation: nav})
	coord.OnLayoutMeasured(300, 600)

	require.Zero(t, coord.Position().Pan())
	require.InDelta(t, 2.0, coord.Position().Position(), 1e-9)
}

func TestPositionIsAStandingDerivation(t *testing.T) {
	coord := tabview.NewCoordinator(tabview.CoordinatorConfig{Navigation: threeRoutes()})
	coord.OnLayoutMeasured(300, 600)

	pos := coord.Position()
	require.InDelta(t, 0.0, pos.Position(), 1e-9)

	// A gesture half a viewport toward index 1 shows up on the next read.
	pos.SetPan(-150)
	require.InDelta(t, 0.5, pos.Position(), 1e-9)

	pos.SetOffset(-300)
	pos.SetPan(0)
	require.InDelta(t, 1.0, pos.Position(), 1e-9)
}
