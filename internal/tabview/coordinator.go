package tabview

// RenderContext is the snapshot handed to every chrome and pane renderer in a
// single render pass. It is rebuilt from the live cells on each call so all
// consumers of one pass observe the same values.
type RenderContext struct {
	Position     float64
	Offset       float64
	Layout       Layout
	Navigation   NavigationState
	JumpTo       func(key string)
	ReduceMotion bool
}

// PaneContext extends RenderContext with the identity of the pane being
// rendered.
type PaneContext struct {
	RenderContext

	Route   Route
	Index   int
	Focused bool
}

type CoordinatorConfig struct {
	Navigation    NavigationState
	InitialLayout Layout
	// CanActivate gates JumpTo requests. A nil guard admits everything.
	CanActivate func(Route) bool
	// OnIndexChange is the outbound navigation request. The owner is expected
	// to update Navigation.Index and hand the new state back through
	// SetNavigation.
	OnIndexChange func(index int)
	// OnSettled fires after the transition started by a successful JumpTo has
	// come to rest, not synchronously with the request.
	OnSettled    func(index int)
	ReduceMotion bool
}

// Coordinator owns the position cells and the index-change protocol. It never
// mutates NavigationState itself; a successful JumpTo only notifies the owner
// and leaves committing the new offset to the pager.
type Coordinator struct {
	pos           *PositionModel
	nav           NavigationState
	layout        Layout
	loaded        map[int]struct{}
	mounted       bool
	pendingSettle int
	canActivate   func(Route) bool
	onIndexChange func(int)
	onSettled     func(int)
	reduceMotion  bool
}

func NewCoordinator(conf CoordinatorConfig) *Coordinator {
	return &Coordinator{
		pos:           newPositionModel(conf.Navigation.Index, conf.InitialLayout),
		nav:           conf.Navigation,
		layout:        Layout{Width: conf.InitialLayout.Width, Height: conf.InitialLayout.Height},
		loaded:        map[int]struct{}{conf.Navigation.Index: {}},
		mounted:       true,
		pendingSettle: -1,
		canActivate:   conf.CanActivate,
		onIndexChange: conf.OnIndexChange,
		onSettled:     conf.OnSettled,
		reduceMotion:  conf.ReduceMotion,
	}
}

// Position exposes the underlying cells for the pager and for renderers.
func (c *Coordinator) Position() *PositionModel { return c.pos }

func (c *Coordinator) Layout() Layout { return c.layout }

func (c *Coordinator) Navigation() NavigationState { return c.nav }

// SetNavigation replaces the coordinator's snapshot of the externally owned
// navigation state. Called by the owner after it applies an index change.
func (c *Coordinator) SetNavigation(nav NavigationState) {
	if !c.mounted {
		return
	}

	c.nav = nav
	c.MarkLoaded(nav.Index)
}

// OnLayoutMeasured reconciles the position cells with a new viewport size.
// Repeated reports of the current size are ignored, otherwise the committed
// offset is rebased so the settled position stays numerically correct for the
// active index under the new width.
func (c *Coordinator) OnLayoutMeasured(width, height int) {
	if !c.mounted {
		return
	}
	if c.layout.Measured && c.layout.Width == width && c.layout.Height == height {
		return
	}

	c.pos.SetOffset(-float64(c.nav.Index) * float64(width))
	c.pos.setSize(float64(width), float64(height))
	c.layout = Layout{Width: width, Height: height, Measured: true}
}

// JumpTo requests activation of the route with the given key. Unknown keys,
// guarded routes, re-selection of the active route, and calls after Unmount
// are all silent no-ops.
func (c *Coordinator) JumpTo(key string) {
	if !c.mounted {
		return
	}

	index := c.nav.IndexOf(key)
	if index == -1 {
		return
	}
	if c.canActivate != nil && !c.canActivate(c.nav.Routes[index]) {
		return
	}
	if index == c.nav.Index {
		return
	}

	if c.onIndexChange != nil {
		c.onIndexChange(index)
	}
	c.pendingSettle = index
}

// CompleteTransition delivers the deferred settled notification for the most
// recent successful JumpTo. The host calls it once the pager reports rest;
// liveness is re-checked here because the coordinator may have been unmounted
// while the transition was in flight.
func (c *Coordinator) CompleteTransition() {
	if !c.mounted {
		return
	}

	index := c.pendingSettle
	c.pendingSettle = -1

	if index >= 0 && c.onSettled != nil {
		c.onSettled(index)
	}
}

// Unmount puts the coordinator in its terminal state. All entry points become
// no-ops, including settled notifications still pending.
func (c *Coordinator) Unmount() {
	c.mounted = false
}

func (c *Coordinator) Mounted() bool { return c.mounted }

// SetReduceMotion updates the flag handed to renderers through the context.
func (c *Coordinator) SetReduceMotion(v bool) { c.reduceMotion = v }

// MarkLoaded records that an index has become visible at least once.
func (c *Coordinator) MarkLoaded(index int) {
	if index < 0 || index >= len(c.nav.Routes) {
		return
	}

	c.loaded[index] = struct{}{}
}

// IsLoaded reports whether an index has ever been visible. Hosts that defer
// materializing off-screen panes use it as their render predicate.
func (c *Coordinator) IsLoaded(index int) bool {
	_, ok := c.loaded[index]

	return ok
}

// RenderContext builds the per-pass snapshot. It must be called fresh each
// render, never cached across cell mutations.
func (c *Coordinator) RenderContext() RenderContext {
	return RenderContext{
		Position:     c.pos.Position(),
		Offset:       c.pos.Offset(),
		Layout:       c.layout,
		Navigation:   c.nav,
		JumpTo:       c.JumpTo,
		ReduceMotion: c.reduceMotion,
	}
}

// PaneContext builds the renderer context for a single pane within the pass
// snapshot ctx.
func (c *Coordinator) PaneContext(ctx RenderContext, index int) PaneContext {
	return PaneContext{
		RenderContext: ctx,
		Route:         c.nav.Routes[index],
		Index:         index,
		Focused:       index == c.nav.Index,
	}
}
