package tabview

// Route is one selectable pane in the tab view. Keys must be unique across
// the route set.
type Route struct {
	Key   string
	Title string
	Icon  string
}

// NavigationState is owned by the embedding model. The tab view only ever
// reads it; index changes are requested through the coordinator and applied
// by the owner.
type NavigationState struct {
	Index  int
	Routes []Route
}

func (s NavigationState) IndexOf(key string) int {
	for i, route := range s.Routes {
		if route.Key == key {
			return i
		}
	}

	return -1
}

func (s NavigationState) Current() Route {
	if s.Index < 0 || s.Index >= len(s.Routes) {
		return Route{}
	}

	return s.Routes[s.Index]
}

// Layout is the measured viewport of the pane strip. Measured stays false
// until the first real size arrives, so callers can distinguish an estimate
// from a measurement.
type Layout struct {
	Width    int
	Height   int
	Measured bool
}
