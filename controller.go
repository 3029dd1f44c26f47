package lineclip

// Default zoom steps applied per key press.
const (
	DefaultZoomIn  = 1.1
	DefaultZoomOut = 0.9
)

// DragState is the state of the Controller's drag gesture.
type DragState uint8

const (
	Idle DragState = iota
	Dragging
)

// String returns the state name.
func (s DragState) String() string {
	if s == Dragging {
		return "Dragging"
	}
	return "Idle"
}

// ControllerOption configures a Controller during creation.
type ControllerOption func(*Controller)

// WithZoomFactors sets the factors applied on KeyZoomIn and KeyZoomOut.
// Non-positive values keep the defaults.
func WithZoomFactors(in, out float64) ControllerOption {
	return func(c *Controller) {
		if in > 0 {
			c.zoomIn = in
		}
		if out > 0 {
			c.zoomOut = out
		}
	}
}

// Controller turns input events into moves and rescales of a Region.
//
// Transitions:
//
//	Idle     --press(primary) inside bounds--> Dragging  (offset = pos - origin)
//	Dragging --move-->                         Dragging  (origin = pos - offset)
//	Dragging --release(primary)-->             Idle
//	any      --key zoom-in / zoom-out-->       same state, region rescaled
//
// Everything else is ignored.
type Controller struct {
	region  *Region
	state   DragState
	offset  Point
	zoomIn  float64
	zoomOut float64
}

// NewController binds a controller to r.
func NewController(r *Region, opts ...ControllerOption) *Controller {
	c := &Controller{
		region:  r,
		zoomIn:  DefaultZoomIn,
		zoomOut: DefaultZoomOut,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Region returns the controlled region.
func (c *Controller) Region() *Region { return c.region }

// State returns the current drag state.
func (c *Controller) State() DragState { return c.state }

// Dragging reports whether a drag gesture is in progress.
func (c *Controller) Dragging() bool { return c.state == Dragging }

// Offset returns the pointer offset captured at drag start.
// It is the zero Point while idle.
func (c *Controller) Offset() Point { return c.offset }

// ZoomFactors returns the zoom-in and zoom-out factors.
func (c *Controller) ZoomFactors() (in, out float64) { return c.zoomIn, c.zoomOut }

// Apply folds a batch of events in order. It reports whether the region
// changed.
func (c *Controller) Apply(events []Event) bool {
	changed := false
	for _, e := range events {
		if c.Handle(e) {
			changed = true
		}
	}
	return changed
}

// Handle processes a single event and reports whether the region changed.
func (c *Controller) Handle(e Event) bool {
	switch ev := e.(type) {
	case PointerPressed:
		if ev.Button != ButtonPrimary || c.state == Dragging {
			return false
		}
		if !c.region.Contains(ev.Pos) {
			return false
		}
		c.state = Dragging
		c.offset = ev.Pos.Sub(c.region.Origin())
		Logger().Debug("drag started", "pos", ev.Pos, "offset", c.offset)
		return false

	case PointerMoved:
		if c.state != Dragging {
			return false
		}
		next := ev.Pos.Sub(c.offset)
		if next == c.region.Origin() {
			return false
		}
		c.region.Translate(next)
		return true

	case PointerReleased:
		if ev.Button != ButtonPrimary || c.state != Dragging {
			return false
		}
		c.state = Idle
		c.offset = Point{}
		Logger().Debug("drag ended", "origin", c.region.Origin())
		return false

	case KeyPressed:
		switch ev.Key {
		case KeyZoomIn:
			return c.rescale(c.zoomIn, "zoom in")
		case KeyZoomOut:
			return c.rescale(c.zoomOut, "zoom out")
		}
	}
	return false
}

func (c *Controller) rescale(factor float64, what string) bool {
	before := c.region.Scale()
	after := c.region.Rescale(factor)
	Logger().Info(what, "scale", after)
	return after != before
}
