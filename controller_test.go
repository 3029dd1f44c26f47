package lineclip

import (
	"math"
	"testing"
)

func press(x, y float64) PointerPressed {
	return PointerPressed{Button: ButtonPrimary, Pos: Pt(x, y)}
}

func release() PointerReleased {
	return PointerReleased{Button: ButtonPrimary}
}

func move(x, y float64) PointerMoved {
	return PointerMoved{Pos: Pt(x, y)}
}

func TestController_Drag(t *testing.T) {
	r := demoRegion()
	c := NewController(r)

	if c.Handle(press(300, 200)) {
		t.Error("press should not change the region")
	}
	if !c.Dragging() || c.State() != Dragging {
		t.Fatalf("State = %v, want Dragging", c.State())
	}
	if c.Offset() != Pt(100, 50) {
		t.Errorf("Offset = %v, want (100, 50)", c.Offset())
	}

	if !c.Handle(move(350, 260)) {
		t.Error("move while dragging should change the region")
	}
	if r.Origin() != Pt(250, 210) {
		t.Errorf("Origin = %v, want (250, 210)", r.Origin())
	}

	c.Handle(release())
	if c.State() != Idle {
		t.Errorf("State = %v, want Idle", c.State())
	}
	if c.Offset() != (Point{}) {
		t.Errorf("Offset = %v, want zero after release", c.Offset())
	}

	if c.Handle(move(0, 0)) {
		t.Error("move after release should be ignored")
	}
	if r.Origin() != Pt(250, 210) {
		t.Errorf("Origin moved while idle: %v", r.Origin())
	}
}

func TestController_PressOutsideIgnored(t *testing.T) {
	r := demoRegion()
	c := NewController(r)

	c.Handle(press(50, 50))
	if c.State() != Idle {
		t.Fatal("press outside bounds should not start a drag")
	}
	c.Handle(move(100, 100))
	if r.Origin() != Pt(200, 150) {
		t.Errorf("Origin = %v, want unchanged", r.Origin())
	}
}

func TestController_PressOnEdgeStartsDrag(t *testing.T) {
	c := NewController(demoRegion())
	c.Handle(press(600, 450))
	if !c.Dragging() {
		t.Error("press on the bottom-right corner should start a drag")
	}
}

func TestController_NonPrimaryButtons(t *testing.T) {
	c := NewController(demoRegion())

	c.Handle(PointerPressed{Button: ButtonSecondary, Pos: Pt(300, 200)})
	if c.Dragging() {
		t.Fatal("secondary press should not start a drag")
	}

	c.Handle(press(300, 200))
	c.Handle(PointerReleased{Button: ButtonMiddle})
	if !c.Dragging() {
		t.Error("middle release should not end a primary drag")
	}
}

func TestController_SecondPressIgnored(t *testing.T) {
	r := demoRegion()
	c := NewController(r)

	c.Handle(press(300, 200))
	c.Handle(press(500, 400))
	if c.Offset() != Pt(100, 50) {
		t.Errorf("Offset = %v, second press must not re-anchor", c.Offset())
	}
}

func TestController_ReleaseWithoutPress(t *testing.T) {
	r := demoRegion()
	c := NewController(r)
	if c.Handle(release()) || c.State() != Idle {
		t.Error("release while idle should be a no-op")
	}
}

func TestController_MoveToSamePositionUnchanged(t *testing.T) {
	c := NewController(demoRegion())
	c.Handle(press(300, 200))
	if c.Handle(move(300, 200)) {
		t.Error("move to the press point should not report a change")
	}
}

func TestController_DragOffScreen(t *testing.T) {
	r := demoRegion()
	c := NewController(r)
	c.Apply([]Event{press(210, 160), move(-500, -500)})
	if r.Origin() != Pt(-510, -510) {
		t.Errorf("Origin = %v, region may leave the canvas", r.Origin())
	}
}

func TestController_Zoom(t *testing.T) {
	r := demoRegion()
	c := NewController(r)

	if !c.Handle(KeyPressed{Key: KeyZoomIn}) {
		t.Error("zoom in should change the region")
	}
	if math.Abs(r.Scale()-1.1) > epsilon {
		t.Errorf("Scale = %g, want 1.1", r.Scale())
	}

	c.Handle(KeyPressed{Key: KeyZoomOut})
	if math.Abs(r.Scale()-0.99) > epsilon {
		t.Errorf("Scale = %g, want 0.99", r.Scale())
	}
	if r.Origin() != Pt(200, 150) {
		t.Errorf("zoom moved origin to %v", r.Origin())
	}
}

func TestController_ZoomAtFloorReportsNoChange(t *testing.T) {
	r := NewRegion(0, 0, 100, 100, WithMinScale(1))
	c := NewController(r)
	if c.Handle(KeyPressed{Key: KeyZoomOut}) {
		t.Error("zoom out at the floor should not report a change")
	}
}

func TestController_ZoomWhileDragging(t *testing.T) {
	r := demoRegion()
	c := NewController(r)

	c.Apply([]Event{press(300, 200), KeyPressed{Key: KeyZoomIn}})
	if !c.Dragging() {
		t.Error("zoom should not end the drag")
	}
}

func TestController_OtherKeysIgnored(t *testing.T) {
	r := demoRegion()
	c := NewController(r)
	for _, k := range []Key{KeyOther, KeyExit} {
		if c.Handle(KeyPressed{Key: k}) {
			t.Errorf("key %v should not change the region", k)
		}
	}
	if c.Handle(CloseRequested{}) || c.Handle(nil) {
		t.Error("close and nil should be ignored")
	}
	if r.Scale() != 1 {
		t.Errorf("Scale = %g, want 1", r.Scale())
	}
}

func TestController_ApplyInOrder(t *testing.T) {
	r := demoRegion()
	c := NewController(r)

	changed := c.Apply([]Event{
		press(300, 200),
		move(310, 210),
		move(320, 220),
		release(),
		move(900, 900),
	})
	if !changed {
		t.Error("Apply should report a change")
	}
	if r.Origin() != Pt(220, 170) {
		t.Errorf("Origin = %v, want (220, 170)", r.Origin())
	}
}

func TestWithZoomFactors(t *testing.T) {
	c := NewController(demoRegion(), WithZoomFactors(2, 0.5))
	if in, out := c.ZoomFactors(); in != 2 || out != 0.5 {
		t.Errorf("ZoomFactors = %g, %g", in, out)
	}

	c = NewController(demoRegion(), WithZoomFactors(0, -1))
	if in, out := c.ZoomFactors(); in != DefaultZoomIn || out != DefaultZoomOut {
		t.Errorf("non-positive factors should keep defaults, got %g, %g", in, out)
	}
}

func TestDragStateString(t *testing.T) {
	if Idle.String() != "Idle" || Dragging.String() != "Dragging" {
		t.Errorf("got %q %q", Idle, Dragging)
	}
}
