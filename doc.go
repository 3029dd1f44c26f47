// Package lineclip implements interactive Cohen-Sutherland line clipping
// against a movable, scalable rectangle.
//
// # Overview
//
// A Scene holds a fixed set of segments and a clip Region. Every frame the
// presentation layer hands the Scene that frame's input events; the Scene
// folds them into the Region through its Controller (drag to move, keys to
// scale), clips every segment against the settled Region and returns a
// draw.List for the presentation layer to show.
//
// # Quick Start
//
//	region := lineclip.NewRegion(200, 150, 400, 300)
//	scene := lineclip.NewScene(region, []lineclip.Segment{
//	    lineclip.Seg(100, 100, 700, 500),
//	    lineclip.Seg(400, 50, 400, 550),
//	})
//
//	list := scene.Frame([]lineclip.Event{
//	    lineclip.PointerPressed{Button: lineclip.ButtonPrimary, Pos: lineclip.Pt(300, 200)},
//	    lineclip.PointerMoved{Pos: lineclip.Pt(350, 260)},
//	    lineclip.PointerReleased{Button: lineclip.ButtonPrimary},
//	})
//
// Clip can also be used on its own:
//
//	visible, a, b := lineclip.Clip(lineclip.Seg(400, 50, 400, 550), region)
//
// # Coordinate System
//
// Canvas coordinates: origin at top-left, X increases right, Y increases
// down. TOP therefore means y < region.Y.
//
// # Frame Loop
//
// Loop runs a Scene against a Source of events (Queue for live input,
// ScriptSource for replays) and a Presenter, pacing frames with a ticker.
// The loop is single-threaded; only Queue.Push may be called from other
// goroutines.
package lineclip
