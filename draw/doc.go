// Package draw holds the draw instructions produced for each frame and the
// backends that present them.
//
// A frame is a List of typed commands: a background clear, the clip-region
// outline and one line per segment. Commands are plain structs so tests and
// tools can inspect them; a List is replayed to any Backend with Playback.
//
// # Backends
//
// Backends register themselves by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/lineclip/draw/raster" // registers "raster"
//
//	b, err := draw.NewBackend("raster")
//	if err != nil {
//	    return err
//	}
//	if err := list.Playback(b); err != nil {
//	    return err
//	}
//	b.(draw.FileBackend).SaveToFile("frame.png")
//
// Built-in backends:
//
//   - raster: pixels via github.com/gogpu/gg (PNG, JPEG, BMP, TIFF output)
//   - svg: SVG markup
package draw
