// Command lineclip is an interactive Cohen-Sutherland line clipping demo.
//
// Usage:
//
//	lineclip run                        # open the window
//	lineclip render -o frame.png        # headless frame
//	lineclip clip 100 100 700 500       # clip one segment
package main

import (
	"os"

	"github.com/gogpu/lineclip/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
