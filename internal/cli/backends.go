package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/lineclip/draw"
	_ "github.com/gogpu/lineclip/draw/raster" // register "raster"
	_ "github.com/gogpu/lineclip/draw/svg"    // register "svg"
)

func newBackendsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List output backends for render",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, b := range draw.Backends() {
				_, _ = fmt.Fprintf(out, "%-8s %s\n", b.Name, strings.Join(b.Extensions, " "))
			}
		},
	}
}
