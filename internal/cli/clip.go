package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/lineclip"
)

func newClipCommand() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "clip X1 Y1 X2 Y2",
		Short: "Clip a single segment and print the result",
		Long: `Clip one segment against a rectangle and print the endpoint outcodes and
the visible part, if any.

Examples:
  lineclip clip 100 100 700 500
  lineclip clip --region 0,0,10,10 -- -5 5 15 5`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, w, h, err := parseRegion(region)
			if err != nil {
				return err
			}
			var c [4]float64
			for i, a := range args {
				if c[i], err = strconv.ParseFloat(a, 64); err != nil {
					return fmt.Errorf("invalid coordinate %q", a)
				}
			}

			r := lineclip.NewRegion(x, y, w, h)
			s := lineclip.Seg(c[0], c[1], c[2], c[3])
			p1, p2 := s.Points()

			out := cmd.OutOrStdout()
			b := r.Bounds()
			_, _ = fmt.Fprintf(out, "region   (%g, %g) %gx%g\n", b.X, b.Y, b.W, b.H)
			_, _ = fmt.Fprintf(out, "p1       (%g, %g) %s\n", p1.X, p1.Y, r.Classify(p1))
			_, _ = fmt.Fprintf(out, "p2       (%g, %g) %s\n", p2.X, p2.Y, r.Classify(p2))

			visible, a, bb := lineclip.Clip(s, r)
			if !visible {
				_, _ = fmt.Fprintln(out, "result   rejected")
				return nil
			}
			_, _ = fmt.Fprintf(out, "result   (%g, %g) -> (%g, %g)\n", a.X, a.Y, bb.X, bb.Y)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "200,150,400,300", "clip rectangle as x,y,width,height")
	return cmd
}

func parseRegion(s string) (x, y, w, h float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("invalid --region %q: want x,y,width,height", s)
	}
	var v [4]float64
	for i, p := range parts {
		if v[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			return 0, 0, 0, 0, fmt.Errorf("invalid --region %q: %w", s, err)
		}
	}
	return v[0], v[1], v[2], v[3], nil
}
