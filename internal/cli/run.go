package cli

import (
	"github.com/spf13/cobra"
)

func newRunCommand(g *globalOptions) *cobra.Command {
	var (
		title  string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive window",
		Long: `Open a window showing the scene.

Controls:
  left mouse drag   move the clip region
  + or =            scale the region up by the zoom-in factor
  -                 scale the region down by the zoom-out factor
  Escape            quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				cfg.Window.Title = title
			}
			if cmd.Flags().Changed("width") {
				cfg.Window.Width = width
			}
			if cmd.Flags().Changed("height") {
				cfg.Window.Height = height
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runWindow(cfg)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "window title")
	cmd.Flags().IntVar(&width, "width", 0, "window width")
	cmd.Flags().IntVar(&height, "height", 0, "window height")
	return cmd
}
