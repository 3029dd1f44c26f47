package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/lineclip"
	"github.com/gogpu/lineclip/config"
	"github.com/gogpu/lineclip/draw"
)

type renderOptions struct {
	output  string
	backend string
	script  string
	frames  uint64
}

func newRenderCommand(g *globalOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the scene headlessly to a file",
		Long: `Render the scene without a window and save the last frame.

With --script the recorded input is replayed first, one batch of events per
frame, so the output shows the region where the session left it.
The backend is chosen from the output extension unless --backend is given.

Examples:
  lineclip render -o frame.png
  lineclip render --config scene.yaml --script drag.yaml -o drag.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "lineclip.png", "output file")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "backend name (default: by output extension)")
	cmd.Flags().StringVar(&opts.script, "script", "", "replay script (YAML)")
	cmd.Flags().Uint64Var(&opts.frames, "frames", 0, "frames to run (default: script length, at least 1)")

	return cmd
}

func runRender(ctx context.Context, cmd *cobra.Command, cfg *config.Config, opts *renderOptions) error {
	scene, err := cfg.Scene()
	if err != nil {
		return err
	}

	var frames [][]lineclip.Event
	if opts.script != "" {
		script, err := config.LoadScript(opts.script)
		if err != nil {
			return err
		}
		frames = script.Frames
	}
	n := opts.frames
	if n == 0 {
		n = uint64(max(len(frames), 1))
	}

	backend, err := openBackend(opts.backend, opts.output)
	if err != nil {
		return err
	}
	if c, ok := backend.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}
	fb, ok := backend.(draw.FileBackend)
	if !ok {
		return fmt.Errorf("backend %T cannot write files", backend)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	loop := lineclip.NewLoop(scene, lineclip.NewScriptSource(frames), lineclip.BackendPresenter{Backend: fb},
		lineclip.WithFPS(0), lineclip.WithMaxFrames(n))
	if err := loop.Run(ctx); err != nil {
		return err
	}

	if err := fb.SaveToFile(opts.output); err != nil {
		return err
	}

	r := scene.Region()
	b := r.Bounds()
	lineclip.Logger().Info("rendered", "path", opts.output, "frames", loop.Frames())
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d frames, region (%g, %g) %gx%g, scale %g)\n",
		opts.output, loop.Frames(), b.X, b.Y, b.W, b.H, r.Scale())
	return nil
}

func openBackend(name, output string) (draw.Backend, error) {
	if name != "" {
		return draw.NewBackend(name)
	}
	ext := filepath.Ext(output)
	if ext == "" {
		return nil, errors.New("output has no extension; use --backend")
	}
	return draw.BackendForExtension(ext)
}
