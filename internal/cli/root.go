// Package cli implements the lineclip command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gogpu/lineclip"
	"github.com/gogpu/lineclip/config"
)

// Version is the lineclip release.
const Version = "0.3.0"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "lineclip",
		Short: "Interactive Cohen-Sutherland line clipping",
		Long: `lineclip clips a fixed set of line segments against a rectangle that can be
dragged with the mouse and scaled with the keyboard.

Segments inside the rectangle are drawn trimmed in the inside color, the rest
are drawn whole in the outside color. Without --config the classic demo scene
is used.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := opts.logLevel
			if level == "" {
				level = defaultLogLevel(cmd.Name())
			}
			logger, err := newLogger(cmd.ErrOrStderr(), level, opts.logFormat)
			if err != nil {
				return err
			}
			lineclip.SetLogger(logger)
			gg.SetLogger(logger)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "scene file (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default: info for run, warn otherwise)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "auto", "log format: auto, text, json")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newRenderCommand(opts))
	cmd.AddCommand(newClipCommand())
	cmd.AddCommand(newBackendsCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// Execute runs the root command with os.Args and returns the exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig returns the scene file named by --config, or the default scene.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

// defaultLogLevel is the level used when --log-level is not given. The
// interactive run command reports frame rate and scale at Info.
func defaultLogLevel(command string) string {
	if command == "run" {
		return "info"
	}
	return "warn"
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "auto":
		if isTerminal(w) {
			return slog.New(slog.NewTextHandler(w, hopts)), nil
		}
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
