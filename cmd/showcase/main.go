// Command showcase serves, exports and publishes the component showcase page.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/showcase/internal/catalog"
	"github.com/vango-dev/showcase/internal/config"
	"github.com/vango-dev/showcase/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "showcase",
		Short: "A component showcase with a modal, toasts and dropdowns",
		Long: `Showcase renders a page of buttons, dropdowns, modals and toast
notifications. The server keeps the view state for each browser tab and
pushes slot updates over a WebSocket.

The same page can be exported as a self-contained HTML file or uploaded
to an S3 bucket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), opts.logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to showcase.json or showcase.yaml")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		serveCmd(opts),
		exportCmd(opts),
		publishCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

// setupLogging installs a text slog handler at level as the default logger.
func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return errors.Newf(errors.CategoryCLI, "invalid log level %q", level).
			WithSuggestion("Use debug, info, warn or error.")
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// loadConfig reads the file named by --config, or searches upward from the
// working directory.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFile(opts.configPath)
	}
	return config.LoadFromWorkingDir()
}

// loadCatalog reads the configured catalog file, falling back to the
// built-in widgets.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	path := cfg.CatalogPath()
	if path == "" {
		return catalog.Default(cfg.ViewVariant()), nil
	}
	return catalog.Load(path)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
