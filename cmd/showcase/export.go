package main

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/showcase/internal/config"
	"github.com/vango-dev/showcase/internal/errors"
	"github.com/vango-dev/showcase/pkg/publish"
	"github.com/vango-dev/showcase/pkg/server"
)

func exportCmd(opts *rootOptions) *cobra.Command {
	var (
		outDir  string
		key     string
		variant string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the page as a self-contained HTML file",
		Long: `Render the showcase page with the client script and slot templates
inlined. The file works without a server: modal and toast state run in
the browser.

Examples:
  showcase export
  showcase export --out=site --key=demo.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("variant") {
				cfg.Variant = variant
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if key == "" {
				key = cfg.Publish.Key
			}

			page, err := renderStatic(cfg)
			if err != nil {
				return errors.New("E201").Wrap(err)
			}

			pub := &publish.FilePublisher{Dir: outDir, Logger: slog.Default()}
			loc, err := pub.Publish(cmd.Context(), key, page)
			if err != nil {
				return errors.New("E201").WithPath(outDir).Wrap(err)
			}

			success(cmd.OutOrStdout(), "Exported %s", loc)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "Output directory")
	cmd.Flags().StringVar(&key, "key", "", "File name (default from config, index.html)")
	cmd.Flags().StringVar(&variant, "variant", "", "Widget variant: simple or rich")

	return cmd
}

// renderStatic renders the standalone page for cfg.
func renderStatic(cfg *config.Config) ([]byte, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	sc := serverConfig(cfg, slog.Default())
	sc.Middleware = nil
	sc.Registry, sc.Gatherer = nil, nil

	srv := server.New(cat, sc)
	defer srv.Shutdown(context.Background())

	var buf bytes.Buffer
	if err := srv.RenderPage(&buf, server.PageOptions{Static: true}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
