package main

import (
	"github.com/ironsheep/rtt/internal/logger"
	"github.com/ironsheep/rtt/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the pipeline as MCP tools over stdio",
		Long: `Run an MCP (Model Context Protocol) server on stdin/stdout. Configure it
in your MCP client as a stdio server running "rtt serve". Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.translator()
			if err != nil {
				return err
			}
			engine := a.engine()
			windows := a.windows()

			srv := server.New(server.Options{
				Windows:    windows,
				Live:       a.live(windows, engine, tr),
				Batch:      a.batch(engine, tr, ""),
				Finder:     a.detector(),
				Engine:     engine,
				Translator: tr,
				Languages:  a.cfg.Languages,
				HeaderCrop: a.cfg.Capture.HeaderCrop,
				BatchDir:   a.cfg.Batch.Dir,
				Source:     a.cfg.Translate.Source,
				OCRInfo:    engine.Info,
				Version:    Version,
			})

			logger.WithComponent("serve").Info().
				Str("version", Version).
				Str("provider", tr.Name()).
				Msg("MCP server listening on stdio")

			return srv.Run(cmd.Context())
		},
	}
}
