package main

import (
	"fmt"

	"github.com/ironsheep/rtt/internal/config"
	"github.com/ironsheep/rtt/internal/logger"
	"github.com/ironsheep/rtt/internal/results"
	"github.com/spf13/cobra"
)

// app carries the configuration resolved by the root command to subcommands.
type app struct {
	cfg    *config.Config
	format results.Format
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rtt",
		Short: "Capture a window, recognize its text and translate it",
		Long: `rtt captures the screen region of a window, runs OCR (Russian and English)
on the captured image, translates the recognized text and prints the
original and translated lines side by side.

A batch mode runs the same pipeline over a directory of static images,
locating the main text block of each image before OCR. The serve command
exposes the pipeline as MCP tools over stdio.

Settings are read from rtt.yaml (or --config), then .env and RTT_*
environment variables, then command-line flags.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Path to the YAML config file (default rtt.yaml if present)")
	root.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	root.PersistentFlags().String("format", "text", "Output format: text or json")

	root.AddCommand(
		newWindowsCmd(a),
		newLanguagesCmd(a),
		newCaptureCmd(a),
		newBatchCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// init loads configuration, applies persistent flag overrides and sets up
// logging.
func (a *app) init(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	// stdout carries the MCP protocol in serve mode
	if cmd.Name() == "serve" && cfg.Log.Output == "stdout" {
		cfg.Log.Output = "stderr"
	}
	if err := logger.Setup(cfg.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := results.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.format = format

	logger.WithComponent("cmd").Debug().
		Str("command", cmd.Name()).
		Str("provider", cfg.Translate.Provider).
		Strs("ocr_languages", cfg.OCR.Languages).
		Msg("configuration loaded")
	return nil
}
