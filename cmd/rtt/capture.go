package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ironsheep/rtt/internal/logger"
	"github.com/ironsheep/rtt/internal/pipeline"
	"github.com/ironsheep/rtt/internal/results"
	"github.com/spf13/cobra"
)

func newCaptureCmd(a *app) *cobra.Command {
	var (
		title      string
		lang       string
		interval   time.Duration
		screenshot string
	)

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture a window, recognize its text and translate it",
		Long: `Bring the window to the front, capture it, drop the title bar, recognize
the text and print original and translated lines side by side.

With --interval the capture repeats until interrupted; failed captures
are reported and the loop continues.`,
		Example: `  # Translate the text of a window into English
  rtt capture --window "Game" --lang en

  # Re-capture every 5 seconds, translating into German
  rtt capture -w "Game" -l "Немецкий (de)" --interval 5s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.WithComponent("capture")

			target, err := a.targetLanguage(lang)
			if err != nil {
				return err
			}
			if screenshot != "" {
				a.cfg.Capture.ScreenshotPath = screenshot
			}

			tr, err := a.translator()
			if err != nil {
				return err
			}
			live := a.live(a.windows(), a.engine(), tr)

			if interval <= 0 {
				res, err := live.Run(cmd.Context(), title, target.Code)
				if isCanceled(err) {
					return nil
				}
				if err != nil {
					return err
				}
				return results.Render(cmd.OutOrStdout(), res.Table, a.format)
			}

			log.Info().
				Str("window", title).
				Str("target", target.Code).
				Dur("interval", interval).
				Msg("watching window")

			return live.Watch(cmd.Context(), title, target.Code, interval, func(res *pipeline.LiveResult, err error) {
				if err != nil {
					log.Error().Err(err).Msg("capture failed")
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					return
				}
				if err := results.Render(cmd.OutOrStdout(), res.Table, a.format); err != nil {
					log.Error().Err(err).Msg("failed to render results")
				}
			})
		},
	}

	cmd.Flags().StringVarP(&title, "window", "w", "", "Exact title of the window to capture (see rtt windows)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Target language code or label (default: first configured language)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Repeat the capture at this interval until interrupted")
	cmd.Flags().StringVar(&screenshot, "screenshot", "", "Where to write the captured image (default from config)")
	_ = cmd.MarkFlagRequired("window")

	return cmd
}

// isCanceled reports whether err is a context cancellation from Ctrl-C.
func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
