package main

import (
	"github.com/ironsheep/rtt/internal/logger"
	"github.com/ironsheep/rtt/internal/results"
	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		dir    string
		lang   string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Detect, recognize and translate a directory of test images",
		Long: `Process every PNG and JPEG image in a directory: drop the title bar,
locate the largest text block, recognize its text and translate it.

Images that cannot be loaded, contain no text block or fail translation
are reported in their own row; the run continues with the next image.
The directory is created when it does not exist.`,
		Example: `  # Process ./test_images into English
  rtt batch --lang en

  # Save thumbnails of each image and its detected block
  rtt batch --dir shots --lang de --out thumbs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.WithComponent("batch")

			if dir == "" {
				dir = a.cfg.Batch.Dir
			}
			target, err := a.targetLanguage(lang)
			if err != nil {
				return err
			}
			tr, err := a.translator()
			if err != nil {
				return err
			}

			b := a.batch(a.engine(), tr, outDir)
			paths, err := b.Load(dir)
			if err != nil {
				return err
			}

			res, err := b.Process(cmd.Context(), paths, target.Code)
			if isCanceled(err) {
				return nil
			}
			if err != nil {
				return err
			}

			log.Info().Int("images", len(res.Images)).Str("target", target.Code).Msg("batch complete")
			return results.Render(cmd.OutOrStdout(), res.Table, a.format)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory of images (default from config, test_images)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Target language code or label (default: first configured language)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory for thumbnails of each image and its detected block")

	return cmd
}
