package main

import (
	"fmt"
	"strconv"

	"github.com/ironsheep/rtt/internal/results"
	"github.com/spf13/cobra"
)

func newWindowsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "List visible windows",
		Long:  "List the titled windows that can be captured. Pass a title to capture --window.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			windows, err := a.windows().List()
			if err != nil {
				return err
			}

			t := results.NewTable("Title", "PID", "Position", "Size")
			for _, w := range windows {
				t.Append(
					w.Title,
					strconv.Itoa(w.PID),
					fmt.Sprintf("%d,%d", w.Left, w.Top),
					fmt.Sprintf("%dx%d", w.Width, w.Height),
				)
			}
			return results.Render(cmd.OutOrStdout(), t, a.format)
		},
	}
}
