package main

import (
	"github.com/ironsheep/rtt/internal/language"
	"github.com/ironsheep/rtt/internal/results"
	"github.com/spf13/cobra"
)

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List target languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return results.Render(cmd.OutOrStdout(), languageTable(a.cfg.Languages), a.format)
		},
	}
}

func languageTable(langs []language.Language) *results.Table {
	t := results.NewTable("Name", "Code", "Label")
	for _, l := range langs {
		t.Append(l.Name, l.Code, l.Label())
	}
	return t
}

// targetLanguage resolves the --lang flag, defaulting to the first
// configured language.
func (a *app) targetLanguage(input string) (language.Language, error) {
	if input == "" {
		return a.cfg.Languages[0], nil
	}
	return language.Resolve(a.cfg.Languages, input)
}
