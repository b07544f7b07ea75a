package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLanguagesCommand(wiring commandWiring) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List selectable languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(wiring)
			if err != nil {
				return err
			}
			bundles := map[string]struct{}{}
			for _, code := range env.source.Languages() {
				bundles[code] = struct{}{}
			}
			current := env.prefs.CurrentLanguage()

			writer := tabwriter.NewWriter(wiring.stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(writer, "CODE\tDISPLAY\tBUNDLE\tCURRENT")
			for _, lang := range env.cfg.AvailableLanguages() {
				bundle := "missing"
				if _, ok := bundles[lang.Code]; ok {
					bundle = "yes"
				}
				mark := ""
				if lang.Code == current {
					mark = "*"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", lang.Code, lang.Display, bundle, mark)
			}
			return writer.Flush()
		},
	}
}
