package main

import (
	"github.com/spf13/cobra"

	"webdash/internal/config"
)

func newConfigCommand(wiring commandWiring) *cobra.Command {
	var (
		format   string
		defaults bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if !defaults {
				var err error
				if cfg, err = wiring.loadConfig(); err != nil {
					return err
				}
			}
			return config.Encode(wiring.stdout, format, cfg)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml|json|yaml")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "print built-in defaults instead of the effective config")
	return cmd
}
