package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"webdash/internal/app"
	"webdash/internal/config"
	"webdash/internal/store"
)

type commandWiring struct {
	stdout       io.Writer
	stderr       io.Writer
	loadConfig   func() (config.Config, error)
	openActivity func(path string) (store.ActivityStore, error)
	runUI        func(app.Options) error
	version      string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: config.LoadConfig,
		openActivity: func(path string) (store.ActivityStore, error) {
			return store.NewBboltActivityStore(path)
		},
		runUI:   app.Run,
		version: buildVersion(),
	}
}

func newRootCommand(wiring commandWiring) *cobra.Command {
	var opts uiOptions
	root := &cobra.Command{
		Use:   "webdash",
		Short: "Terminal dashboard for scaffolding a web app",
		Long: `webdash is a terminal dashboard for a web app project in the working directory.

Without a subcommand it runs the dashboard. Texts and key bindings come from
localization bundles; files in the data directory's localization/ folder
override the built-in ones and are reloaded when edited.`,
		Version:       wiring.version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(wiring, opts)
		},
	}
	root.SetOut(wiring.stdout)
	root.SetErr(wiring.stderr)
	addUIFlags(root, &opts)

	root.AddCommand(
		newUICommand(wiring),
		newConfigCommand(wiring),
		newKeysCommand(wiring),
		newLanguagesCommand(wiring),
		newHistoryCommand(wiring),
	)
	return root
}
