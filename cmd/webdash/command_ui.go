package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"webdash/internal/app"
	"webdash/internal/config"
	"webdash/internal/dialog"
	"webdash/internal/localization"
	"webdash/internal/logging"
	"webdash/internal/project"
	"webdash/internal/store"
)

type uiOptions struct {
	lang    string
	theme   string
	noWatch bool
}

func addUIFlags(cmd *cobra.Command, opts *uiOptions) {
	cmd.Flags().StringVar(&opts.lang, "lang", "", "language code (default: saved choice)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme name (default: saved choice)")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "do not reload edited localization files")
}

func newUICommand(wiring commandWiring) *cobra.Command {
	var opts uiOptions
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Run the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(wiring, opts)
		},
	}
	addUIFlags(cmd, &opts)
	return cmd
}

func runUI(wiring commandWiring, opts uiOptions) error {
	env, err := loadEnvironment(wiring)
	if err != nil {
		return err
	}
	logger, closeLog := openUILog(env, wiring.stderr)
	defer closeLog()

	theme := env.prefs.CurrentTheme()
	if opts.theme != "" {
		if _, err := env.cfg.ThemeColorsFor(opts.theme); err != nil {
			return err
		}
		theme = opts.theme
	}
	lang := env.prefs.CurrentLanguage()
	if opts.lang != "" {
		lang = opts.lang
	}

	loc, err := localization.Load(env.source, lang, localization.WithLogger(logger))
	if err != nil {
		logger.Error("localization unavailable", logging.Err(err))
		return err
	}

	root, err := env.cfg.ResolveProjectRoot()
	if err != nil {
		return err
	}

	activity := openActivityStore(wiring, logger)
	defer activity.Close()
	recorder := app.NewActivityRecorder(activity, logger)

	machine := dialog.New(dialog.Deps{
		Localization: loc,
		Project:      project.New(root, env.cfg.Project),
		Preferences:  env.prefs,
		Theme:        theme,
		Record:       recorder.Record,
		Logger:       logger,
	})

	var watcher *app.LocalizationWatcher
	if !opts.noWatch {
		watcher, err = app.NewLocalizationWatcher(env.locDir, logger)
		if err != nil {
			logger.Warn("localization watcher unavailable", logging.Err(err))
			watcher = nil
		}
		defer watcher.Close()
	}

	logger.Info("dashboard starting",
		logging.F("language", loc.Language()),
		logging.F("theme", theme),
		logging.F("root", root),
		logging.F("version", wiring.version))
	return wiring.runUI(app.Options{
		Machine:  machine,
		Config:   env.cfg,
		Activity: recorder,
		Watcher:  watcher,
		Logger:   logger,
	})
}

// openUILog writes to ui.log in the data directory, or to stderr when the
// file cannot be opened.
func openUILog(env environment, stderr io.Writer) (logging.Logger, func()) {
	level := logging.ParseLevel(env.cfg.LogLevel())
	path, err := config.UILogPath()
	if err == nil {
		logger, closer, openErr := logging.OpenFile(path, level)
		if openErr == nil {
			return logger, func() { _ = closer.Close() }
		}
		err = openErr
	}
	fmt.Fprintf(stderr, "webdash: logging to stderr: %v\n", err)
	return logging.New(stderr, level), func() {}
}

// openActivityStore falls back to an in-memory log when the database is
// locked by another instance or cannot be created.
func openActivityStore(wiring commandWiring, logger logging.Logger) store.ActivityStore {
	path, err := config.ActivityDBPath()
	if err == nil {
		var s store.ActivityStore
		if s, err = wiring.openActivity(path); err == nil {
			return s
		}
	}
	logger.Warn("activity store unavailable, keeping history in memory", logging.Err(err))
	return store.NewMemoryActivityStore()
}
