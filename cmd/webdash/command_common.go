package main

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"webdash/internal/config"
	"webdash/internal/localization"
)

const version = "dev"

// environment is what every command resolves before doing its work.
type environment struct {
	cfg    config.Config
	prefs  *config.Preferences
	locDir string
	source *localization.FileSource
}

func loadEnvironment(wiring commandWiring) (environment, error) {
	cfg, err := wiring.loadConfig()
	if err != nil {
		return environment{}, err
	}
	dataDir, err := config.DataDir()
	if err != nil {
		return environment{}, err
	}
	locDir, err := config.LocalizationDir()
	if err != nil {
		return environment{}, err
	}
	return environment{
		cfg:    cfg,
		prefs:  config.NewPreferences(cfg, dataDir),
		locDir: locDir,
		source: localization.NewSource(locDir),
	}, nil
}

// exitError carries a process exit status without printing anything more.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitOnErr(err error, stderr io.Writer) {
	if err == nil {
		return
	}
	code := 1
	var exit *exitError
	if errors.As(err, &exit) && exit.code > 0 {
		code = exit.code
	}
	fmt.Fprintf(stderr, "webdash: %v\n", err)
	os.Exit(code)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}
	return version
}
