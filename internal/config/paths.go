package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName = ".webdash"
	homeEnvVar = "WEBDASH_HOME"
)

// DataDir returns the base data directory for webdash. WEBDASH_HOME overrides ~/.webdash.
func DataDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(homeEnvVar)); dir != "" {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

func dataPath(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}

// ConfigPath returns the path to the themes and languages configuration.
func ConfigPath() (string, error) {
	return dataPath("config.toml")
}

// CurrentThemePath returns the file holding the selected theme.
func CurrentThemePath() (string, error) {
	return dataPath("current_theme.toml")
}

// CurrentLanguagePath returns the file holding the selected language.
func CurrentLanguagePath() (string, error) {
	return dataPath("current_localization.toml")
}

// LocalizationDir returns the directory of user language overrides.
func LocalizationDir() (string, error) {
	return dataPath("localization")
}

func ActivityDBPath() (string, error) {
	return dataPath("activity.db")
}

func UILogPath() (string, error) {
	return dataPath("ui.log")
}
