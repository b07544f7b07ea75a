package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type currentThemeFile struct {
	CurrentTheme string `toml:"current_theme"`
}

type currentLanguageFile struct {
	CurrentLocalization string `toml:"current_localization"`
}

// Preferences persists the theme and language chosen in the settings dialog.
type Preferences struct {
	cfg          Config
	themePath    string
	languagePath string
}

func NewPreferences(cfg Config, dataDir string) *Preferences {
	return &Preferences{
		cfg:          cfg,
		themePath:    filepath.Join(dataDir, "current_theme.toml"),
		languagePath: filepath.Join(dataDir, "current_localization.toml"),
	}
}

func (p *Preferences) Config() Config {
	return p.cfg
}

func (p *Preferences) Themes() ([]string, error) {
	themes := p.cfg.AvailableThemes()
	if len(themes) == 0 {
		return nil, errors.New("no themes configured")
	}
	return themes, nil
}

func (p *Preferences) Languages() ([]Language, error) {
	languages := p.cfg.AvailableLanguages()
	if len(languages) == 0 {
		return nil, errors.New("no languages configured")
	}
	return languages, nil
}

// CurrentTheme returns the saved theme, or DefaultTheme when none is saved
// or the saved one no longer exists.
func (p *Preferences) CurrentTheme() string {
	var file currentThemeFile
	if err := readTOML(p.themePath, &file); err != nil {
		return DefaultTheme
	}
	name := strings.TrimSpace(file.CurrentTheme)
	if _, ok := p.cfg.Themes[name]; !ok {
		return DefaultTheme
	}
	return name
}

func (p *Preferences) CurrentLanguage() string {
	var file currentLanguageFile
	if err := readTOML(p.languagePath, &file); err != nil {
		return DefaultLanguage
	}
	code := strings.TrimSpace(file.CurrentLocalization)
	if code == "" {
		return DefaultLanguage
	}
	return code
}

func (p *Preferences) SaveTheme(name string) error {
	name = strings.TrimSpace(name)
	if _, ok := p.cfg.Themes[name]; !ok {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return writeTOMLAtomic(p.themePath, currentThemeFile{CurrentTheme: name})
}

func (p *Preferences) SaveLanguage(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("language code is required")
	}
	return writeTOMLAtomic(p.languagePath, currentLanguageFile{CurrentLocalization: code})
}
