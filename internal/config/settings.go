package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultTheme    = "rust"
	DefaultLanguage = "en"
)

var ErrThemeNotFound = errors.New("theme not found")

// Config is the merged result of the built-in defaults and config.toml.
type Config struct {
	Themes       map[string]ThemeColors    `toml:"themes" json:"themes" yaml:"themes"`
	Localization map[string]LanguageConfig `toml:"localization" json:"localization" yaml:"localization"`
	Logging      LoggingConfig             `toml:"logging" json:"logging" yaml:"logging"`
	Project      ProjectConfig             `toml:"project" json:"project" yaml:"project"`
}

type RGB struct {
	R uint8 `toml:"r" json:"r" yaml:"r"`
	G uint8 `toml:"g" json:"g" yaml:"g"`
	B uint8 `toml:"b" json:"b" yaml:"b"`
}

// Hex formats the color as #rrggbb for lipgloss.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

type ThemeColors struct {
	Text       RGB `toml:"text" json:"text" yaml:"text"`
	Primary    RGB `toml:"primary" json:"primary" yaml:"primary"`
	Background RGB `toml:"background" json:"background" yaml:"background"`
}

type LanguageConfig struct {
	Language string `toml:"language" json:"language" yaml:"language"`
	Display  string `toml:"display" json:"display" yaml:"display"`
}

// Language is a selectable language as shown in the language picker.
type Language struct {
	Code    string `json:"code" yaml:"code"`
	Display string `json:"display" yaml:"display"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level" yaml:"level"`
}

type ProjectConfig struct {
	// Root is the project directory; empty means the working directory.
	Root         string   `toml:"root" json:"root" yaml:"root"`
	EndpointsDir string   `toml:"endpoints_dir" json:"endpoints_dir" yaml:"endpoints_dir"`
	EntitiesDir  string   `toml:"entities_dir" json:"entities_dir" yaml:"entities_dir"`
	SchemaPath   string   `toml:"schema_path" json:"schema_path" yaml:"schema_path"`
	Generated    []string `toml:"generated" json:"generated" yaml:"generated"`
}

func DefaultThemeColors() ThemeColors {
	return ThemeColors{
		Primary:    RGB{R: 0xff, G: 0x6b, B: 0x35},
		Text:       RGB{R: 0xcc, G: 0xcc, B: 0xcc},
		Background: RGB{R: 0x1a, G: 0x1a, B: 0x1a},
	}
}

// DefaultConfig holds the built-in themes, languages and project layout.
func DefaultConfig() Config {
	return Config{
		Themes: map[string]ThemeColors{
			"rust": DefaultThemeColors(),
			"dracula": {
				Primary:    RGB{R: 0xbd, G: 0x93, B: 0xf9},
				Text:       RGB{R: 0xf8, G: 0xf8, B: 0xf2},
				Background: RGB{R: 0x28, G: 0x2a, B: 0x36},
			},
			"nord": {
				Primary:    RGB{R: 0x88, G: 0xc0, B: 0xd0},
				Text:       RGB{R: 0xd8, G: 0xde, B: 0xe9},
				Background: RGB{R: 0x2e, G: 0x34, B: 0x40},
			},
			"solarized": {
				Primary:    RGB{R: 0xb5, G: 0x89, B: 0x00},
				Text:       RGB{R: 0x83, G: 0x94, B: 0x96},
				Background: RGB{R: 0x00, G: 0x2b, B: 0x36},
			},
		},
		Localization: map[string]LanguageConfig{
			"en": {Language: "en", Display: "English"},
			"fr": {Language: "fr", Display: "Français"},
			"es": {Language: "es", Display: "Español"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Project: ProjectConfig{
			EndpointsDir: "src/endpoints",
			EntitiesDir:  "src/entities",
			SchemaPath:   "openapi.json",
			Generated:    []string{"src/**", "migration/**", "Cargo.toml", "openapi.json", ".webdash-app"},
		},
	}
}

// LoadConfig reads config.toml over the built-in defaults.
func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadConfigFromPath(path)
}

func loadConfigFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	var user Config
	if err := readTOML(path, &user); err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg.merge(user)
	return cfg, nil
}

func (c *Config) merge(user Config) {
	for name, colors := range user.Themes {
		c.Themes[strings.TrimSpace(name)] = colors
	}
	for code, lang := range user.Localization {
		code = strings.TrimSpace(code)
		if strings.TrimSpace(lang.Language) == "" {
			lang.Language = code
		}
		c.Localization[code] = lang
	}
	if level := strings.TrimSpace(user.Logging.Level); level != "" {
		c.Logging.Level = level
	}
	if root := strings.TrimSpace(user.Project.Root); root != "" {
		c.Project.Root = root
	}
	if dir := strings.TrimSpace(user.Project.EndpointsDir); dir != "" {
		c.Project.EndpointsDir = dir
	}
	if dir := strings.TrimSpace(user.Project.EntitiesDir); dir != "" {
		c.Project.EntitiesDir = dir
	}
	if path := strings.TrimSpace(user.Project.SchemaPath); path != "" {
		c.Project.SchemaPath = path
	}
	if generated := normalizedList(user.Project.Generated); len(generated) > 0 {
		c.Project.Generated = generated
	}
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

// AvailableThemes returns the theme names sorted by name.
func (c Config) AvailableThemes() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableLanguages returns the configured languages sorted by display name.
func (c Config) AvailableLanguages() []Language {
	out := make([]Language, 0, len(c.Localization))
	for code, lang := range c.Localization {
		display := strings.TrimSpace(lang.Display)
		if display == "" {
			display = code
		}
		out = append(out, Language{Code: code, Display: display})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Display != out[j].Display {
			return out[i].Display < out[j].Display
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// ThemeColorsFor returns the named theme or ErrThemeNotFound.
func (c Config) ThemeColorsFor(name string) (ThemeColors, error) {
	colors, ok := c.Themes[strings.TrimSpace(name)]
	if !ok {
		return ThemeColors{}, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return colors, nil
}

// ResolveProjectRoot returns the absolute project directory.
func (c Config) ResolveProjectRoot() (string, error) {
	root := strings.TrimSpace(c.Project.Root)
	if root == "" {
		return os.Getwd()
	}
	if strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		root = filepath.Join(home, root[2:])
	}
	return filepath.Abs(root)
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func normalizedList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := map[string]struct{}{}
	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
