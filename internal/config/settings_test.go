package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(homeEnvVar, filepath.Join(t.TempDir(), "data"))
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"dracula", "nord", "rust", "solarized"}, cfg.AvailableThemes())
	assert.Equal(t, "info", cfg.LogLevel())
}

func TestLoadConfigMergesUserTOML(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	t.Setenv(homeEnvVar, dataDir)
	require.NoError(t, os.MkdirAll(dataDir, 0o700))
	content := []byte(`
[themes.ocean]
text = { r = 200, g = 220, b = 240 }
primary = { r = 0, g = 128, b = 255 }
background = { r = 0, g = 16, b = 32 }

[localization.de]
display = "Deutsch"

[logging]
level = "debug"

[project]
generated = ["src/**", " src/** ", ""]
`)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.toml"), content, 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	colors, err := cfg.ThemeColorsFor("ocean")
	require.NoError(t, err)
	assert.Equal(t, "#0080ff", colors.Primary.Hex())
	_, err = cfg.ThemeColorsFor("rust")
	assert.NoError(t, err, "defaults survive the merge")
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.Equal(t, []string{"src/**"}, cfg.Project.Generated)

	var codes []string
	for _, lang := range cfg.AvailableLanguages() {
		codes = append(codes, lang.Code+"="+lang.Display)
	}
	assert.Equal(t, []string{"de=Deutsch", "en=English", "es=Español", "fr=Français"}, codes)
}

func TestLoadConfigRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[themes\n"), 0o600))
	_, err := loadConfigFromPath(path)
	assert.Error(t, err)
}

func TestThemeColorsForUnknown(t *testing.T) {
	_, err := DefaultConfig().ThemeColorsFor("nope")
	assert.ErrorIs(t, err, ErrThemeNotFound)
}

func TestDefaultThemeColorsHex(t *testing.T) {
	colors := DefaultThemeColors()
	assert.Equal(t, "#ff6b35", colors.Primary.Hex())
	assert.Equal(t, "#cccccc", colors.Text.Hex())
	assert.Equal(t, "#1a1a1a", colors.Background.Hex())
}

func TestResolveProjectRoot(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Project.Root = dir
	got, err := cfg.ResolveProjectRoot()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestEncodeFormats(t *testing.T) {
	cfg := DefaultConfig()
	for format, marker := range map[string]string{
		"toml": "[themes.rust",
		"json": `"themes": {`,
		"yaml": "themes:",
	} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, format, cfg), format)
		assert.Contains(t, buf.String(), marker, format)
	}
	assert.Error(t, Encode(&bytes.Buffer{}, "xml", cfg), "unsupported format")
}
