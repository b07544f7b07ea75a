package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesDefaultsWhenMissing(t *testing.T) {
	prefs := NewPreferences(DefaultConfig(), t.TempDir())
	assert.Equal(t, DefaultTheme, prefs.CurrentTheme())
	assert.Equal(t, DefaultLanguage, prefs.CurrentLanguage())
}

func TestPreferencesRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	prefs := NewPreferences(DefaultConfig(), dir)
	require.NoError(t, prefs.SaveTheme("nord"))
	require.NoError(t, prefs.SaveLanguage("fr"))
	assert.Equal(t, "nord", prefs.CurrentTheme())
	assert.Equal(t, "fr", prefs.CurrentLanguage())

	data, err := os.ReadFile(filepath.Join(dir, "current_localization.toml"))
	require.NoError(t, err)
	assert.Regexp(t, `current_localization = ['"]fr['"]`, string(data))
}

func TestPreferencesSaveUnknownTheme(t *testing.T) {
	prefs := NewPreferences(DefaultConfig(), t.TempDir())
	assert.ErrorIs(t, prefs.SaveTheme("missing"), ErrThemeNotFound)
}

func TestPreferencesIgnoresStaleTheme(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "current_theme.toml"), []byte("current_theme = \"gone\"\n"), 0o600))
	assert.Equal(t, DefaultTheme, NewPreferences(DefaultConfig(), dir).CurrentTheme())
}

func TestPreferencesLanguagesSortedByDisplay(t *testing.T) {
	languages, err := NewPreferences(DefaultConfig(), t.TempDir()).Languages()
	require.NoError(t, err)
	var got []string
	for _, lang := range languages {
		got = append(got, lang.Display)
	}
	assert.Equal(t, []string{"English", "Español", "Français"}, got)
}
