package keyspec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleCharacterPreservesCase(t *testing.T) {
	for _, spec := range []string{"e", "E", "q", "Q", "1", "9", "?", "é", "/"} {
		binding, ok := Parse(spec)
		require.True(t, ok, "spec %q", spec)
		assert.Equal(t, NoModifiers, binding.Mods, "spec %q", spec)
		assert.Equal(t, Char([]rune(spec)[0]), binding.Sym, "spec %q", spec)
	}
}

func TestParseSymbolNamesAreCaseInsensitive(t *testing.T) {
	cases := map[string]Symbol{
		"ESC":        Escape,
		"esc":        Escape,
		"Esc":        Escape,
		"Escape":     Escape,
		"return":     Enter,
		"ENTER":      Enter,
		"back":       Backspace,
		"Backspace":  Backspace,
		"tab":        Tab,
		"Del":        Delete,
		"insert":     Insert,
		"INS":        Insert,
		"UpArrow":    Up,
		"down":       Down,
		"leftarrow":  Left,
		"Right":      Right,
		"home":       Home,
		"END":        End,
		"PgUp":       PageUp,
		"pagedown":   PageDown,
		"f1":         Fn(1),
		"F12":        Fn(12),
		"  Enter  ":  Enter,
		"rightArrow": Right,
	}
	for spec, want := range cases {
		binding, ok := Parse(spec)
		require.True(t, ok, "spec %q", spec)
		assert.Equal(t, want, binding.Sym, "spec %q", spec)
		assert.Equal(t, NoModifiers, binding.Mods, "spec %q", spec)
	}
}

func TestParseModifierCombination(t *testing.T) {
	binding, ok := Parse("Ctrl+C")
	require.True(t, ok)
	assert.Equal(t, Binding{Mods: ModCtrl, Sym: Char('C')}, binding)

	binding, ok = Parse("control+f5")
	require.True(t, ok)
	assert.Equal(t, Binding{Mods: ModCtrl, Sym: Fn(5)}, binding)

	binding, ok = Parse("SHIFT+Tab")
	require.True(t, ok)
	assert.Equal(t, Binding{Mods: ModShift, Sym: Tab}, binding)

	binding, ok = Parse(" alt + x ")
	require.True(t, ok)
	assert.Equal(t, Binding{Mods: ModAlt, Sym: Char('x')}, binding)
}

func TestParseRejectsMalformedSpecs(t *testing.T) {
	for _, spec := range []string{
		"",
		"   ",
		"Ctrl+",
		"Meta+A",
		"Ctrl+Shift+A",
		"+",
		"abc",
		"F0",
		"F13",
		"F01",
		"Ctrl+abc",
	} {
		_, ok := Parse(spec)
		assert.False(t, ok, "spec %q should be rejected", spec)
	}
}

func TestParseDigitsAreCharactersNotFunctionKeys(t *testing.T) {
	binding, ok := Parse("5")
	require.True(t, ok)
	assert.Equal(t, Char('5'), binding.Sym)
}

func TestParseStrictExplainsRejection(t *testing.T) {
	_, err := ParseStrict("Meta+A")
	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "Meta+A", parseErr.Spec)
	assert.Contains(t, parseErr.Reason, "unknown modifier")

	_, err = ParseStrict("Ctrl+Shift+A")
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "one modifier")

	_, err = ParseStrict("Ctrl+")
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "missing key")
}

func TestBindingString(t *testing.T) {
	cases := map[string]string{
		"ctrl+c":   "Ctrl+c",
		"esc":      "Esc",
		"f3":       "F3",
		"shift+up": "Shift+Up",
		"q":        "q",
	}
	for spec, want := range cases {
		binding, ok := Parse(spec)
		require.True(t, ok, "spec %q", spec)
		assert.Equal(t, want, binding.String())
	}
}

func TestModifiersString(t *testing.T) {
	assert.Equal(t, "", NoModifiers.String())
	assert.Equal(t, "Ctrl+Shift+Alt", (ModCtrl | ModShift | ModAlt).String())
	assert.True(t, (ModCtrl | ModAlt).Has(ModAlt))
	assert.False(t, ModCtrl.Has(ModShift))
	assert.False(t, ModCtrl.Has(NoModifiers))
}
