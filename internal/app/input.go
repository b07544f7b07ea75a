package app

import (
	"unicode"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"webdash/internal/keyspec"
)

var namedKeyCodes = map[rune]keyspec.Symbol{
	tea.KeyEscape:    keyspec.Escape,
	tea.KeyEnter:     keyspec.Enter,
	tea.KeyBackspace: keyspec.Backspace,
	tea.KeyTab:       keyspec.Tab,
	tea.KeyDelete:    keyspec.Delete,
	tea.KeyInsert:    keyspec.Insert,
	tea.KeyUp:        keyspec.Up,
	tea.KeyDown:      keyspec.Down,
	tea.KeyLeft:      keyspec.Left,
	tea.KeyRight:     keyspec.Right,
	tea.KeyHome:      keyspec.Home,
	tea.KeyEnd:       keyspec.End,
	tea.KeyPgUp:      keyspec.PageUp,
	tea.KeyPgDown:    keyspec.PageDown,
	tea.KeyF1:        keyspec.Fn(1),
	tea.KeyF2:        keyspec.Fn(2),
	tea.KeyF3:        keyspec.Fn(3),
	tea.KeyF4:        keyspec.Fn(4),
	tea.KeyF5:        keyspec.Fn(5),
	tea.KeyF6:        keyspec.Fn(6),
	tea.KeyF7:        keyspec.Fn(7),
	tea.KeyF8:        keyspec.Fn(8),
	tea.KeyF9:        keyspec.Fn(9),
	tea.KeyF10:       keyspec.Fn(10),
	tea.KeyF11:       keyspec.Fn(11),
	tea.KeyF12:       keyspec.Fn(12),
}

// eventFromKey converts a terminal key message. Keys with no symbol, such as
// keypad or media keys, report false.
func eventFromKey(msg tea.KeyMsg) (keyspec.Event, bool) {
	var kind keyspec.EventKind
	switch msg.(type) {
	case tea.KeyPressMsg:
		kind = keyspec.Press
	case tea.KeyReleaseMsg:
		kind = keyspec.Release
	default:
		return keyspec.Event{}, false
	}
	k := msg.Key()
	if kind == keyspec.Press && k.IsRepeat {
		kind = keyspec.Repeat
	}
	mods := modifiersFrom(k.Mod)
	if sym, ok := namedKeyCodes[k.Code]; ok {
		return keyspec.Event{Kind: kind, Mods: mods, Sym: sym}, true
	}
	// Printable text already carries shift, so "?" matches a "?" binding
	// whatever the keyboard layout.
	if r, ok := singleRune(k.Text); ok {
		return keyspec.Event{Kind: kind, Mods: mods &^ keyspec.ModShift, Sym: keyspec.Char(r)}, true
	}
	if k.Code == tea.KeySpace || unicode.IsPrint(k.Code) {
		return keyspec.Event{Kind: kind, Mods: mods, Sym: keyspec.Char(k.Code)}, true
	}
	return keyspec.Event{}, false
}

func modifiersFrom(mod tea.KeyMod) keyspec.Modifiers {
	var mods keyspec.Modifiers
	if mod.Contains(tea.ModCtrl) {
		mods |= keyspec.ModCtrl
	}
	if mod.Contains(tea.ModShift) {
		mods |= keyspec.ModShift
	}
	if mod.Contains(tea.ModAlt) {
		mods |= keyspec.ModAlt
	}
	return mods
}

func singleRune(text string) (rune, bool) {
	if utf8.RuneCountInString(text) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(text)
	return r, unicode.IsPrint(r)
}
