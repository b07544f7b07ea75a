package dialog

import (
	"strings"

	"webdash/internal/config"
)

// Kind names the open dialog. KindNone is the main screen.
type Kind int

const (
	KindNone Kind = iota
	KindAPIEndpoint
	KindSettings
	KindLanguage
	KindNewApp
	KindHelp
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAPIEndpoint:
		return "api_endpoint"
	case KindSettings:
		return "settings"
	case KindLanguage:
		return "language"
	case KindNewApp:
		return "new_app"
	case KindHelp:
		return "help"
	default:
		return "unknown"
	}
}

type SettingsOption int

const (
	SettingTheme SettingsOption = iota
	SettingLanguage
	SettingDestroy
	SettingClose
)

// SettingsOptions is the number of rows in the settings dialog.
const SettingsOptions = 4

const (
	ButtonCreate = 0
	ButtonCancel = 1
)

// State is the open dialog and its local buffers. Only the fields of the
// active Kind carry meaning:
//
//	KindAPIEndpoint: Input
//	KindSettings:    Selected
//	KindLanguage:    Search, Selected, Filtered
//	KindNewApp:      Button, Result
type State struct {
	Kind     Kind
	Input    string
	Selected int
	Search   string
	Filtered []config.Language
	Button   int
	Result   string
}

// Open reports whether a dialog is showing.
func (s State) Open() bool {
	return s.Kind != KindNone
}

// SelectedLanguage returns the highlighted language in the language dialog.
func (s State) SelectedLanguage() (config.Language, bool) {
	if s.Kind != KindLanguage || s.Selected < 0 || s.Selected >= len(s.Filtered) {
		return config.Language{}, false
	}
	return s.Filtered[s.Selected], true
}

func filterLanguages(all []config.Language, search string) []config.Language {
	term := strings.ToLower(search)
	out := make([]config.Language, 0, len(all))
	for _, lang := range all {
		if strings.Contains(strings.ToLower(lang.Code), term) ||
			strings.Contains(strings.ToLower(lang.Display), term) {
			out = append(out, lang)
		}
	}
	return out
}

func wrap(index, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((index+delta)%n + n) % n
}

func dropLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
