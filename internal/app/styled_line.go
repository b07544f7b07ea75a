package app

import (
	"strings"

	"webdash/internal/dialog"
	"webdash/internal/keymatch"
	"webdash/internal/localization"
)

type spanRole uint8

const (
	roleText spanRole = iota
	rolePrimary
	roleMuted
)

// span is one piece of a styled line: either localized text (Section, Key)
// or the key bound to Action. Hint wraps the key as " (k)".
type span struct {
	Section localization.Section
	Key     string
	Action  string
	Hint    bool
	Role    spanRole
	Bold    bool
}

func (s span) text(loc *localization.Localization, match keymatch.Matcher) (string, bool) {
	if s.Action == "" {
		return loc.Get(s.Section, s.Key), true
	}
	display := match.Display(s.Action)
	if display == "" {
		return "", false
	}
	if s.Hint {
		return " (" + display + ")", true
	}
	return display, true
}

// buildStyledLine resolves every span and joins the styled pieces. Action
// spans whose binding is missing or invalid are left out.
func buildStyledLine(loc *localization.Localization, match keymatch.Matcher, st styles, spans ...span) string {
	var b strings.Builder
	for _, s := range spans {
		text, ok := s.text(loc, match)
		if !ok {
			continue
		}
		style := st.text
		switch s.Role {
		case rolePrimary:
			style = st.primary
		case roleMuted:
			style = st.muted
		}
		if s.Bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(text))
	}
	return b.String()
}

// quitInstructionSpans reads "Press q or Ctrl+C to quit", dropping whichever
// quit key is unbound. With neither bound there is nothing to say.
func quitInstructionSpans(match keymatch.Matcher) []span {
	var keys []span
	for _, action := range []string{dialog.ActionQuit, dialog.ActionQuitCombo} {
		if match.Display(action) != "" {
			keys = append(keys, span{Action: action, Role: rolePrimary, Bold: true})
		}
	}
	if len(keys) == 0 {
		return nil
	}
	spans := []span{{Section: localization.SectionMessages, Key: "quit_instruction_prefix"}, keys[0]}
	if len(keys) == 2 {
		spans = append(spans, span{Section: localization.SectionMessages, Key: "quit_instruction_middle"}, keys[1])
	}
	return append(spans, span{Section: localization.SectionMessages, Key: "quit_instruction_suffix"})
}

// headerButton is a bold label followed by the hint for its action.
func headerButton(labelKey, action string) []span {
	return []span{
		{Section: localization.SectionUI, Key: labelKey, Role: rolePrimary, Bold: true},
		{Action: action, Hint: true, Role: roleMuted},
	}
}
