package app

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"

	"webdash/internal/dialog"
	"webdash/internal/keymatch"
	"webdash/internal/localization"
)

// helpActions are listed in the help dialog in this order.
var helpActions = []string{
	dialog.ActionAddEndpoint,
	dialog.ActionGenerateEntities,
	dialog.ActionSettings,
	dialog.ActionToggleTheme,
	dialog.ActionCopyMessage,
	dialog.ActionHelp,
	dialog.ActionQuit,
	dialog.ActionQuitCombo,
	dialog.ActionEscape,
	dialog.ActionEnter,
	dialog.ActionBackspace,
	dialog.ActionUp,
	dialog.ActionDown,
	dialog.ActionLeft,
	dialog.ActionRight,
}

// helpMarkdown lists every bound action as a markdown table.
func helpMarkdown(loc *localization.Localization, match keymatch.Matcher) string {
	var b strings.Builder
	b.WriteString("| " + escapeMarkdownCell(loc.UI("help_action_column")) +
		" | " + escapeMarkdownCell(loc.UI("help_key_column")) + " |\n")
	b.WriteString("| --- | --- |\n")
	for _, action := range helpActions {
		display := match.Display(action)
		if display == "" {
			continue
		}
		b.WriteString("| " + escapeMarkdownCell(actionLabel(action)) + " | `" +
			strings.ReplaceAll(display, "`", "'") + "` |\n")
	}
	return b.String()
}

func actionLabel(action string) string {
	return strings.ReplaceAll(action, "_", " ")
}

// helpFooter shows the keys that close the help dialog.
func helpFooter(h help.Model, loc *localization.Localization, match keymatch.Matcher) string {
	var bindings []key.Binding
	for _, action := range []string{dialog.ActionEscape, dialog.ActionEnter, dialog.ActionHelp} {
		display := match.Display(action)
		if display == "" {
			continue
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(display),
			key.WithHelp(display, loc.UI("close_dialog")),
		))
	}
	return h.ShortHelpView(bindings)
}

func newHelpModel(st styles) help.Model {
	h := help.New()
	h.Styles.ShortKey = st.primary.Bold(true)
	h.Styles.ShortDesc = st.text
	h.Styles.ShortSeparator = st.muted
	return h
}
