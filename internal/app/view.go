package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"webdash/internal/config"
	"webdash/internal/dialog"
	"webdash/internal/localization"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) render() string {
	width, height := m.size()
	loc, match := m.machine.Localization(), m.machine.Matcher()
	header := m.renderHeader(width)
	footer := padLines([]string{lipgloss.PlaceHorizontal(width, lipgloss.Center,
		buildStyledLine(loc, match, m.styles, quitInstructionSpans(match)...))}, width)
	status := m.renderStatus(width)

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(status) - 1
	if bodyHeight < minBodyHeight {
		bodyHeight = minBodyHeight
	}
	body := lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderDialog(width))

	screen := lipgloss.JoinVertical(lipgloss.Left, header, body, status, footer)
	return m.styles.base.Width(width).Height(height).Render(screen)
}

func (m *Model) renderHeader(width int) string {
	loc, match := m.machine.Localization(), m.machine.Matcher()
	left := buildStyledLine(loc, match, m.styles, headerButton("add_api_endpoint", dialog.ActionAddEndpoint)...) +
		"   " + buildStyledLine(loc, match, m.styles, headerButton("generate_entities", dialog.ActionGenerateEntities)...)
	right := buildStyledLine(loc, match, m.styles, headerButton("settings_title", dialog.ActionSettings)...)
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return padLines([]string{left}, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderStatus(width int) string {
	loc := m.machine.Localization()
	lines := []string{m.styles.status.Render(m.machine.Message())}
	if last, ok := m.activity.Last(); ok {
		lines = append(lines, m.styles.muted.Render(loc.UI("last_activity_label")+formatActivity(last)))
	}
	return padLines(lines, width)
}

func dialogWidth(width int) int {
	w := width - 4
	if w > maxDialogWidth {
		w = maxDialogWidth
	}
	if w < minDialogWidth {
		w = minDialogWidth
	}
	return w
}

func (m *Model) renderDialog(width int) string {
	state := m.machine.State()
	inner := dialogWidth(width) - 4
	var lines []string
	switch state.Kind {
	case dialog.KindNone:
		return ""
	case dialog.KindAPIEndpoint:
		lines = m.apiEndpointLines(state, inner)
	case dialog.KindSettings:
		lines = m.settingsLines(state)
	case dialog.KindLanguage:
		lines = m.languageLines(state, inner)
	case dialog.KindNewApp:
		lines = m.newAppLines(state)
	case dialog.KindHelp:
		lines = m.helpLines(inner)
	}
	return m.styles.dialogFrame.Render(padLines(lines, inner))
}

func (m *Model) apiEndpointLines(state dialog.State, inner int) []string {
	loc := m.machine.Localization()
	cursor := loc.UI("input_cursor")
	input := tailToWidth(state.Input, inner-ansi.StringWidth(cursor))
	return []string{
		m.styles.dialogTitle.Render(loc.UI("add_api_endpoint")),
		"",
		m.styles.text.Render(loc.UI("api_endpoint_name_prompt")),
		m.styles.primary.Render(input + cursor),
	}
}

func (m *Model) settingsLines(state dialog.State) []string {
	loc := m.machine.Localization()
	labels := []string{
		dialog.SettingTheme:    loc.UI("theme_setting") + m.machine.Theme(),
		dialog.SettingLanguage: loc.UI("language_setting"),
		dialog.SettingDestroy:  loc.UI("destroy_app_setting"),
		dialog.SettingClose:    loc.UI("close_dialog"),
	}
	lines := []string{m.styles.dialogTitle.Render(loc.UI("settings_title")), ""}
	lines = append(lines, m.optionLines(labels, state.Selected)...)
	if msg := m.machine.Message(); msg != "" {
		lines = append(lines, "", m.styles.status.Render(msg))
	}
	return append(lines, "", m.styles.muted.Render(loc.Msg("settings_instruction")))
}

func (m *Model) languageLines(state dialog.State, inner int) []string {
	loc := m.machine.Localization()
	search := m.styles.muted.Render(loc.UI("language_search_placeholder"))
	if state.Search != "" {
		cursor := loc.UI("input_cursor")
		search = m.styles.primary.Render(tailToWidth(state.Search, inner-ansi.StringWidth(cursor)) + cursor)
	}
	lines := []string{m.styles.dialogTitle.Render(loc.UI("language_dialog_title")), search, ""}
	if len(state.Filtered) == 0 {
		lines = append(lines, m.styles.muted.Render(loc.UI("no_languages_found")))
	} else {
		lines = append(lines, m.optionLines(languageLabels(state.Filtered), state.Selected)...)
	}
	return append(lines, "", m.styles.muted.Render(loc.Msg("language_instruction")))
}

func languageLabels(langs []config.Language) []string {
	out := make([]string, len(langs))
	for i, lang := range langs {
		out[i] = lang.Display + " (" + lang.Code + ")"
	}
	return out
}

func (m *Model) newAppLines(state dialog.State) []string {
	loc := m.machine.Localization()
	create := m.styles.button
	cancel := m.styles.button
	if state.Button == dialog.ButtonCancel {
		cancel = m.styles.buttonActive
	} else {
		create = m.styles.buttonActive
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		create.Render(loc.UI("new_app_create_button")),
		"  ",
		cancel.Render(loc.UI("new_app_cancel_button")),
	)
	lines := []string{
		m.styles.dialogTitle.Render(loc.UI("new_app_dialog_title")),
		"",
		m.styles.text.Render(localization.Expand(loc.UI("new_app_no_app_detected"), "dir_name", m.machine.ProjectName())),
		m.styles.text.Render(loc.UI("new_app_dialog_prompt")),
		"",
		buttons,
	}
	if state.Result != "" {
		lines = append(lines, "", m.styles.status.Render(state.Result))
	}
	return append(lines, "", m.styles.muted.Render(loc.Msg("new_app_instruction")))
}

func (m *Model) helpLines(inner int) []string {
	loc := m.machine.Localization()
	lines := []string{m.styles.dialogTitle.Render(loc.UI("help_title")), ""}
	table := renderMarkdown(helpMarkdown(loc, m.machine.Matcher()), inner)
	lines = append(lines, strings.Split(table, "\n")...)
	return append(lines, "", helpFooter(m.help, loc, m.machine.Matcher()))
}

func (m *Model) optionLines(labels []string, selected int) []string {
	out := make([]string, len(labels))
	for i, label := range labels {
		if i == selected {
			out[i] = m.styles.selected.Render("> " + label)
			continue
		}
		out[i] = m.styles.text.Render("  " + label)
	}
	return out
}
