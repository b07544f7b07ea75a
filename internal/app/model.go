package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/help"

	"webdash/internal/config"
	"webdash/internal/dialog"
	"webdash/internal/localization"
	"webdash/internal/logging"
)

const (
	minDialogWidth = 36
	maxDialogWidth = 72
	minBodyHeight  = 8
)

type Options struct {
	Machine  *dialog.Machine
	Config   config.Config
	Activity *ActivityRecorder
	// Watcher is optional; without it override bundles are read only at
	// start and on language change.
	Watcher *LocalizationWatcher
	Logger  logging.Logger
}

// Model adapts the dialog machine to a bubbletea program. All state changes
// happen in Update.
type Model struct {
	machine  *dialog.Machine
	cfg      config.Config
	activity *ActivityRecorder
	watcher  *LocalizationWatcher
	logger   logging.Logger
	styles   styles
	help     help.Model
	width    int
	height   int
}

func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	m := &Model{
		machine:  opts.Machine,
		cfg:      opts.Config,
		activity: opts.Activity,
		watcher:  opts.Watcher,
		logger:   logger.With(logging.F("component", "ui")),
	}
	m.applyTheme()
	m.machine.EnsureProject()
	return m
}

func Run(opts Options) error {
	model := NewModel(opts)
	p := tea.NewProgram(model)
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.watcher.next()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case localizationChangedMsg:
		m.onLocalizationChanged(msg.language)
		return m, m.watcher.next()
	case tea.KeyMsg:
		ev, ok := eventFromKey(msg)
		if !ok {
			return m, nil
		}
		effect := m.machine.HandleKey(ev)
		if effect.Has(dialog.EffectThemeChanged) {
			m.applyTheme()
		}
		if effect.Has(dialog.EffectCopy) {
			m.copyStatus()
		}
		if effect.Has(dialog.EffectQuit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) applyTheme() {
	m.styles = themeStyles(m.cfg, m.machine.Theme())
	m.help = newHelpModel(m.styles)
}

// onLocalizationChanged refreshes when the edited bundle is the active
// language or the fallback.
func (m *Model) onLocalizationChanged(lang string) {
	if lang != m.machine.Language() && lang != localization.FallbackLanguage {
		return
	}
	if err := m.machine.Refresh(); err != nil {
		return
	}
	loc := m.machine.Localization()
	m.logger.Info("localization reloaded", logging.F("language", loc.Language()))
	m.machine.SetMessage(localization.Expand(loc.Msg("localization_reloaded"), "language", loc.Language()))
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}
