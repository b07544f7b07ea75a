package dialog

import (
	"webdash/internal/config"
	"webdash/internal/keymatch"
	"webdash/internal/keyspec"
	"webdash/internal/localization"
	"webdash/internal/logging"
)

// Project is the app on disk that dialogs act on.
type Project interface {
	Name() string
	Exists() bool
	Scaffold() error
	Destroy() error
	GenerateEntities() error
	CreateEndpoint(name string) error
}

// Preferences lists and persists the theme and language choices.
type Preferences interface {
	Themes() ([]string, error)
	Languages() ([]config.Language, error)
	SaveTheme(name string) error
	SaveLanguage(code string) error
}

// Outcome is reported after every collaborator call.
type Outcome struct {
	Action  string
	Target  string
	Message string
	Err     error
}

// Effect tells the caller what HandleKey changed beyond the dialog state.
type Effect uint8

const (
	EffectQuit Effect = 1 << iota
	EffectReloaded
	EffectThemeChanged
	EffectCopy
)

const EffectNone Effect = 0

func (e Effect) Has(flag Effect) bool {
	return e&flag != 0
}

// Deps are the collaborators a Machine is built from. Record and Logger may be nil.
type Deps struct {
	Localization *localization.Localization
	Project      Project
	Preferences  Preferences
	Theme        string
	Record       func(Outcome)
	Logger       logging.Logger
}

// Machine owns the dialog state and the active localization. It is driven
// from a single goroutine.
type Machine struct {
	state    State
	loc      *localization.Localization
	match    keymatch.Matcher
	language string
	project  Project
	prefs    Preferences
	theme    string
	message  string
	running  bool
	record   func(Outcome)
	logger   logging.Logger
}

// New starts a running machine on the main screen.
func New(deps Deps) *Machine {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	m := &Machine{
		project: deps.Project,
		prefs:   deps.Preferences,
		theme:   deps.Theme,
		running: true,
		record:  deps.Record,
		logger:  logger.With(logging.F("component", "dialog")),
	}
	m.setLocalization(deps.Localization)
	m.language = m.loc.Language()
	return m
}

func (m *Machine) State() State                             { return m.state }
func (m *Machine) Localization() *localization.Localization { return m.loc }
func (m *Machine) Matcher() keymatch.Matcher                { return m.match }
func (m *Machine) Theme() string                            { return m.theme }
func (m *Machine) Message() string                          { return m.message }
func (m *Machine) Running() bool                            { return m.running }
func (m *Machine) ProjectName() string                      { return m.project.Name() }

// Language is the chosen language, which may differ from the active one
// when its bundle failed to load.
func (m *Machine) Language() string { return m.language }

// SetMessage replaces the status message shown under the dialogs.
func (m *Machine) SetMessage(message string) {
	m.message = message
}

func (m *Machine) setLocalization(loc *localization.Localization) {
	m.loc = loc
	m.match = keymatch.New(loc)
}

// Refresh reloads the chosen language and its fallback from the source,
// keeping the current texts when the fallback cannot be read.
func (m *Machine) Refresh() error {
	loc, err := m.loc.Refresh(m.language)
	if err != nil {
		m.logger.Warn("localization refresh failed", logging.Err(err))
		return err
	}
	m.setLocalization(loc)
	return nil
}

// EnsureProject opens the new-app dialog when no dialog is open and the
// directory holds no app.
func (m *Machine) EnsureProject() {
	if m.state.Kind == KindNone && !m.project.Exists() {
		m.state = State{Kind: KindNewApp, Button: ButtonCreate}
	}
}

// Close returns to the main screen, clearing every dialog buffer.
func (m *Machine) Close() {
	m.state = State{}
}

func (m *Machine) quit() Effect {
	m.running = false
	return EffectQuit
}

// HandleKey applies one input event. Only presses are acted on.
func (m *Machine) HandleKey(ev keyspec.Event) Effect {
	if ev.Kind != keyspec.Press || !m.running {
		return EffectNone
	}
	var effect Effect
	switch m.state.Kind {
	case KindNone:
		effect = m.handleMain(ev)
	case KindAPIEndpoint:
		effect = m.handleAPIEndpoint(ev)
	case KindSettings:
		effect = m.handleSettings(ev)
	case KindLanguage:
		effect = m.handleLanguage(ev)
	case KindNewApp:
		effect = m.handleNewApp(ev)
	case KindHelp:
		effect = m.handleHelp(ev)
	}
	if m.running {
		m.EnsureProject()
	}
	return effect
}

func (m *Machine) handleMain(ev keyspec.Event) Effect {
	switch {
	case m.match.Any(ev, ActionQuit, ActionQuitCombo, ActionEscape):
		return m.quit()
	case m.match.MatchesEvent(ActionAddEndpoint, ev):
		m.state = State{Kind: KindAPIEndpoint}
	case m.match.MatchesEvent(ActionGenerateEntities, ev):
		m.generateEntities()
	case m.match.MatchesEvent(ActionSettings, ev):
		m.state = State{Kind: KindSettings}
	case m.match.MatchesEvent(ActionToggleTheme, ev):
		if m.cycleTheme() {
			return EffectThemeChanged
		}
	case m.match.MatchesEvent(ActionHelp, ev):
		m.state = State{Kind: KindHelp}
	case m.match.MatchesEvent(ActionCopyMessage, ev):
		if m.message != "" {
			return EffectCopy
		}
	}
	return EffectNone
}

func (m *Machine) handleAPIEndpoint(ev keyspec.Event) Effect {
	switch {
	case m.match.MatchesEvent(ActionEnter, ev):
		m.createEndpoint(m.state.Input)
		m.Close()
	case m.match.MatchesEvent(ActionEscape, ev):
		m.Close()
	case m.match.MatchesEvent(ActionBackspace, ev):
		m.state.Input = dropLastRune(m.state.Input)
	default:
		if r, ok := typedRune(ev); ok {
			m.state.Input += string(r)
		}
	}
	return EffectNone
}

func (m *Machine) handleSettings(ev keyspec.Event) Effect {
	switch {
	case m.match.MatchesEvent(ActionEscape, ev):
		m.Close()
	case m.match.MatchesEvent(ActionUp, ev):
		m.state.Selected = wrap(m.state.Selected, -1, SettingsOptions)
	case m.match.MatchesEvent(ActionDown, ev):
		m.state.Selected = wrap(m.state.Selected, 1, SettingsOptions)
	case m.match.MatchesEvent(ActionEnter, ev):
		switch SettingsOption(m.state.Selected) {
		case SettingTheme:
			if m.cycleTheme() {
				return EffectThemeChanged
			}
		case SettingLanguage:
			m.openLanguage()
		case SettingDestroy:
			m.destroy()
		case SettingClose:
			m.Close()
		}
	}
	return EffectNone
}

func (m *Machine) handleLanguage(ev keyspec.Event) Effect {
	switch {
	case m.match.MatchesEvent(ActionEscape, ev):
		m.Close()
	case m.match.MatchesEvent(ActionUp, ev):
		m.state.Selected = wrap(m.state.Selected, -1, len(m.state.Filtered))
	case m.match.MatchesEvent(ActionDown, ev):
		m.state.Selected = wrap(m.state.Selected, 1, len(m.state.Filtered))
	case m.match.MatchesEvent(ActionEnter, ev):
		if lang, ok := m.state.SelectedLanguage(); ok {
			return m.selectLanguage(lang.Code)
		}
	case m.match.MatchesEvent(ActionBackspace, ev):
		m.state.Search = dropLastRune(m.state.Search)
		m.refilter()
	default:
		if r, ok := typedRune(ev); ok {
			m.state.Search += string(r)
			m.refilter()
		}
	}
	return EffectNone
}

func (m *Machine) handleNewApp(ev keyspec.Event) Effect {
	switch {
	case m.match.Any(ev, ActionQuit, ActionQuitCombo):
		return m.quit()
	case m.match.MatchesEvent(ActionLeft, ev):
		m.state.Button = ButtonCreate
	case m.match.MatchesEvent(ActionRight, ev):
		m.state.Button = ButtonCancel
	case m.match.MatchesEvent(ActionEnter, ev):
		if m.state.Button == ButtonCancel {
			return m.quit()
		}
		m.scaffold()
	case m.match.MatchesEvent(ActionEscape, ev):
		m.Close()
	}
	return EffectNone
}

func (m *Machine) handleHelp(ev keyspec.Event) Effect {
	if m.match.Any(ev, ActionEscape, ActionEnter, ActionHelp) {
		m.Close()
	}
	return EffectNone
}

// typedRune reports the character of an unmodified or shifted key press.
func typedRune(ev keyspec.Event) (rune, bool) {
	if !ev.Sym.IsChar() || ev.Sym.Rune < ' ' {
		return 0, false
	}
	if ev.Mods != keyspec.NoModifiers && ev.Mods != keyspec.ModShift {
		return 0, false
	}
	return ev.Sym.Rune, true
}
