package dialog

import (
	"webdash/internal/localization"
	"webdash/internal/logging"
)

func (m *Machine) expand(template string, err error, extra ...string) string {
	pairs := append([]string{"dir_name", m.project.Name(), "error", errText(err)}, extra...)
	return localization.Expand(template, pairs...)
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (m *Machine) report(out Outcome) {
	if out.Err != nil {
		m.logger.Warn("operation failed",
			logging.F("action", out.Action), logging.F("target", out.Target), logging.Err(out.Err))
	} else {
		m.logger.Info("operation succeeded",
			logging.F("action", out.Action), logging.F("target", out.Target))
	}
	if m.record != nil {
		m.record(out)
	}
}

func (m *Machine) scaffold() {
	err := m.project.Scaffold()
	key := "new_app_success_message"
	if err != nil {
		key = "new_app_error_message"
	}
	m.state.Result = m.expand(m.loc.UI(key), err)
	m.report(Outcome{Action: OutcomeScaffold, Target: m.project.Name(), Message: m.state.Result, Err: err})
}

func (m *Machine) destroy() {
	err := m.project.Destroy()
	key := "destroy_app_success"
	if err != nil {
		key = "destroy_app_error"
	}
	m.message = m.expand(m.loc.Msg(key), err)
	m.report(Outcome{Action: OutcomeDestroy, Target: m.project.Name(), Message: m.message, Err: err})
}

func (m *Machine) generateEntities() {
	err := m.project.GenerateEntities()
	key := "generate_entities_success"
	if err != nil {
		key = "generate_entities_error"
	}
	m.message = m.expand(m.loc.Msg(key), err)
	m.report(Outcome{Action: OutcomeGenerateEntities, Target: m.project.Name(), Message: m.message, Err: err})
}

func (m *Machine) createEndpoint(name string) {
	err := m.project.CreateEndpoint(name)
	key := "endpoint_created"
	if err != nil {
		key = "endpoint_error"
	}
	m.message = m.expand(m.loc.Msg(key), err, "endpoint", name)
	m.report(Outcome{Action: OutcomeCreateEndpoint, Target: name, Message: m.message, Err: err})
}

// cycleTheme moves to the next theme by name. Persisting the choice is best
// effort; an unknown current theme leaves everything unchanged.
func (m *Machine) cycleTheme() bool {
	themes, err := m.prefs.Themes()
	if err != nil || len(themes) == 0 {
		return false
	}
	current := -1
	for i, name := range themes {
		if name == m.theme {
			current = i
			break
		}
	}
	if current < 0 {
		return false
	}
	m.theme = themes[wrap(current, 1, len(themes))]
	if err := m.prefs.SaveTheme(m.theme); err != nil {
		m.logger.Debug("theme not saved", logging.F("theme", m.theme), logging.Err(err))
	}
	return true
}

func (m *Machine) openLanguage() {
	m.state = State{Kind: KindLanguage}
	m.refilter()
}

// refilter recomputes the language list for the current search and resets
// the selection to the first row.
func (m *Machine) refilter() {
	all, err := m.prefs.Languages()
	if err != nil {
		m.logger.Warn("languages unavailable", logging.Err(err))
		all = nil
	}
	m.state.Filtered = filterLanguages(all, m.state.Search)
	m.state.Selected = 0
}

func (m *Machine) selectLanguage(code string) Effect {
	if err := m.prefs.SaveLanguage(code); err != nil {
		m.message = m.expand(m.loc.Msg("language_save_error"), err)
		m.report(Outcome{Action: OutcomeSaveLanguage, Target: code, Message: m.message, Err: err})
		return EffectNone
	}
	m.report(Outcome{Action: OutcomeSaveLanguage, Target: code})
	m.language = code
	m.setLocalization(m.loc.Reload(code))
	m.Close()
	return EffectReloaded
}
