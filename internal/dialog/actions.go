package dialog

const (
	ActionAddEndpoint      = "add_endpoint"
	ActionGenerateEntities = "generate_entities"
	ActionSettings         = "settings"
	ActionToggleTheme      = "toggle_theme"
	ActionHelp             = "help"
	ActionCopyMessage      = "copy_message"
	ActionQuit             = "quit"
	ActionQuitCombo        = "quit_combo"
	ActionEscape           = "escape"
	ActionEnter            = "enter"
	ActionBackspace        = "backspace"
	ActionUp               = "up"
	ActionDown             = "down"
	ActionLeft             = "left"
	ActionRight            = "right"
)

// KnownActions lists every action the dialogs consult, in help order.
func KnownActions() []string {
	return []string{
		ActionAddEndpoint,
		ActionGenerateEntities,
		ActionSettings,
		ActionToggleTheme,
		ActionHelp,
		ActionCopyMessage,
		ActionQuit,
		ActionQuitCombo,
		ActionEscape,
		ActionEnter,
		ActionBackspace,
		ActionUp,
		ActionDown,
		ActionLeft,
		ActionRight,
	}
}

// Outcome actions recorded for collaborator calls.
const (
	OutcomeScaffold         = "scaffold"
	OutcomeDestroy          = "destroy"
	OutcomeGenerateEntities = "generate_entities"
	OutcomeCreateEndpoint   = "create_endpoint"
	OutcomeSaveTheme        = "save_theme"
	OutcomeSaveLanguage     = "save_language"
)
