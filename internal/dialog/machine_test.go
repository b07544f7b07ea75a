package dialog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdash/internal/config"
	"webdash/internal/keyspec"
	"webdash/internal/localization"
)

type fakeProject struct {
	exists      bool
	name        string
	scaffoldErr error
	destroyErr  error
	generateErr error
	endpointErr error
	endpoints   []string
	scaffolds   int
	destroys    int
	generates   int
}

func (p *fakeProject) Name() string { return p.name }
func (p *fakeProject) Exists() bool { return p.exists }

func (p *fakeProject) Scaffold() error {
	p.scaffolds++
	if p.scaffoldErr == nil {
		p.exists = true
	}
	return p.scaffoldErr
}

func (p *fakeProject) Destroy() error {
	p.destroys++
	if p.destroyErr == nil {
		p.exists = false
	}
	return p.destroyErr
}

func (p *fakeProject) GenerateEntities() error {
	p.generates++
	return p.generateErr
}

func (p *fakeProject) CreateEndpoint(name string) error {
	p.endpoints = append(p.endpoints, name)
	return p.endpointErr
}

type fakePrefs struct {
	themes       []string
	languages    []config.Language
	saveThemeErr error
	saveLangErr  error
	savedThemes  []string
	savedLangs   []string
}

func (p *fakePrefs) Themes() ([]string, error) { return p.themes, nil }

func (p *fakePrefs) Languages() ([]config.Language, error) { return p.languages, nil }

func (p *fakePrefs) SaveTheme(name string) error {
	p.savedThemes = append(p.savedThemes, name)
	return p.saveThemeErr
}

func (p *fakePrefs) SaveLanguage(code string) error {
	if p.saveLangErr != nil {
		return p.saveLangErr
	}
	p.savedLangs = append(p.savedLangs, code)
	return nil
}

type fixture struct {
	m        *Machine
	project  *fakeProject
	prefs    *fakePrefs
	outcomes []Outcome
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc, err := localization.Load(localization.NewSource(""), "en")
	require.NoError(t, err)
	f := &fixture{
		project: &fakeProject{exists: true, name: "shop"},
		prefs: &fakePrefs{
			themes: []string{"dracula", "nord", "rust"},
			languages: []config.Language{
				{Code: "en", Display: "English"},
				{Code: "fr", Display: "Français"},
			},
		},
	}
	f.m = New(Deps{
		Localization: loc,
		Project:      f.project,
		Preferences:  f.prefs,
		Theme:        "rust",
		Record:       func(out Outcome) { f.outcomes = append(f.outcomes, out) },
	})
	return f
}

func press(sym keyspec.Symbol) keyspec.Event {
	return keyspec.PressOf(keyspec.NoModifiers, sym)
}

func (f *fixture) key(sym keyspec.Symbol) Effect {
	return f.m.HandleKey(press(sym))
}

func (f *fixture) typeText(text string) {
	for _, r := range text {
		f.key(keyspec.Char(r))
	}
}

func TestAddEndpointScenario(t *testing.T) {
	f := newFixture(t)
	f.key(keyspec.Char('e'))
	require.Equal(t, State{Kind: KindAPIEndpoint}, f.m.State())

	f.typeText("users")
	assert.Equal(t, "users", f.m.State().Input)

	f.key(keyspec.Enter)
	assert.Equal(t, []string{"users"}, f.project.endpoints)
	assert.Equal(t, State{}, f.m.State())
	assert.Equal(t, "Created endpoint users.", f.m.Message())
	require.Len(t, f.outcomes, 1)
	assert.Equal(t, OutcomeCreateEndpoint, f.outcomes[0].Action)
	assert.Equal(t, "users", f.outcomes[0].Target)
}

func TestAddEndpointEditing(t *testing.T) {
	f := newFixture(t)
	f.key(keyspec.Char('E'))
	require.Equal(t, KindAPIEndpoint, f.m.State().Kind)

	f.typeText("Ordré")
	f.key(keyspec.Backspace)
	f.m.HandleKey(keyspec.PressOf(keyspec.ModShift, keyspec.Char('S')))
	f.m.HandleKey(keyspec.PressOf(keyspec.ModCtrl, keyspec.Char('x')))
	f.m.HandleKey(keyspec.Event{Kind: keyspec.Release, Sym: keyspec.Char('z')})
	f.m.HandleKey(keyspec.Event{Kind: keyspec.Repeat, Sym: keyspec.Char('z')})
	assert.Equal(t, "OrdrS", f.m.State().Input)

	f.key(keyspec.Escape)
	assert.Equal(t, State{}, f.m.State())
	assert.Empty(t, f.project.endpoints)

	f.key(keyspec.Char('e'))
	assert.Equal(t, "", f.m.State().Input, "input must not leak across opens")
}

func TestAddEndpointFailureBecomesMessage(t *testing.T) {
	f := newFixture(t)
	f.project.endpointErr = errors.New("disk full")
	f.key(keyspec.Char('e'))
	f.typeText("x")
	f.key(keyspec.Enter)
	assert.Equal(t, KindNone, f.m.State().Kind)
	assert.Equal(t, "There was a problem creating endpoint x: disk full", f.m.Message())
	require.Len(t, f.outcomes, 1)
	assert.EqualError(t, f.outcomes[0].Err, "disk full")
}

func TestSettingsSelectionWraps(t *testing.T) {
	f := newFixture(t)
	f.key(keyspec.Char('s'))
	require.Equal(t, State{Kind: KindSettings}, f.m.State())

	f.key(keyspec.Up)
	assert.Equal(t, 3, f.m.State().Selected)
	f.key(keyspec.Down)
	assert.Equal(t, 0, f.m.State().Selected)
	f.key(keyspec.Up)
	f.key(keyspec.Down)
	f.key(keyspec.Down)
	assert.Equal(t, 1, f.m.State().Selected)
	f.key(keyspec.Up)
	f.key(keyspec.Up)
	assert.Equal(t, 3, f.m.State().Selected)
	f.key(keyspec.Down)
	assert.Equal(t, 0, f.m.State().Selected)
}

func TestSettingsThemeCyclesAndIgnoresSaveErrors(t *testing.T) {
	f := newFixture(t)
	f.prefs.saveThemeErr = errors.New("read-only")
	f.key(keyspec.Char('s'))

	effect := f.key(keyspec.Enter)
	assert.True(t, effect.Has(EffectThemeChanged))
	assert.Equal(t, "dracula", f.m.Theme())
	assert.Equal(t, KindSettings, f.m.State().Kind)
	assert.Equal(t, "", f.m.Message())

	f.prefs.saveThemeErr = nil
	f.key(keyspec.Enter)
	assert.Equal(t, "nord", f.m.Theme())
	assert.Equal(t, []string{"dracula", "nord"}, f.prefs.savedThemes)
}

func TestThemeCycleUnknownCurrentIsNoop(t *testing.T) {
	f := newFixture(t)
	f.m.theme = "gone"
	effect := f.key(keyspec.Char('t'))
	assert.Equal(t, EffectNone, effect)
	assert.Equal(t, "gone", f.m.Theme())
	assert.Empty(t, f.prefs.savedThemes)
}

func TestSettingsDestroyStaysOpenAndReportsOutcome(t *testing.T) {
	f := newFixture(t)
	f.project.destroyErr = errors.New("busy")
	f.key(keyspec.Char('s'))
	f.key(keyspec.Down)
	f.key(keyspec.Down)
	f.key(keyspec.Enter)
	assert.Equal(t, State{Kind: KindSettings, Selected: int(SettingDestroy)}, f.m.State())
	assert.Equal(t, "There was a problem destroying the app: busy", f.m.Message())

	f.project.destroyErr = nil
	f.key(keyspec.Enter)
	assert.Equal(t, 2, f.project.destroys)
	assert.Equal(t, "Destroyed the app in shop.", f.m.Message())
	assert.Equal(t, KindSettings, f.m.State().Kind)

	f.key(keyspec.Down)
	f.key(keyspec.Enter)
	assert.Equal(t, State{Kind: KindNewApp}, f.m.State(), "closing without an app opens the new-app prompt")
}

func TestSettingsCloseOption(t *testing.T) {
	f := newFixture(t)
	f.key(keyspec.Char('s'))
	f.key(keyspec.Up)
	f.key(keyspec.Enter)
	assert.Equal(t, State{}, f.m.State())

	f.key(keyspec.Char('s'))
	f.key(keyspec.Escape)
	assert.Equal(t, State{}, f.m.State())
}

func openLanguageDialog(f *fixture) {
	f.key(keyspec.Char('s'))
	f.key(keyspec.Down)
	f.key(keyspec.Enter)
}

func TestLanguageDialogFilters(t *testing.T) {
	f := newFixture(t)
	openLanguageDialog(f)
	state := f.m.State()
	require.Equal(t, KindLanguage, state.Kind)
	assert.Len(t, state.Filtered, 2)
	assert.Equal(t, 0, state.Selected)

	f.key(keyspec.Down)
	assert.Equal(t, 1, f.m.State().Selected)

	f.typeText("fr")
	state = f.m.State()
	assert.Equal(t, "fr", state.Search)
	assert.Equal(t, []config.Language{{Code: "fr", Display: "Français"}}, state.Filtered)
	assert.Equal(t, 0, state.Selected)

	f.key(keyspec.Backspace)
	f.key(keyspec.Backspace)
	f.typeText("ENGL")
	assert.Equal(t, []config.Language{{Code: "en", Display: "English"}}, f.m.State().Filtered)

	f.typeText("zz")
	assert.Empty(t, f.m.State().Filtered)
	f.key(keyspec.Down)
	f.key(keyspec.Up)
	assert.Equal(t, 0, f.m.State().Selected)
	assert.Equal(t, EffectNone, f.key(keyspec.Enter))
	assert.Equal(t, KindLanguage, f.m.State().Kind)
	assert.Empty(t, f.prefs.savedLangs)
}

func TestLanguageSelectionReloadsBindings(t *testing.T) {
	f := newFixture(t)
	openLanguageDialog(f)
	f.key(keyspec.Down)
	effect := f.key(keyspec.Enter)

	assert.True(t, effect.Has(EffectReloaded))
	assert.Equal(t, State{}, f.m.State())
	assert.Equal(t, []string{"fr"}, f.prefs.savedLangs)
	assert.Equal(t, "fr", f.m.Localization().Language())
	assert.Equal(t, "Paramètres", f.m.Localization().UI("settings_title"))

	f.key(keyspec.Char('e'))
	assert.Equal(t, KindNone, f.m.State().Kind, "the French bundle rebinds add_endpoint")
	f.key(keyspec.Char('a'))
	assert.Equal(t, KindAPIEndpoint, f.m.State().Kind)
}

func TestLanguageSaveFailureKeepsDialogOpen(t *testing.T) {
	f := newFixture(t)
	f.prefs.saveLangErr = errors.New("denied")
	openLanguageDialog(f)
	f.key(keyspec.Down)
	effect := f.key(keyspec.Enter)

	assert.Equal(t, EffectNone, effect)
	assert.Equal(t, KindLanguage, f.m.State().Kind)
	assert.Equal(t, "en", f.m.Localization().Language())
	assert.Equal(t, "Could not save the language choice: denied", f.m.Message())
}

func TestLanguageEscapeClearsSearch(t *testing.T) {
	f := newFixture(t)
	openLanguageDialog(f)
	f.typeText("fr")
	f.key(keyspec.Escape)
	assert.Equal(t, State{}, f.m.State())

	openLanguageDialog(f)
	assert.Equal(t, "", f.m.State().Search)
	assert.Len(t, f.m.State().Filtered, 2)
}

func TestNewAppOpensWhenNoProject(t *testing.T) {
	f := newFixture(t)
	f.project.exists = false
	f.m.EnsureProject()
	require.Equal(t, State{Kind: KindNewApp, Button: ButtonCreate}, f.m.State())

	f.key(keyspec.Right)
	assert.Equal(t, ButtonCancel, f.m.State().Button)
	f.key(keyspec.Left)
	assert.Equal(t, ButtonCreate, f.m.State().Button)

	f.project.scaffoldErr = errors.New("exists")
	f.key(keyspec.Enter)
	assert.Equal(t, "There was a problem creating an app in shop: exists", f.m.State().Result)
	assert.Equal(t, KindNewApp, f.m.State().Kind)

	f.project.scaffoldErr = nil
	f.key(keyspec.Enter)
	assert.Equal(t, "Created a new app in shop.", f.m.State().Result)
	assert.Equal(t, 2, f.project.scaffolds)

	f.key(keyspec.Escape)
	assert.Equal(t, State{}, f.m.State())
	assert.True(t, f.m.Running())
}

func TestNewAppEscapeReopensWhileNoProject(t *testing.T) {
	f := newFixture(t)
	f.project.exists = false
	f.m.EnsureProject()
	f.key(keyspec.Right)
	f.key(keyspec.Escape)
	assert.Equal(t, State{Kind: KindNewApp}, f.m.State())
}

func TestNewAppCancelQuits(t *testing.T) {
	f := newFixture(t)
	f.project.exists = false
	f.m.EnsureProject()
	f.key(keyspec.Right)
	effect := f.key(keyspec.Enter)
	assert.True(t, effect.Has(EffectQuit))
	assert.False(t, f.m.Running())
	assert.Equal(t, 0, f.project.scaffolds)

	assert.Equal(t, EffectNone, f.key(keyspec.Char('e')), "a stopped machine ignores input")
}

func TestQuitBindings(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.key(keyspec.Char('Q')).Has(EffectQuit))

	f = newFixture(t)
	assert.True(t, f.m.HandleKey(keyspec.PressOf(keyspec.ModCtrl, keyspec.Char('c'))).Has(EffectQuit))

	f = newFixture(t)
	f.project.exists = false
	f.m.EnsureProject()
	assert.True(t, f.key(keyspec.Char('q')).Has(EffectQuit))

	f = newFixture(t)
	assert.True(t, f.key(keyspec.Escape).Has(EffectQuit), "escape on the main screen quits")
	assert.False(t, f.m.Running())
}

func TestEscapeInsideDialogOnlyCloses(t *testing.T) {
	f := newFixture(t)
	f.key(keyspec.Char('s'))
	assert.Equal(t, EffectNone, f.key(keyspec.Escape))
	assert.Equal(t, State{}, f.m.State())
	assert.True(t, f.m.Running())
}

func TestGenerateEntitiesSetsMessage(t *testing.T) {
	f := newFixture(t)
	f.key(keyspec.Char('g'))
	assert.Equal(t, "Generated entities for shop.", f.m.Message())
	f.project.generateErr = errors.New("no schema")
	f.key(keyspec.Char('g'))
	assert.Equal(t, "There was a problem generating entities: no schema", f.m.Message())
	assert.Equal(t, 2, f.project.generates)
	assert.Len(t, f.outcomes, 2)
}

func TestHelpAndCopy(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, EffectNone, f.key(keyspec.Char('y')), "nothing to copy yet")

	f.key(keyspec.Char('?'))
	assert.Equal(t, KindHelp, f.m.State().Kind)
	f.key(keyspec.Char('?'))
	assert.Equal(t, KindNone, f.m.State().Kind)

	f.m.SetMessage("hello")
	assert.True(t, f.key(keyspec.Char('y')).Has(EffectCopy))
}

func TestInvalidBindingDisablesAction(t *testing.T) {
	src := localization.MapSource{"en": `
[ui]
[messages]
[keys]
add_endpoint = "Meta+E"
settings = "s"
escape = "Esc"
`}
	loc, err := localization.Load(src, "en")
	require.NoError(t, err)
	m := New(Deps{Localization: loc, Project: &fakeProject{exists: true}, Preferences: &fakePrefs{}})
	for _, r := range "eE" {
		m.HandleKey(press(keyspec.Char(r)))
		m.HandleKey(keyspec.PressOf(keyspec.ModAlt, keyspec.Char(r)))
	}
	assert.Equal(t, KindNone, m.State().Kind)
	m.HandleKey(press(keyspec.Char('s')))
	assert.Equal(t, KindSettings, m.State().Kind)
}
