package keymatch

import (
	"unicode"

	"webdash/internal/keyspec"
	"webdash/internal/localization"
)

// Resolver looks up the raw key spec bound to an action.
type Resolver interface {
	Lookup(section localization.Section, key string) (string, bool)
}

// Matcher answers whether an observed key triggers a named action. The zero
// value matches nothing.
type Matcher struct {
	res Resolver
}

// New returns a Matcher reading bindings from res.
func New(res Resolver) Matcher {
	return Matcher{res: res}
}

// Binding parses the spec bound to action. Missing and invalid specs are unbound.
func (m Matcher) Binding(action string) (keyspec.Binding, bool) {
	if m.res == nil {
		return keyspec.Binding{}, false
	}
	spec, ok := m.res.Lookup(localization.SectionKeys, action)
	if !ok {
		return keyspec.Binding{}, false
	}
	return keyspec.Parse(spec)
}

// Matches reports whether the observed key triggers action. Modifiers must be
// equal; characters compare without case, every other symbol exactly.
func (m Matcher) Matches(action string, mods keyspec.Modifiers, sym keyspec.Symbol) bool {
	bound, ok := m.Binding(action)
	if !ok {
		return false
	}
	if bound.Mods != mods {
		return false
	}
	if bound.Sym.IsChar() && sym.IsChar() {
		return unicode.ToLower(bound.Sym.Rune) == unicode.ToLower(sym.Rune)
	}
	return bound.Sym == sym
}

// MatchesEvent is Matches for a whole event. The event kind is not checked.
func (m Matcher) MatchesEvent(action string, ev keyspec.Event) bool {
	return m.Matches(action, ev.Mods, ev.Sym)
}

// Any reports whether ev triggers at least one of actions.
func (m Matcher) Any(ev keyspec.Event, actions ...string) bool {
	for _, action := range actions {
		if m.MatchesEvent(action, ev) {
			return true
		}
	}
	return false
}

// Display is the canonical text for the key bound to action, or "" when unbound.
func (m Matcher) Display(action string) string {
	bound, ok := m.Binding(action)
	if !ok {
		return ""
	}
	return bound.String()
}
