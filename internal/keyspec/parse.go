package keyspec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseError explains why ParseStrict rejected a spec.
type ParseError struct {
	Spec   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid key spec %q: %s", e.Spec, e.Reason)
}

var namedSymbols = map[string]Symbol{
	"esc":        Escape,
	"escape":     Escape,
	"enter":      Enter,
	"return":     Enter,
	"backspace":  Backspace,
	"back":       Backspace,
	"tab":        Tab,
	"delete":     Delete,
	"del":        Delete,
	"insert":     Insert,
	"ins":        Insert,
	"up":         Up,
	"uparrow":    Up,
	"down":       Down,
	"downarrow":  Down,
	"left":       Left,
	"leftarrow":  Left,
	"right":      Right,
	"rightarrow": Right,
	"home":       Home,
	"end":        End,
	"pageup":     PageUp,
	"pgup":       PageUp,
	"pagedown":   PageDown,
	"pgdn":       PageDown,
}

var namedModifiers = map[string]Modifiers{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
}

// Parse turns a spec such as "Ctrl+C", "Esc" or "q" into a Binding.
// Invalid specs report false and never panic.
func Parse(spec string) (Binding, bool) {
	binding, err := ParseStrict(spec)
	if err != nil {
		return Binding{}, false
	}
	return binding, true
}

// ParseStrict is Parse with the reason for a rejection.
// Only a single modifier is supported: "Ctrl+Shift+A" is rejected.
func ParseStrict(spec string) (Binding, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return Binding{}, &ParseError{Spec: spec, Reason: "empty"}
	}
	if !strings.Contains(trimmed, "+") {
		sym, err := parseSymbol(spec, trimmed)
		if err != nil {
			return Binding{}, err
		}
		return Binding{Sym: sym}, nil
	}
	parts := strings.Split(trimmed, "+")
	if len(parts) != 2 {
		return Binding{}, &ParseError{Spec: spec, Reason: "only one modifier is supported"}
	}
	modToken := strings.TrimSpace(parts[0])
	keyToken := strings.TrimSpace(parts[1])
	mod, ok := namedModifiers[strings.ToLower(modToken)]
	if !ok {
		return Binding{}, &ParseError{Spec: spec, Reason: fmt.Sprintf("unknown modifier %q", modToken)}
	}
	if keyToken == "" {
		return Binding{}, &ParseError{Spec: spec, Reason: "missing key after modifier"}
	}
	sym, err := parseSymbol(spec, keyToken)
	if err != nil {
		return Binding{}, err
	}
	return Binding{Mods: mod, Sym: sym}, nil
}

func parseSymbol(spec, token string) (Symbol, error) {
	lower := strings.ToLower(token)
	if sym, ok := namedSymbols[lower]; ok {
		return sym, nil
	}
	if n, ok := functionNumber(lower); ok {
		return Fn(n), nil
	}
	if utf8.RuneCountInString(token) == 1 {
		r, _ := utf8.DecodeRuneInString(token)
		return Char(r), nil
	}
	return Symbol{}, &ParseError{Spec: spec, Reason: fmt.Sprintf("unknown key %q", token)}
}

func functionNumber(lower string) (int, bool) {
	if len(lower) < 2 || lower[0] != 'f' {
		return 0, false
	}
	n, err := strconv.Atoi(lower[1:])
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	if strconv.Itoa(n) != lower[1:] {
		return 0, false
	}
	return n, true
}
