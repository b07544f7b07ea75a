package keyspec

import (
	"strconv"
	"strings"
)

// Modifiers is a set over Ctrl, Shift and Alt. The zero value means no modifiers.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
)

// NoModifiers is the empty set.
const NoModifiers Modifiers = 0

// Has reports whether every modifier in mod is set.
func (m Modifiers) Has(mod Modifiers) bool {
	return mod != 0 && m&mod == mod
}

// String joins the set in Ctrl, Shift, Alt order, e.g. "Ctrl+Shift".
func (m Modifiers) String() string {
	if m == 0 {
		return ""
	}
	parts := make([]string, 0, 3)
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	return strings.Join(parts, "+")
}

// Kind tells symbols apart. KindChar carries a rune and KindFunction a number.
type Kind uint8

const (
	KindChar Kind = iota
	KindEscape
	KindEnter
	KindBackspace
	KindTab
	KindDelete
	KindInsert
	KindUp
	KindDown
	KindLeft
	KindRight
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindFunction
)

var kindNames = map[Kind]string{
	KindEscape:    "Esc",
	KindEnter:     "Enter",
	KindBackspace: "Backspace",
	KindTab:       "Tab",
	KindDelete:    "Delete",
	KindInsert:    "Insert",
	KindUp:        "Up",
	KindDown:      "Down",
	KindLeft:      "Left",
	KindRight:     "Right",
	KindHome:      "Home",
	KindEnd:       "End",
	KindPageUp:    "PageUp",
	KindPageDown:  "PageDown",
}

// Symbol is a key a terminal backend can deliver. Rune is only meaningful for
// KindChar and N only for KindFunction, so two symbols compare with ==.
type Symbol struct {
	Kind Kind
	Rune rune
	N    int
}

var (
	Escape    = Symbol{Kind: KindEscape}
	Enter     = Symbol{Kind: KindEnter}
	Backspace = Symbol{Kind: KindBackspace}
	Tab       = Symbol{Kind: KindTab}
	Delete    = Symbol{Kind: KindDelete}
	Insert    = Symbol{Kind: KindInsert}
	Up        = Symbol{Kind: KindUp}
	Down      = Symbol{Kind: KindDown}
	Left      = Symbol{Kind: KindLeft}
	Right     = Symbol{Kind: KindRight}
	Home      = Symbol{Kind: KindHome}
	End       = Symbol{Kind: KindEnd}
	PageUp    = Symbol{Kind: KindPageUp}
	PageDown  = Symbol{Kind: KindPageDown}
)

// Char is the symbol for a printable rune. Case is kept.
func Char(r rune) Symbol {
	return Symbol{Kind: KindChar, Rune: r}
}

// Fn returns the function key Fn. Callers are expected to keep n in [1, 12].
func Fn(n int) Symbol {
	return Symbol{Kind: KindFunction, N: n}
}

// IsChar reports whether s is a printable rune.
func (s Symbol) IsChar() bool {
	return s.Kind == KindChar
}

// String is the canonical spec text: "Esc", "F5", "Space" or the rune itself.
func (s Symbol) String() string {
	switch s.Kind {
	case KindChar:
		if s.Rune == ' ' {
			return "Space"
		}
		return string(s.Rune)
	case KindFunction:
		return "F" + strconv.Itoa(s.N)
	}
	if name, ok := kindNames[s.Kind]; ok {
		return name
	}
	return "?"
}

// Binding is a parsed key specification. Values are produced by Parse.
type Binding struct {
	Mods Modifiers
	Sym  Symbol
}

// String renders the binding the way Parse accepts it, e.g. "Ctrl+C".
func (b Binding) String() string {
	if b.Mods == 0 {
		return b.Sym.String()
	}
	return b.Mods.String() + "+" + b.Sym.String()
}

// EventKind distinguishes a press from auto-repeat and release.
type EventKind uint8

const (
	Press EventKind = iota
	Repeat
	Release
)

func (k EventKind) String() string {
	switch k {
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// Event is one observed keyboard event.
type Event struct {
	Kind EventKind
	Mods Modifiers
	Sym  Symbol
}

// PressOf builds a key press.
func PressOf(mods Modifiers, sym Symbol) Event {
	return Event{Kind: Press, Mods: mods, Sym: sym}
}
