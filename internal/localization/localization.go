package localization

import (
	"errors"
	"fmt"
	"strings"

	"webdash/internal/keyspec"
	"webdash/internal/logging"
)

const FallbackLanguage = "en"

const (
	MissingText    = "Missing text"
	UnknownSection = "Unknown section"
)

var ErrFallbackUnavailable = errors.New("fallback localization unavailable")

// InvalidBinding is a keys entry that does not parse.
type InvalidBinding struct {
	Action string
	Spec   string
	Err    error
}

// Localization resolves texts against an active bundle and the English
// fallback. Values are immutable; Reload returns a new one.
type Localization struct {
	lang     string
	active   Bundle
	fallback Bundle
	invalid  []InvalidBinding
	source   Source
	logger   logging.Logger
}

// Option configures Load.
type Option func(*Localization)

// WithLogger sends fallback and binding warnings to logger.
func WithLogger(logger logging.Logger) Option {
	return func(l *Localization) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Load reads the fallback bundle and then lang. Only a fallback failure is
// returned; any other failure leaves the fallback active.
func Load(src Source, lang string, opts ...Option) (*Localization, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no content source", ErrFallbackUnavailable)
	}
	l := &Localization{source: src, logger: logging.Nop()}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With(logging.F("component", "localization"))
	fallback, err := readBundle(src, FallbackLanguage)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFallbackUnavailable, err)
	}
	l.fallback = fallback
	l.install(lang)
	return l, nil
}

// Reload returns a Localization for lang that shares this value's fallback.
// The receiver is left untouched.
func (l *Localization) Reload(lang string) *Localization {
	next := &Localization{
		fallback: l.fallback,
		source:   l.source,
		logger:   l.logger,
	}
	next.install(lang)
	return next
}

// Refresh rereads both the fallback and lang from the source, picking up
// edited override files. The receiver is returned with the error when the
// fallback can no longer be read.
func (l *Localization) Refresh(lang string) (*Localization, error) {
	fallback, err := readBundle(l.source, FallbackLanguage)
	if err != nil {
		return l, fmt.Errorf("%w: %v", ErrFallbackUnavailable, err)
	}
	next := &Localization{
		fallback: fallback,
		source:   l.source,
		logger:   l.logger,
	}
	next.install(lang)
	return next, nil
}

func (l *Localization) install(lang string) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = FallbackLanguage
	}
	l.lang = FallbackLanguage
	l.active = l.fallback
	if lang != FallbackLanguage {
		bundle, err := readBundle(l.source, lang)
		if err != nil {
			l.logger.Warn("language unavailable, using fallback",
				logging.F("language", lang), logging.Err(err))
		} else {
			l.lang = lang
			l.active = bundle
		}
	}
	l.invalid = l.ValidateKeyBindings()
	for _, bad := range l.invalid {
		l.logger.Warn("invalid key binding",
			logging.F("language", l.lang),
			logging.F("action", bad.Action),
			logging.F("spec", bad.Spec),
			logging.Err(bad.Err))
	}
}

func readBundle(src Source, lang string) (Bundle, error) {
	data, err := src.Content(lang)
	if err != nil {
		return Bundle{}, err
	}
	return DecodeBundle(data)
}

func (l *Localization) Language() string {
	return l.lang
}

// Get resolves section/key against the active bundle, then the fallback.
func (l *Localization) Get(section Section, key string) string {
	if _, ok := l.active.section(section); !ok {
		return UnknownSection
	}
	if value, ok := l.Lookup(section, key); ok {
		return value
	}
	return MissingText
}

// Lookup is Get without sentinels: ok is false when neither bundle has the key.
func (l *Localization) Lookup(section Section, key string) (string, bool) {
	active, ok := l.active.section(section)
	if !ok {
		return "", false
	}
	if value, ok := active[key]; ok {
		return value, true
	}
	fallback, _ := l.fallback.section(section)
	value, ok := fallback[key]
	return value, ok
}

func (l *Localization) UI(key string) string  { return l.Get(SectionUI, key) }
func (l *Localization) Msg(key string) string { return l.Get(SectionMessages, key) }
func (l *Localization) Key(key string) string { return l.Get(SectionKeys, key) }

// ValidateKeyBindings parses every keys entry of the active bundle and
// returns the failures sorted by action.
func (l *Localization) ValidateKeyBindings() []InvalidBinding {
	var out []InvalidBinding
	for _, action := range sortedKeys(l.active.Keys) {
		spec := l.active.Keys[action]
		if _, err := keyspec.ParseStrict(spec); err != nil {
			out = append(out, InvalidBinding{Action: action, Spec: spec, Err: err})
		}
	}
	return out
}

// InvalidBindings is the result of the validation run at load time.
func (l *Localization) InvalidBindings() []InvalidBinding {
	return append([]InvalidBinding(nil), l.invalid...)
}

// UnknownActions lists actions bound in the active bundle that are not in known.
func (l *Localization) UnknownActions(known []string) []string {
	set := make(map[string]struct{}, len(known))
	for _, action := range known {
		set[action] = struct{}{}
	}
	var out []string
	for _, action := range sortedKeys(l.active.Keys) {
		if _, ok := set[action]; !ok {
			out = append(out, action)
		}
	}
	return out
}

// Bindings merges the fallback keys table with the active one.
func (l *Localization) Bindings() map[string]string {
	out := make(map[string]string, len(l.fallback.Keys)+len(l.active.Keys))
	for action, spec := range l.fallback.Keys {
		out[action] = spec
	}
	for action, spec := range l.active.Keys {
		out[action] = spec
	}
	return out
}

// Expand substitutes {name} placeholders given as name/value pairs.
func Expand(template string, pairs ...string) string {
	if len(pairs) < 2 {
		return template
	}
	args := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		args = append(args, "{"+pairs[i]+"}", pairs[i+1])
	}
	return strings.NewReplacer(args...).Replace(template)
}
