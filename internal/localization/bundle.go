package localization

import (
	"errors"
	"fmt"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
)

// Section is one of the three tables of a bundle.
type Section string

const (
	SectionUI       Section = "ui"
	SectionMessages Section = "messages"
	SectionKeys     Section = "keys"
)

var ErrMalformedBundle = errors.New("malformed localization bundle")

// Bundle holds the texts of one language.
type Bundle struct {
	UI       map[string]string `toml:"ui" json:"ui" yaml:"ui"`
	Messages map[string]string `toml:"messages" json:"messages" yaml:"messages"`
	Keys     map[string]string `toml:"keys" json:"keys" yaml:"keys"`
}

// DecodeBundle parses TOML content. All three tables must be present, even if empty.
func DecodeBundle(data []byte) (Bundle, error) {
	var raw map[string]map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Bundle{}, fmt.Errorf("%w: %v", ErrMalformedBundle, err)
	}
	for _, section := range []Section{SectionUI, SectionMessages, SectionKeys} {
		if _, ok := raw[string(section)]; !ok {
			return Bundle{}, fmt.Errorf("%w: missing [%s] table", ErrMalformedBundle, section)
		}
	}
	return Bundle{
		UI:       nonNil(raw[string(SectionUI)]),
		Messages: nonNil(raw[string(SectionMessages)]),
		Keys:     nonNil(raw[string(SectionKeys)]),
	}, nil
}

func (b Bundle) section(section Section) (map[string]string, bool) {
	switch section {
	case SectionUI:
		return b.UI, true
	case SectionMessages:
		return b.Messages, true
	case SectionKeys:
		return b.Keys, true
	default:
		return nil, false
	}
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func nonNil(values map[string]string) map[string]string {
	if values == nil {
		return map[string]string{}
	}
	return values
}
