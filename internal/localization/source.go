package localization

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

//go:embed defaults/*.toml
var embeddedDefaults embed.FS

const bundleExt = ".toml"

var (
	ErrInvalidLanguage  = errors.New("invalid language code")
	ErrLanguageNotFound = errors.New("language not found")
)

var languageCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Source returns the raw bundle for a language code.
type Source interface {
	Content(lang string) ([]byte, error)
}

// FileSource reads <dir>/<lang>.toml when present and the embedded default otherwise.
type FileSource struct {
	overrideDir string
	defaults    fs.FS
}

// NewSource reads <overrideDir>/<lang>.toml when present and the embedded
// default otherwise. An empty overrideDir uses only the defaults.
func NewSource(overrideDir string) *FileSource {
	return &FileSource{
		overrideDir: strings.TrimSpace(overrideDir),
		defaults:    embeddedDefaults,
	}
}

func (s *FileSource) OverrideDir() string {
	if s == nil {
		return ""
	}
	return s.overrideDir
}

// OverridePath is where a user file for lang would live, or "" without an override dir.
func (s *FileSource) OverridePath(lang string) string {
	if s == nil || s.overrideDir == "" || !ValidLanguageCode(lang) {
		return ""
	}
	return filepath.Join(s.overrideDir, lang+bundleExt)
}

func (s *FileSource) Content(lang string) ([]byte, error) {
	if !ValidLanguageCode(lang) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}
	if path := s.OverridePath(lang); path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	data, err := fs.ReadFile(s.defaults, "defaults/"+lang+bundleExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
		}
		return nil, err
	}
	return data, nil
}

// Languages lists every code with content, embedded or overridden, sorted.
func (s *FileSource) Languages() []string {
	seen := map[string]struct{}{}
	if entries, err := fs.ReadDir(s.defaults, "defaults"); err == nil {
		for _, entry := range entries {
			addBundleName(seen, entry)
		}
	}
	if s.overrideDir != "" {
		if entries, err := os.ReadDir(s.overrideDir); err == nil {
			for _, entry := range entries {
				addBundleName(seen, entry)
			}
		}
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func addBundleName(seen map[string]struct{}, entry fs.DirEntry) {
	if entry.IsDir() || !strings.HasSuffix(entry.Name(), bundleExt) {
		return
	}
	code := strings.TrimSuffix(entry.Name(), bundleExt)
	if ValidLanguageCode(code) {
		seen[code] = struct{}{}
	}
}

// ValidLanguageCode reports whether lang is safe to use as a file name.
func ValidLanguageCode(lang string) bool {
	return languageCodePattern.MatchString(lang)
}

// MapSource serves bundles from memory.
type MapSource map[string]string

func (m MapSource) Content(lang string) ([]byte, error) {
	if content, ok := m[lang]; ok {
		return []byte(content), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
}
