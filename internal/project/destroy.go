package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Destroy removes every path matching the generated patterns, then the
// marker. Paths outside the patterns are left alone.
func (p *Project) Destroy() error {
	if !p.Exists() {
		return ErrNoProject
	}
	patterns, err := compilePatterns(p.cfg.Generated)
	if err != nil {
		return err
	}
	var doomed []string
	err = filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == p.root {
			return nil
		}
		rel, err := filepath.Rel(p.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !matchesAny(patterns, rel, d.IsDir()) {
			return nil
		}
		doomed = append(doomed, path)
		if d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", p.root, err)
	}
	var errs []error
	for _, path := range doomed {
		if err := os.RemoveAll(path); err != nil {
			errs = append(errs, err)
		}
	}
	if err := os.Remove(p.path(MarkerFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func compilePatterns(raw []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(raw))
	for _, pattern := range raw {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid generated pattern %q: %w", pattern, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// matchesAny also tries dir+"/" so "src/**" claims the src directory itself.
func matchesAny(patterns []glob.Glob, rel string, dir bool) bool {
	for _, g := range patterns {
		if g.Match(rel) || (dir && g.Match(rel+"/")) {
			return true
		}
	}
	return false
}
