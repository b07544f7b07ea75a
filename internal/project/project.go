package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"webdash/internal/config"
)

// MarkerFile identifies a directory managed by webdash.
const MarkerFile = ".webdash-app"

var (
	ErrNoProject       = errors.New("no app in this directory")
	ErrProjectExists   = errors.New("an app already exists in this directory")
	ErrInvalidEndpoint = errors.New("invalid endpoint name")
)

type marker struct {
	Name    string    `toml:"name"`
	Created time.Time `toml:"created"`
}

// Project scaffolds and manages the app rooted at one directory.
type Project struct {
	root string
	cfg  config.ProjectConfig
	now  func() time.Time
}

func New(root string, cfg config.ProjectConfig) *Project {
	return &Project{root: filepath.Clean(root), cfg: cfg, now: time.Now}
}

func (p *Project) Root() string {
	return p.root
}

// Name is the base name of the project directory.
func (p *Project) Name() string {
	name := filepath.Base(p.root)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "current"
	}
	return name
}

func (p *Project) Exists() bool {
	info, err := os.Stat(p.path(MarkerFile))
	return err == nil && !info.IsDir()
}

// Scaffold creates the app skeleton. It refuses to run over an existing app.
func (p *Project) Scaffold() error {
	if p.Exists() {
		return ErrProjectExists
	}
	for _, dir := range []string{p.cfg.EndpointsDir, p.cfg.EntitiesDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(p.path(dir), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := p.writeSchema(newSchema(p.Name())); err != nil {
		return err
	}
	data, err := toml.Marshal(marker{Name: p.Name(), Created: p.now().UTC().Truncate(time.Second)})
	if err != nil {
		return err
	}
	return os.WriteFile(p.path(MarkerFile), data, 0o644)
}

func (p *Project) path(rel string) string {
	return filepath.Join(p.root, filepath.FromSlash(rel))
}

func (p *Project) schemaPath() string {
	return p.path(p.cfg.SchemaPath)
}

type schema map[string]any

func newSchema(title string) schema {
	return schema{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": title, "version": "0.1.0"},
		"paths":   map[string]any{},
		"components": map[string]any{
			"schemas": map[string]any{},
		},
	}
}

func (p *Project) readSchema() (schema, error) {
	data, err := os.ReadFile(p.schemaPath())
	if err != nil {
		return nil, err
	}
	var s schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.cfg.SchemaPath, err)
	}
	return s, nil
}

func (p *Project) writeSchema(s schema) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.schemaPath()), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.schemaPath(), append(data, '\n'), 0o644)
}
