package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

var endpointNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

type endpointFile struct {
	Name    string   `toml:"name"`
	Path    string   `toml:"path"`
	Methods []string `toml:"methods"`
}

// CreateEndpoint adds an endpoint definition and registers its path in the
// OpenAPI document.
func (p *Project) CreateEndpoint(name string) error {
	name = strings.TrimSpace(name)
	if !endpointNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, name)
	}
	if !p.Exists() {
		return ErrNoProject
	}
	dir := p.path(p.cfg.EndpointsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	route := "/" + strings.ToLower(name)
	data, err := toml.Marshal(endpointFile{Name: name, Path: route, Methods: []string{"GET"}})
	if err != nil {
		return err
	}
	path := filepath.Join(dir, name+".toml")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("endpoint %s already exists", name)
		}
		return err
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return p.registerRoute(route, name)
}

func (p *Project) registerRoute(route, name string) error {
	doc, err := p.readSchema()
	if errors.Is(err, os.ErrNotExist) {
		doc = newSchema(p.Name())
	} else if err != nil {
		return err
	}
	paths, _ := doc["paths"].(map[string]any)
	if paths == nil {
		paths = map[string]any{}
		doc["paths"] = paths
	}
	if _, ok := paths[route]; ok {
		return nil
	}
	paths[route] = map[string]any{
		"get": map[string]any{
			"summary":     "List " + name,
			"operationId": "list_" + strings.ToLower(name),
			"responses":   map[string]any{"200": map[string]any{"description": "OK"}},
		},
	}
	return p.writeSchema(doc)
}
