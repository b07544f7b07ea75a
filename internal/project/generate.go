package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

var ErrNoEntities = errors.New("schema defines no entities")

// Entity is the descriptor written for each schema component.
type Entity struct {
	Name   string        `yaml:"name"`
	Table  string        `yaml:"table"`
	Fields []EntityField `yaml:"fields"`
}

type EntityField struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required,omitempty"`
}

// GenerateEntities writes one descriptor per components.schemas entry of the
// OpenAPI document into the entities directory.
func (p *Project) GenerateEntities() error {
	if !p.Exists() {
		return ErrNoProject
	}
	doc, err := p.readSchema()
	if err != nil {
		return err
	}
	entities := entitiesFromSchema(doc)
	if len(entities) == 0 {
		return ErrNoEntities
	}
	dir := p.path(p.cfg.EntitiesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, entity := range entities {
		data, err := yaml.Marshal(entity)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, entity.Table+".yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write entity %s: %w", entity.Name, err)
		}
	}
	return nil
}

func entitiesFromSchema(doc schema) []Entity {
	components, _ := doc["components"].(map[string]any)
	schemas, _ := components["schemas"].(map[string]any)
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Entity, 0, len(names))
	for _, name := range names {
		def, _ := schemas[name].(map[string]any)
		props, _ := def["properties"].(map[string]any)
		required := map[string]bool{}
		if list, ok := def["required"].([]any); ok {
			for _, item := range list {
				if field, ok := item.(string); ok {
					required[field] = true
				}
			}
		}
		fieldNames := make([]string, 0, len(props))
		for field := range props {
			fieldNames = append(fieldNames, field)
		}
		sort.Strings(fieldNames)
		entity := Entity{Name: name, Table: snakeCase(name)}
		for _, field := range fieldNames {
			prop, _ := props[field].(map[string]any)
			entity.Fields = append(entity.Fields, EntityField{
				Name:     field,
				Type:     fieldType(prop),
				Required: required[field],
			})
		}
		out = append(out, entity)
	}
	return out
}

func fieldType(prop map[string]any) string {
	kind, _ := prop["type"].(string)
	if kind == "" {
		if ref, ok := prop["$ref"].(string); ok {
			return ref[strings.LastIndex(ref, "/")+1:]
		}
		return "any"
	}
	if format, ok := prop["format"].(string); ok && format != "" {
		return kind + ":" + format
	}
	return kind
}

func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		case r == '-' || r == ' ':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
