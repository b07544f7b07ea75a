package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdash/internal/config"
)

func newTestProject(t *testing.T) *Project {
	t.Helper()
	root := filepath.Join(t.TempDir(), "shop")
	require.NoError(t, os.MkdirAll(root, 0o755))
	return New(root, config.DefaultConfig().Project)
}

func TestScaffoldCreatesSkeleton(t *testing.T) {
	p := newTestProject(t)
	require.False(t, p.Exists(), "no project before scaffold")
	assert.Equal(t, "shop", p.Name())

	require.NoError(t, p.Scaffold())
	assert.True(t, p.Exists())
	for _, rel := range []string{"src/endpoints", "src/entities", "openapi.json"} {
		_, err := os.Stat(filepath.Join(p.Root(), rel))
		assert.NoError(t, err, rel)
	}
	assert.ErrorIs(t, p.Scaffold(), ErrProjectExists)
}

func TestDestroyRemovesOnlyGeneratedPaths(t *testing.T) {
	p := newTestProject(t)
	require.NoError(t, p.Scaffold())
	keep := filepath.Join(p.Root(), "notes.md")
	require.NoError(t, os.WriteFile(keep, []byte("mine"), 0o644))

	require.NoError(t, p.Destroy())
	assert.False(t, p.Exists(), "marker removed")
	for _, rel := range []string{"src", "openapi.json"} {
		_, err := os.Stat(filepath.Join(p.Root(), rel))
		assert.ErrorIs(t, err, os.ErrNotExist, rel)
	}
	assert.FileExists(t, keep)
	assert.ErrorIs(t, p.Destroy(), ErrNoProject)
}

func TestDestroyRejectsInvalidPattern(t *testing.T) {
	p := newTestProject(t)
	require.NoError(t, p.Scaffold())
	p.cfg.Generated = []string{"src/[unclosed"}
	assert.Error(t, p.Destroy())
	assert.True(t, p.Exists(), "nothing is removed when patterns are invalid")
}

func TestCreateEndpointWritesFileAndRoute(t *testing.T) {
	p := newTestProject(t)
	assert.ErrorIs(t, p.CreateEndpoint("users"), ErrNoProject)
	require.NoError(t, p.Scaffold())
	require.NoError(t, p.CreateEndpoint("users"))

	data, err := os.ReadFile(filepath.Join(p.Root(), "src", "endpoints", "users.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "/users")

	doc, err := p.readSchema()
	require.NoError(t, err)
	paths, _ := doc["paths"].(map[string]any)
	assert.Contains(t, paths, "/users")
	assert.Error(t, p.CreateEndpoint("users"), "duplicate endpoint")
}

func TestCreateEndpointValidatesName(t *testing.T) {
	p := newTestProject(t)
	for _, name := range []string{"", "  ", "1users", "../etc", "a b"} {
		assert.ErrorIs(t, p.CreateEndpoint(name), ErrInvalidEndpoint, "name %q", name)
	}
}

func TestGenerateEntitiesFromSchema(t *testing.T) {
	p := newTestProject(t)
	require.NoError(t, p.Scaffold())
	assert.ErrorIs(t, p.GenerateEntities(), ErrNoEntities)

	doc := newSchema("shop")
	doc["components"] = map[string]any{
		"schemas": map[string]any{
			"UserProfile": map[string]any{
				"required": []any{"id"},
				"properties": map[string]any{
					"id":    map[string]any{"type": "integer", "format": "int64"},
					"email": map[string]any{"type": "string"},
					"org":   map[string]any{"$ref": "#/components/schemas/Org"},
				},
			},
		},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(p.schemaPath(), raw, 0o644))
	require.NoError(t, p.GenerateEntities())

	data, err := os.ReadFile(filepath.Join(p.Root(), "src", "entities", "user_profile.yaml"))
	require.NoError(t, err)
	for _, want := range []string{"name: UserProfile", "table: user_profile", "integer:int64", "required: true", "type: Org"} {
		assert.Contains(t, string(data), want)
	}
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{"UserProfile": "user_profile", "HTTPServer": "http_server", "order-item": "order_item", "pet": "pet"}
	for in, want := range cases {
		assert.Equal(t, want, snakeCase(in), "snakeCase(%q)", in)
	}
}
