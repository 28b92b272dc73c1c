package schemalens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schemalens.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)

	assert.Equal(t, 0.05, config.Validation.MinSemanticScore)
	assert.False(t, config.Validation.DisableSemantic)
	assert.Equal(t, 5, config.Generation.DefaultViews)
	assert.Equal(t, 20, config.Generation.MaxViews)
	assert.Equal(t, "./output", config.Output.Dir)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
validation:
  min_semantic_score: 0.2
  disable_semantic: true
generation:
  default_views: 3
  max_views: 10
output:
  dir: ./results
databases:
  development:
    driver: sqlite3
    connection: ./dev.db
`)

	config, err := LoadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, 0.2, config.Validation.MinSemanticScore)
	assert.True(t, config.Validation.DisableSemantic)
	assert.Equal(t, 3, config.Generation.DefaultViews)
	assert.Equal(t, 10, config.Generation.MaxViews)
	assert.Equal(t, "./results", config.Output.Dir)
	assert.Equal(t, "sqlite3", config.Databases["development"].Driver)
}

func TestLoadConfig_PartialFileGetsDefaults(t *testing.T) {
	path := writeConfig(t, `
validation:
  min_semantic_score: 0.1
`)

	config, err := LoadConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, 0.1, config.Validation.MinSemanticScore)
	assert.Equal(t, 5, config.Generation.DefaultViews)
	assert.Equal(t, "./output", config.Output.Dir)
}

func TestLoadConfig_UnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, `
validation:
  minimum_score: 0.1
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"semantic score above one", "validation:\n  min_semantic_score: 1.5\n"},
		{"semantic score negative", "validation:\n  min_semantic_score: -0.1\n"},
		{"max views below default", "generation:\n  default_views: 10\n  max_views: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.IsError(t, err, ErrConfigValidation)
		})
	}
}

func TestLoadConfig_EnvExpansion(t *testing.T) {
	t.Setenv("SCHEMALENS_TEST_DSN", "postgres://localhost/app")

	path := writeConfig(t, `
databases:
  production:
    driver: postgres
    connection: ${SCHEMALENS_TEST_DSN}
`)

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "postgres://localhost/app", config.Databases["production"].Connection)
}
