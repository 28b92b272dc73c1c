package schemalens

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the schemalens configuration
type Config struct {
	Databases  map[string]Database `yaml:"databases"`
	Validation ValidationConfig    `yaml:"validation"`
	Generation GenerationConfig    `yaml:"generation"`
	Output     OutputConfig        `yaml:"output"`
}

// Database represents database connection configuration for schema extraction
type Database struct {
	Driver     string `yaml:"driver"`
	Connection string `yaml:"connection"`
}

// ValidationConfig represents view validation settings
type ValidationConfig struct {
	MinSemanticScore float64 `yaml:"min_semantic_score"`
	DisableSemantic  bool    `yaml:"disable_semantic"`
}

// GenerationConfig represents view generation settings
type GenerationConfig struct {
	DefaultViews int `yaml:"default_views"`
	MaxViews     int `yaml:"max_views"`
}

// OutputConfig represents result export settings
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	expandConfigEnvVars(&config)

	return &config, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Databases: make(map[string]Database),
		Validation: ValidationConfig{
			MinSemanticScore: 0.05,
		},
		Generation: GenerationConfig{
			DefaultViews: 5,
			MaxViews:     20,
		},
		Output: OutputConfig{
			Dir: "./output",
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	if config.Databases == nil {
		config.Databases = make(map[string]Database)
	}

	if config.Validation.MinSemanticScore == 0 {
		config.Validation.MinSemanticScore = 0.05
	}

	if config.Generation.DefaultViews == 0 {
		config.Generation.DefaultViews = 5
	}

	if config.Generation.MaxViews == 0 {
		config.Generation.MaxViews = 20
	}

	if config.Output.Dir == "" {
		config.Output.Dir = "./output"
	}
}

// validateConfig checks configuration values for consistency
func validateConfig(config *Config) error {
	if config.Validation.MinSemanticScore < 0 || config.Validation.MinSemanticScore > 1 {
		return fmt.Errorf("%w: min_semantic_score must be between 0 and 1, got %g",
			ErrConfigValidation, config.Validation.MinSemanticScore)
	}

	if config.Generation.MaxViews < config.Generation.DefaultViews {
		return fmt.Errorf("%w: max_views (%d) must not be smaller than default_views (%d)",
			ErrConfigValidation, config.Generation.MaxViews, config.Generation.DefaultViews)
	}

	return nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	envBraceRe = regexp.MustCompile(`\$\{([^}]+)\}`)
	envBareRe  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = envBraceRe.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	s = envBareRe.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})

	return s
}

// expandConfigEnvVars expands environment variables in config
func expandConfigEnvVars(config *Config) {
	for name, db := range config.Databases {
		db.Driver = expandEnvVars(db.Driver)
		db.Connection = expandEnvVars(db.Connection)
		config.Databases[name] = db
	}

	config.Output.Dir = expandEnvVars(config.Output.Dir)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
