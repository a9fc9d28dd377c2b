package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/thaumiel-labs/seraph-relay/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults matching the original deployment.
const (
	defaultModel           = "gemini-2.0-flash"
	defaultTemperature     = 0.35
	defaultTopP            = 0.95
	defaultTopK            = 40
	defaultMaxOutputTokens = 150

	defaultCacheTTLSeconds    = 300
	defaultThrottleIntervalMs = 1000
)

// Config represents the complete application configuration
type Config struct {
	Server   models.ServerConfig    `yaml:"server"`
	Gemini   models.GeminiConfig    `yaml:"gemini"`
	Dispatch models.DispatchConfig  `yaml:"dispatch"`
	Cache    models.CacheConfig     `yaml:"cache"`
	Database *models.DatabaseConfig `yaml:"database,omitempty"`
}

// LoadFromFile loads configuration from a YAML file with environment
// variable substitution.
func LoadFromFile(configPath string) (*Config, error) {
	cleanPath := filepath.Clean(configPath)

	if strings.Contains(cleanPath, "..") {
		return nil, fmt.Errorf("invalid config path: path traversal not allowed")
	}

	ext := filepath.Ext(cleanPath)
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("invalid config file: only .yaml and .yml files are allowed")
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 - path is validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cleanPath, err)
	}

	content := substituteEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	config.applyDefaults()

	return &config, nil
}

// New creates a new Config instance by loading from the specified config file path
func New(configPath string) (*Config, error) {
	return LoadFromFile(configPath)
}

// LoadEnvFiles loads environment variables from .env files in order of
// precedence (first file wins for already-set variables).
func LoadEnvFiles(envFiles []string) {
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err == nil {
				fmt.Printf("Loaded environment variables from %s\n", envFile)
			}
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.AllowedOrigins == "" {
		c.Server.AllowedOrigins = "*"
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = defaultModel
	}
	if c.Gemini.Generation.Temperature == 0 {
		c.Gemini.Generation.Temperature = defaultTemperature
	}
	if c.Gemini.Generation.TopP == 0 {
		c.Gemini.Generation.TopP = defaultTopP
	}
	if c.Gemini.Generation.TopK == 0 {
		c.Gemini.Generation.TopK = defaultTopK
	}
	if c.Gemini.Generation.MaxOutputTokens == 0 {
		c.Gemini.Generation.MaxOutputTokens = defaultMaxOutputTokens
	}

	if c.Cache.Backend == "" {
		c.Cache.Backend = models.CacheBackendMemory
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = defaultCacheTTLSeconds
	}

	if c.Dispatch.ThrottleIntervalMs == 0 {
		c.Dispatch.ThrottleIntervalMs = defaultThrottleIntervalMs
	}
}

// Validate checks the configuration for inconsistencies before startup.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini api_key is required (set GEMINI_API_KEY)")
	}
	if c.Cache.Backend == models.CacheBackendRedis && c.Cache.RedisURL == "" {
		return fmt.Errorf("cache redis_url is required for the redis backend")
	}
	if c.Database != nil {
		switch c.Database.Type {
		case models.PostgreSQL, models.MySQL:
			if c.Database.DSN == "" && c.Database.Host == "" {
				return fmt.Errorf("database dsn or host is required for %s", c.Database.Type)
			}
		case models.SQLite:
			if c.Database.FilePath == "" {
				return fmt.Errorf("database file_path is required for sqlite")
			}
		default:
			return fmt.Errorf("unsupported database type: %s", c.Database.Type)
		}
	}
	return nil
}

// IsProduction returns whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// GetNormalizedLogLevel returns the configured log level lowercased.
func (c *Config) GetNormalizedLogLevel() string {
	return strings.ToLower(strings.TrimSpace(c.Server.LogLevel))
}

// substituteEnvVars replaces ${VAR_NAME} and ${VAR_NAME:-default} patterns
// with environment variables.
func substituteEnvVars(content string) string {
	re := regexp.MustCompile(`\$\{([^}:]+)(?::(-[^}]*))?\}`)

	return re.ReplaceAllStringFunc(content, func(match string) string {
		submatches := re.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		defaultValue := ""

		if len(submatches) > 2 && submatches[2] != "" {
			defaultValue = strings.TrimPrefix(submatches[2], "-")
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
