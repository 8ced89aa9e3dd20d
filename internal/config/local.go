package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/algodrill/internal/catalog"
	"github.com/felixgeelhaar/algodrill/internal/domain"
)

// History backends
const (
	HistoryJSON   = "json"
	HistorySQLite = "sqlite"
	HistoryOff    = "off"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings read from ~/.algodrill/config.yaml
type Config struct {
	Practice    PracticeConfig `yaml:"practice"`
	Sizes       SizesConfig    `yaml:"sizes"`
	History     HistoryConfig  `yaml:"history"`
	CatalogPath string         `yaml:"catalog_path"`
	LogLevel    string         `yaml:"log_level"`
}

// PracticeConfig holds session defaults
type PracticeConfig struct {
	DefaultAlgorithm string `yaml:"default_algorithm"`
	Language         string `yaml:"language"`
	Seed             int64  `yaml:"seed"` // 0 picks a fresh seed per run
}

// SizesConfig bounds generated instances
type SizesConfig struct {
	GraphNodes int `yaml:"graph_nodes"`
	TreeValues int `yaml:"tree_values"`
	Array      int `yaml:"array"`
	Heap       int `yaml:"heap"`
	StackOps   int `yaml:"stack_ops"`
	Queue      int `yaml:"queue"`
	HashTable  int `yaml:"hash_table"`
}

// HistoryConfig selects where practice records go
type HistoryConfig struct {
	Backend string `yaml:"backend"` // json, sqlite, off
	Path    string `yaml:"path,omitempty"`
}

// Dir returns the path to ~/.algodrill, or $ALGODRILL_HOME when set
func Dir() (string, error) {
	if dir := os.Getenv(envPrefix + "HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".algodrill"), nil
}

// EnsureDir creates the config directory and its subdirectories
func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	for _, subdir := range []string{"", "logs", "history", "catalog"} {
		path := filepath.Join(dir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", fmt.Errorf("create dir %s: %w", path, err)
		}
	}
	return dir, nil
}

// Default returns the built-in configuration
func Default() *Config {
	s := catalog.DefaultSizes()
	return &Config{
		Practice: PracticeConfig{
			DefaultAlgorithm: "bfs",
			Language:         string(domain.LanguageJava),
		},
		Sizes: SizesConfig{
			GraphNodes: s.GraphNodes,
			TreeValues: s.TreeValues,
			Array:      s.Array,
			Heap:       s.Heap,
			StackOps:   s.StackOps,
			Queue:      s.Queue,
			HashTable:  s.HashTable,
		},
		History:  HistoryConfig{Backend: HistoryJSON},
		LogLevel: "info",
	}
}

// Load reads ~/.algodrill/config.yaml and applies environment overrides
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom reads dir/config.yaml over the defaults. A missing file yields
// the defaults.
func LoadFrom(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	cfg.resolvePaths(dir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to ~/.algodrill/config.yaml
func Save(cfg *Config) error {
	dir, err := EnsureDir()
	if err != nil {
		return err
	}
	return SaveTo(dir, cfg)
}

// SaveTo writes cfg to dir/config.yaml
func SaveTo(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// resolvePaths fills history and catalog paths relative to dir
func (c *Config) resolvePaths(dir string) {
	if c.History.Path == "" {
		switch c.History.Backend {
		case HistorySQLite:
			c.History.Path = filepath.Join(dir, "history", "history.db")
		case HistoryJSON:
			c.History.Path = filepath.Join(dir, "history")
		}
	}
	if c.CatalogPath == "" {
		c.CatalogPath = filepath.Join(dir, "catalog")
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if _, err := domain.ParseLanguage(c.Practice.Language); err != nil {
		return fmt.Errorf("%w: practice.language: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	switch c.History.Backend {
	case HistoryJSON, HistorySQLite, HistoryOff:
	default:
		return fmt.Errorf("%w: history.backend must be json, sqlite or off, got %q", ErrInvalidConfig, c.History.Backend)
	}

	s := c.Sizes
	if s.GraphNodes < 1 || s.GraphNodes > 26 {
		return fmt.Errorf("%w: sizes.graph_nodes must be in [1,26], got %d", ErrInvalidConfig, s.GraphNodes)
	}
	for name, v := range map[string]int{
		"tree_values": s.TreeValues,
		"array":       s.Array,
		"heap":        s.Heap,
		"stack_ops":   s.StackOps,
		"queue":       s.Queue,
	} {
		if v < 1 {
			return fmt.Errorf("%w: sizes.%s must be positive, got %d", ErrInvalidConfig, name, v)
		}
	}
	if s.HashTable < 2 {
		return fmt.Errorf("%w: sizes.hash_table must be at least 2, got %d", ErrInvalidConfig, s.HashTable)
	}
	return nil
}

// CatalogSizes converts the sizes section for the catalog
func (c *Config) CatalogSizes() catalog.Sizes {
	return catalog.Sizes{
		GraphNodes: c.Sizes.GraphNodes,
		TreeValues: c.Sizes.TreeValues,
		Array:      c.Sizes.Array,
		Heap:       c.Sizes.Heap,
		StackOps:   c.Sizes.StackOps,
		Queue:      c.Sizes.Queue,
		HashTable:  c.Sizes.HashTable,
	}
}

// Language returns the configured reference code language
func (c *Config) Language() domain.Language {
	lang, err := domain.ParseLanguage(c.Practice.Language)
	if err != nil {
		return domain.LanguageJava
	}
	return lang
}
