// Package config loads the bizsite build configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/supermodeltools/bizsite/internal/bizsite/ai"
)

// Load reads and parses a YAML config file, applies defaults, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.ConfigDir = filepath.Dir(path)
	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	// Resolve relative paths against config directory
	resolvePaths(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
// Its base URL is empty, so the export falls back to the site's domain.
func Default() *Config {
	cfg := &Config{ConfigDir: "."}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Site.Language == "" {
		cfg.Site.Language = "en"
	}
	if cfg.Paths.Input == "" {
		cfg.Paths.Input = "website.json"
	}
	if cfg.Paths.Output == "" {
		cfg.Paths.Output = "dist"
	}
	if cfg.Paths.Database == "" {
		cfg.Paths.Database = "bizsite.db"
	}
	if cfg.Build.Concurrency == 0 {
		cfg.Build.Concurrency = 8
	}
	if cfg.Sitemap.MaxURLsPerFile == 0 {
		cfg.Sitemap.MaxURLsPerFile = 50000
	}
	if cfg.Sitemap.ChangeFreqs == nil {
		cfg.Sitemap.ChangeFreqs = map[string]string{
			"home":     "weekly",
			"about":    "monthly",
			"services": "monthly",
			"contact":  "yearly",
			"blog":     "weekly",
			"service":  "monthly",
			"location": "monthly",
			"post":     "monthly",
			"custom":   "monthly",
		}
	}

	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "gemini"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = ai.DefaultModel
	}
	if cfg.AI.APIKeyEnv == "" {
		cfg.AI.APIKeyEnv = "GEMINI_API_KEY"
	}
	if cfg.AI.TargetWords == 0 {
		cfg.AI.TargetWords = ai.DefaultTargetWords
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = 0.7
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 60 * time.Second
	}
	if cfg.AI.CacheDir == "" {
		cfg.AI.CacheDir = ".cache/ai"
	}
}

var validate = validator.New()

// Validate checks the config against its struct tags.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := verrs[0]
	return fmt.Errorf("%s failed %q validation (got %v)", yamlPath(fe.Namespace()), fe.Tag(), fe.Value())
}

func resolvePaths(cfg *Config) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(cfg.ConfigDir, p)
	}

	cfg.Paths.Input = resolve(cfg.Paths.Input)
	cfg.Paths.Posts = resolve(cfg.Paths.Posts)
	cfg.Paths.Output = resolve(cfg.Paths.Output)
	cfg.Paths.Database = resolve(cfg.Paths.Database)
	cfg.AI.CacheDir = resolve(cfg.AI.CacheDir)
}
