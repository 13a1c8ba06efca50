package config

import "time"

// Config is the top-level bizsite configuration loaded from YAML.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Paths    PathsConfig    `yaml:"paths"`
	Build    BuildConfig    `yaml:"build"`
	Sitemap  SitemapConfig  `yaml:"sitemap"`
	Robots   RobotsConfig   `yaml:"robots"`
	Feed     FeedConfig     `yaml:"feed"`
	LlmsTxt  LlmsTxtConfig  `yaml:"llms_txt"`
	Manifest ManifestConfig `yaml:"manifest"`
	Share    ShareConfig    `yaml:"share_images"`
	AI       AIConfig       `yaml:"ai"`

	// ConfigDir is the directory containing the config file (set at load time).
	ConfigDir string `yaml:"-"`
}

type SiteConfig struct {
	BaseURL  string `yaml:"base_url" validate:"required,url"`
	Language string `yaml:"language" validate:"omitempty,bcp47_language_tag"`
	// HTMLExt makes canonical URLs end in ".html".
	HTMLExt bool `yaml:"html_ext"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Posts    string `yaml:"posts"`
	Output   string `yaml:"output"`
	Database string `yaml:"database"`
}

type BuildConfig struct {
	Concurrency int  `yaml:"concurrency" validate:"gte=0,lte=256"`
	Clean       bool `yaml:"clean"`
}

type SitemapConfig struct {
	ChangeFreqs        map[string]string `yaml:"change_freqs" validate:"dive,oneof=always hourly daily weekly monthly yearly never"`
	IncludeCustomPages bool              `yaml:"include_custom_pages"`
	MaxURLsPerFile     int               `yaml:"max_urls_per_file" validate:"gte=0,lte=50000"`
}

type RobotsConfig struct {
	ExtraBots []string `yaml:"extra_bots"`
}

type FeedConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LlmsTxtConfig struct {
	Enabled bool `yaml:"enabled"`
}

type ManifestConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ShareConfig controls per-page SVG share images.
type ShareConfig struct {
	Enabled bool `yaml:"enabled"`
}

type AIConfig struct {
	Provider    string        `yaml:"provider" validate:"oneof=gemini none"`
	Model       string        `yaml:"model"`
	APIKeyEnv   string        `yaml:"api_key_env"`
	TargetWords int           `yaml:"target_words" validate:"gte=50,lte=3000"`
	Temperature float32       `yaml:"temperature" validate:"gte=0,lte=2"`
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0"`
	// CacheDir holds generated copy keyed by its params; empty disables caching.
	CacheDir string `yaml:"cache_dir"`
}
