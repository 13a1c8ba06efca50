package config

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/supermodeltools/bizsite/internal/bizsite/ai"
	"github.com/supermodeltools/bizsite/internal/bizsite/export"
	"github.com/supermodeltools/bizsite/internal/bizsite/metrics"
)

// ExportOptions maps the config onto assembler options.
func (c *Config) ExportOptions(logger *slog.Logger, rec metrics.Recorder) export.Options {
	return export.Options{
		BaseURL:                c.Site.BaseURL,
		HTMLExt:                c.Site.HTMLExt,
		Language:               c.Site.Language,
		Concurrency:            c.Build.Concurrency,
		Logger:                 logger,
		Recorder:               rec,
		ChangeFreqs:            c.Sitemap.ChangeFreqs,
		IncludeCustomInSitemap: c.Sitemap.IncludeCustomPages,
		MaxURLsPerSitemap:      c.Sitemap.MaxURLsPerFile,
		RobotsExtraBots:        c.Robots.ExtraBots,
		Feed:                   c.Feed.Enabled,
		LlmsTxt:                c.LlmsTxt.Enabled,
		Manifest:               c.Manifest.Enabled,
		ShareImages:            c.Share.Enabled,
	}
}

// Gemini builds the generator config. The key is supplied by the caller.
func (c AIConfig) Gemini(apiKey string) ai.GeminiConfig {
	return ai.GeminiConfig{APIKey: apiKey, Model: c.Model, Temperature: c.Temperature}
}

// yamlPath turns a validator namespace such as "Config.Sitemap.MaxURLsPerFile"
// into the YAML key path "sitemap.max_urls_per_file".
func yamlPath(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		key := p
		if j := strings.IndexByte(p, '['); j >= 0 {
			key = p[:j]
		}
		parts[i] = toSnake(key) + p[len(key):]
	}
	return strings.Join(parts, ".")
}

func toSnake(s string) string {
	switch s {
	case "BaseURL":
		return "base_url"
	case "HTMLExt":
		return "html_ext"
	case "MaxURLsPerFile":
		return "max_urls_per_file"
	case "APIKeyEnv":
		return "api_key_env"
	case "AI":
		return "ai"
	case "LlmsTxt":
		return "llms_txt"
	}
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
