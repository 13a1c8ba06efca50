package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/supermodeltools/bizsite/internal/bizsite/ai"
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Write marketing copy for a page with AI, falling back to template copy",
	Long: `Generates HTML copy (h2, h3, p, ul, ol, li only) for one page type. The API key
is read from the environment variable named by ai.api_key_env. Without a key, or
when the model fails, deterministic template copy is printed instead.`,
	RunE: runCopy,
}

var (
	copySource  siteSource
	copyParams  ai.ContentParams
	copyNoCache bool
)

func init() {
	copyCmd.Flags().StringVarP(&copySource.input, "input", "i", "", "Website content model to take the business name and industry from")
	copyCmd.Flags().StringVar(&copySource.id, "id", "", "Use a website saved in the database")
	copyCmd.Flags().StringVar(&copyParams.BusinessName, "business", "", "Business name (overrides the website)")
	copyCmd.Flags().StringVar(&copyParams.Industry, "industry", "", "Industry (overrides the website)")
	copyCmd.Flags().StringVarP(&copyParams.PageType, "page-type", "t", "home", "Page type: home, about, services, service-single, contact, location, blog")
	copyCmd.Flags().StringVar(&copyParams.ServiceName, "service", "", "Service name for service pages")
	copyCmd.Flags().StringVar(&copyParams.LocationCity, "city", "", "City for location pages")
	copyCmd.Flags().StringVar(&copyParams.LocationState, "state", "", "State for location pages")
	copyCmd.Flags().IntVar(&copyParams.TargetWords, "words", 0, "Target word count (default ai.target_words)")
	copyCmd.Flags().BoolVar(&copyNoCache, "no-cache", false, "Always call the model")
	copyCmd.MarkFlagsMutuallyExclusive("input", "id")

	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, _ []string) error {
	p := copyParams
	if p.BusinessName == "" || p.Industry == "" {
		site, err := copySource.load(cmd.Context())
		if err != nil {
			return err
		}
		if p.BusinessName == "" {
			p.BusinessName = site.BusinessName
		}
		if p.Industry == "" {
			p.Industry = site.Industry
		}
		if p.LocationCity == "" && (p.PageType == "location" || p.PageType == "locations") {
			p.LocationCity, p.LocationState = site.City(), site.State()
		}
	}
	if p.TargetWords == 0 {
		p.TargetWords = cfg.AI.TargetWords
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.AI.Timeout)
	defer cancel()

	gen, closeGen := newGenerator(ctx)
	defer closeGen()

	fmt.Fprintln(cmd.OutOrStdout(), ai.GenerateOrFallback(ctx, gen, p, logger, nil))
	return nil
}

// newGenerator returns nil when AI is disabled or no key is set, which
// makes GenerateOrFallback use template copy.
func newGenerator(ctx context.Context) (ai.Generator, func()) {
	noop := func() {}
	if cfg.AI.Provider == "none" {
		return nil, noop
	}
	key := os.Getenv(cfg.AI.APIKeyEnv)
	if key == "" {
		logger.Warn("No AI API key set, using template copy", "env", cfg.AI.APIKeyEnv)
		return nil, noop
	}
	gemini, err := ai.NewGeminiGenerator(ctx, cfg.AI.Gemini(key))
	if err != nil {
		logger.Warn("AI client unavailable, using template copy", "error", err)
		return nil, noop
	}
	closeFn := func() { _ = gemini.Close() }
	if copyNoCache || cfg.AI.CacheDir == "" {
		return gemini, closeFn
	}
	return &ai.CachedGenerator{Inner: gemini, Dir: cfg.AI.CacheDir, Model: cfg.AI.Model, Logger: logger}, closeFn
}
