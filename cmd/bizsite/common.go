package main

import (
	"context"
	"fmt"

	"github.com/supermodeltools/bizsite/internal/bizsite/export"
	"github.com/supermodeltools/bizsite/internal/bizsite/loader"
	"github.com/supermodeltools/bizsite/internal/bizsite/metrics"
	"github.com/supermodeltools/bizsite/internal/bizsite/model"
	"github.com/supermodeltools/bizsite/internal/bizsite/store"
)

// siteSource selects where a command reads its website from.
type siteSource struct {
	input string
	id    string
}

func (s siteSource) inputPath() string {
	if s.input != "" {
		return s.input
	}
	return cfg.Paths.Input
}

func (s siteSource) load(ctx context.Context) (*model.Website, error) {
	if s.id != "" {
		st, err := store.NewSQLiteStore(cfg.Paths.Database)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		site, err := st.Get(ctx, s.id)
		if err != nil {
			return nil, fmt.Errorf("loading website %s: %w", s.id, err)
		}
		return site, nil
	}
	return loader.New(s.inputPath(), loader.Options{PostsDir: cfg.Paths.Posts, Logger: logger}).Load()
}

func exportSite(ctx context.Context, site *model.Website, rec metrics.Recorder) ([]export.File, error) {
	asm := export.New(cfg.ExportOptions(logger, rec), export.Renderers{})
	return asm.Export(ctx, site)
}

func (s siteSource) export(ctx context.Context, rec metrics.Recorder) ([]export.File, error) {
	site, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return exportSite(ctx, site, rec)
}
