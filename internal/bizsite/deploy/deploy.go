// Package deploy publishes an exported file set.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/supermodeltools/bizsite/internal/bizsite/archive"
	"github.com/supermodeltools/bizsite/internal/bizsite/export"
)

// Result reports what a deployment wrote.
type Result struct {
	Location string
	Files    int
	Bytes    int64
}

// Deployer publishes files somewhere.
type Deployer interface {
	Deploy(ctx context.Context, files []export.File) (Result, error)
}

// DirDeployer writes files under a local directory, the layout a static
// host serves.
type DirDeployer struct {
	Dir string
	// Clean removes the directory before writing.
	Clean  bool
	Logger *slog.Logger
}

// Deploy writes every file. It stops at the first failure and honors
// context cancellation between files.
func (d *DirDeployer) Deploy(ctx context.Context, files []export.File) (Result, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if d.Dir == "" {
		return Result{}, errors.New("deploy: no output directory")
	}
	if d.Clean {
		if err := os.RemoveAll(d.Dir); err != nil {
			return Result{}, fmt.Errorf("cleaning output dir: %w", err)
		}
	}
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating output dir: %w", err)
	}

	res := Result{Location: d.Dir}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := archive.ValidatePath(f.Path); err != nil {
			return res, fmt.Errorf("deploy: %w", err)
		}
		target := filepath.Join(d.Dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return res, fmt.Errorf("creating dir for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(target, []byte(f.Content), 0644); err != nil {
			return res, fmt.Errorf("writing %s: %w", f.Path, err)
		}
		res.Files++
		res.Bytes += int64(len(f.Content))
	}
	logger.Info("Deployed site", "dir", d.Dir, "files", res.Files, "bytes", res.Bytes)
	return res, nil
}

// DeployOrWarn runs d and logs a failure at Warn instead of returning it.
// The returned bool reports success.
func DeployOrWarn(ctx context.Context, d Deployer, files []export.File, logger *slog.Logger) (Result, bool) {
	if logger == nil {
		logger = slog.Default()
	}
	res, err := d.Deploy(ctx, files)
	if err != nil {
		logger.Warn("Deploy failed", "error", err)
		return res, false
	}
	return res, true
}
