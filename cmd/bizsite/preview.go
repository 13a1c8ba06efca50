package main

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/supermodeltools/bizsite/internal/bizsite/export"
	"github.com/supermodeltools/bizsite/internal/bizsite/metrics"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the exported site from memory",
	Long: `Exports the website and serves it over HTTP without writing files. With --editable
every page carries in-page edit affordances. With --watch the site is re-exported
when the content model changes. Prometheus metrics are served at /metrics.`,
	RunE: runPreview,
}

var (
	previewSource   siteSource
	previewAddr     string
	previewEditable bool
	previewWatch    bool
)

func init() {
	previewCmd.Flags().StringVarP(&previewSource.input, "input", "i", "", "Website content model (JSON or YAML)")
	previewCmd.Flags().StringVar(&previewSource.id, "id", "", "Preview a website saved in the database")
	previewCmd.Flags().StringVar(&previewAddr, "addr", "127.0.0.1:8080", "Listen address")
	previewCmd.Flags().BoolVar(&previewEditable, "editable", false, "Add in-page edit affordances")
	previewCmd.Flags().BoolVarP(&previewWatch, "watch", "w", false, "Re-export when the input file changes")
	previewCmd.MarkFlagsMutuallyExclusive("input", "id")
	previewCmd.MarkFlagsMutuallyExclusive("watch", "id")

	rootCmd.AddCommand(previewCmd)
}

// siteHandler serves an in-memory file set. Extensionless paths resolve
// to "<path>.html" so canonical URLs work.
type siteHandler struct {
	mu    sync.RWMutex
	files map[string]string
}

func newSiteHandler(files []export.File) *siteHandler {
	h := &siteHandler{}
	h.Swap(files)
	return h
}

// Swap replaces the served files.
func (h *siteHandler) Swap(files []export.File) {
	m := make(map[string]string, len(files))
	for _, f := range files {
		m[f.Path] = f.Content
	}
	h.mu.Lock()
	h.files = m
	h.mu.Unlock()
}

func (h *siteHandler) lookup(urlPath string) (string, string, bool) {
	p := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	candidates := []string{p, p + ".html", path.Join(p, "index.html")}
	if p == "" {
		candidates = []string{"index.html"}
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range candidates {
		if content, ok := h.files[c]; ok {
			return c, content, true
		}
	}
	return "", "", false
}

func (h *siteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name, content, ok := h.lookup(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctype := mime.TypeByExtension(filepath.Ext(name))
	if ctype == "" {
		ctype = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Cache-Control", "no-store")
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(content))
}

func previewFiles(ctx context.Context, rec metrics.Recorder) ([]export.File, error) {
	files, err := previewSource.export(ctx, rec)
	if err != nil {
		return nil, err
	}
	if previewEditable {
		return export.MakeEditable(files)
	}
	return files, nil
}

func runPreview(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	reg := metrics.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)

	files, err := previewFiles(ctx, rec)
	if err != nil {
		return err
	}
	site := newSiteHandler(files)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	mux.Handle("/", site)

	if previewWatch {
		if err := watchInput(ctx, previewSource.inputPath(), func() {
			files, err := previewFiles(ctx, rec)
			if err != nil {
				logger.Error("Rebuild failed", "error", err)
				return
			}
			site.Swap(files)
			logger.Info("Site rebuilt", "files", len(files))
		}); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              previewAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Serving preview", "addr", "http://"+previewAddr, "files", len(files), "editable", previewEditable)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

const rebuildDebounce = 300 * time.Millisecond

// watchInput calls rebuild after changes to the input file or the posts
// directory settle. It watches directories so editors that replace files
// on save are still seen.
func watchInput(ctx context.Context, input string, rebuild func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dirs := []string{filepath.Dir(input)}
	if cfg.Paths.Posts != "" {
		dirs = append(dirs, cfg.Paths.Posts)
	}
	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			watcher.Close()
			return err
		}
	}

	inputAbs, _ := filepath.Abs(input)
	postsAbs, _ := filepath.Abs(cfg.Paths.Posts)
	relevant := func(name string) bool {
		abs, _ := filepath.Abs(name)
		if abs == inputAbs {
			return true
		}
		return cfg.Paths.Posts != "" && filepath.Dir(abs) == postsAbs && strings.HasSuffix(abs, ".md")
	}

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !relevant(event.Name) || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)) {
					continue
				}
				logger.Debug("Change detected", "file", event.Name, "op", event.Op.String())
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(rebuildDebounce, rebuild)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error", "error", err)
			}
		}
	}()
	return nil
}
