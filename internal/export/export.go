package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cosmos-docs/livepreview/pkg/preview"
	"github.com/cosmos-docs/livepreview/pkg/previews"
	"github.com/cosmos-docs/livepreview/pkg/server"
	"github.com/cosmos-docs/livepreview/pkg/theme"
)

// Options configures an Exporter.
type Options struct {
	// Mode is the color scheme of previews that follow the reader's scheme.
	// Default: theme.Light.
	Mode theme.Mode

	SiteTitle string
	Lang      string
	Groups    []server.IndexGroup

	// Concurrency bounds the number of previews rendered at once.
	// Default: 4.
	Concurrency int

	Logger *slog.Logger
}

// Manifest describes an export.
type Manifest struct {
	Generated time.Time       `json:"generated"`
	Theme     theme.Mode      `json:"theme"`
	Previews  []ManifestEntry `json:"previews"`
	Files     []string        `json:"files"`
}

// ManifestEntry describes one exported preview.
type ManifestEntry struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Page        string            `json:"page"`
	Embed       string            `json:"embed"`
	Code        string            `json:"code"`
	Default     string            `json:"defaultCode"`
	Controls    []ManifestControl `json:"controls"`
}

// ManifestControl describes one control of a preview.
type ManifestControl struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Default string   `json:"default"`
	Options []string `json:"options"`
}

// Exporter renders previews and hands the files to a Publisher.
type Exporter struct {
	publisher Publisher
	opts      Options
	logger    *slog.Logger

	mu    sync.Mutex
	files []string
}

// New creates an Exporter writing through p.
func New(p Publisher, opts Options) *Exporter {
	if opts.Mode == "" {
		opts.Mode = theme.Light
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		publisher: p,
		opts:      opts,
		logger:    logger.With("component", "export"),
	}
}

func (e *Exporter) pageOptions() server.PageOptions {
	return server.PageOptions{
		SiteTitle:    e.opts.SiteTitle,
		Lang:         e.opts.Lang,
		InlineStyles: true,
		Groups:       e.opts.Groups,
		PreviewURL:   func(name string) string { return name + "/" },
	}
}

// Export renders defs and publishes every file. The manifest is written
// last, so a published manifest means a complete export.
func (e *Exporter) Export(ctx context.Context, defs []previews.Definition) (*Manifest, error) {
	e.mu.Lock()
	e.files = nil
	e.mu.Unlock()

	entries := make([]ManifestEntry, len(defs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)
	for i, def := range defs {
		g.Go(func() error {
			entry, err := e.exportPreview(gctx, def)
			if err != nil {
				return fmt.Errorf("export %s: %w", def.Name, err)
			}
			entries[i] = entry
			return nil
		})
	}
	g.Go(func() error {
		var buf bytes.Buffer
		if err := server.WriteIndex(&buf, defs, e.opts.Mode, e.pageOptions()); err != nil {
			return fmt.Errorf("export index: %w", err)
		}
		return e.publish(gctx, "index.html", buf.Bytes())
	})
	g.Go(func() error {
		return e.publish(gctx, "theme.css", []byte(theme.Stylesheet()))
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	files := append([]string(nil), e.files...)
	e.mu.Unlock()
	files = append(files, "manifest.json")
	sort.Strings(files)

	manifest := &Manifest{
		Generated: time.Now().UTC(),
		Theme:     e.opts.Mode,
		Previews:  entries,
		Files:     files,
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := e.publish(ctx, "manifest.json", data); err != nil {
		return nil, err
	}

	e.logger.Info("export complete", "previews", len(entries), "files", len(files))
	return manifest, nil
}

func (e *Exporter) exportPreview(ctx context.Context, def previews.Definition) (ManifestEntry, error) {
	entry := ManifestEntry{
		Name:        def.Name,
		Title:       def.Title,
		Description: def.Description,
		Page:        def.Name + "/index.html",
		Embed:       def.Name + "/embed.html",
		Code:        def.Name + "/code.txt",
		Controls:    manifestControls(def.Controls),
	}

	var page bytes.Buffer
	if err := server.WritePage(&page, def, e.opts.Mode, e.pageOptions()); err != nil {
		return entry, err
	}
	var embed bytes.Buffer
	if err := server.WriteEmbed(&embed, def, e.opts.Mode, e.pageOptions()); err != nil {
		return entry, err
	}
	code, err := server.Code(def, nil)
	if err != nil {
		return entry, err
	}
	entry.Default = code

	files := []struct {
		key  string
		body []byte
	}{
		{entry.Page, page.Bytes()},
		{entry.Embed, embed.Bytes()},
		{entry.Code, []byte(code)},
	}
	for _, f := range files {
		if err := e.publish(ctx, f.key, f.body); err != nil {
			return entry, err
		}
	}
	return entry, nil
}

func (e *Exporter) publish(ctx context.Context, key string, body []byte) error {
	if err := e.publisher.Publish(ctx, key, body, ContentType(key, body)); err != nil {
		return err
	}
	e.logger.Debug("published", "key", key, "location", e.publisher.Location(key), "bytes", len(body))

	e.mu.Lock()
	e.files = append(e.files, key)
	e.mu.Unlock()
	return nil
}

func manifestControls(controls []preview.Control) []ManifestControl {
	out := make([]ManifestControl, 0, len(controls))
	sel := preview.DefaultSelection(controls)
	for _, c := range controls {
		mc := ManifestControl{Name: c.Name, Label: c.Label, Default: sel.Get(c.Name)}
		for _, o := range c.Options {
			mc.Options = append(mc.Options, o.Value)
		}
		out = append(out, mc)
	}
	return out
}
