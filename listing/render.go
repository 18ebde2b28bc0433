package listing

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/jackfish212/dirserve/types"
)

// DefaultConcurrency bounds the per-entry stat and readlink calls in flight
// for one listing.
const DefaultConcurrency = 8

// Renderer turns a directory of a Provider into an HTML listing page.
// A Renderer holds no per-request state and is safe for concurrent use.
type Renderer struct {
	provider    types.Provider
	footer      types.ProjectInfo
	stylesheet  string
	concurrency int
	logger      *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFooter sets the project information shown below the table.
func WithFooter(info types.ProjectInfo) Option {
	return func(r *Renderer) { r.footer = info }
}

// WithStylesheet replaces the embedded stylesheet. An empty string yields a
// page without styling.
func WithStylesheet(css string) Option {
	return func(r *Renderer) { r.stylesheet = css }
}

func WithConcurrency(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRenderer creates a Renderer over p.
func NewRenderer(p types.Provider, opts ...Option) *Renderer {
	r := &Renderer{
		provider:    p,
		stylesheet:  DefaultStylesheet,
		concurrency: DefaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Entries enumerates and classifies the directory at urlPath. Rows keep the
// enumeration order no matter in which order their stats complete. A
// directory that cannot be enumerated yields no entries.
func (r *Renderer) Entries(ctx context.Context, urlPath string) []types.ClassifiedEntry {
	entries, err := r.provider.ReadDir(ctx, urlPath)
	if err != nil {
		r.logger.Debug("listing: enumeration failed", "path", urlPath, "error", err)
		return nil
	}

	out := make([]types.ClassifiedEntry, len(entries))
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, e := range entries {
		g.Go(func() error {
			out[i] = r.classify(ctx, urlPath, e)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (r *Renderer) classify(ctx context.Context, urlPath string, e types.DirEntry) types.ClassifiedEntry {
	entryPath := path.Join(urlPath, e.Name)
	meta := FetchMetadata(ctx, r.provider, entryPath, r.logger)

	var link LinkTarget
	if e.Kind == types.KindSymlink {
		link = readLinkTarget(ctx, r.provider, entryPath, meta, r.logger)
	}
	ce := Classify(urlPath, e, link)
	ce.Meta = meta
	return ce
}

// Render produces the full listing document for urlPath, which names a
// directory and ends in "/". Filesystem problems never surface as errors;
// only a template failure does.
func (r *Renderer) Render(ctx context.Context, urlPath string) ([]byte, error) {
	entries := r.Entries(ctx, urlPath)

	data := pageData{
		Path:       urlPath,
		Title:      PathTitle(urlPath),
		Stylesheet: template.CSS(r.stylesheet),
		Rows:       make([]row, len(entries)),
		Footer:     newFooter(r.footer),
	}
	if urlPath != "/" {
		data.ParentHref = hrefPath(urlPath + "..")
	}
	for i, ce := range entries {
		data.Rows[i] = newRow(ce)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("listing: render %s: %w", urlPath, err)
	}
	return buf.Bytes(), nil
}

// ServeListing writes the listing of urlPath as the complete response.
func (r *Renderer) ServeListing(w http.ResponseWriter, req *http.Request, urlPath string) {
	body, err := r.Render(req.Context(), urlPath)
	if err != nil {
		r.logger.Error("listing: render failed", "path", urlPath, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h := w.Header()
	SetCommonHeaders(h)
	h.Set("Content-Type", "text/html")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if req.Method != http.MethodHead {
		_, _ = w.Write(body)
	}
}

// ServeHTTP lists the directory named by the request path.
func (r *Renderer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.ServeListing(w, req, req.URL.Path)
}
