package httpserve

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/jackfish212/dirserve"
	"github.com/jackfish212/dirserve/listing"
	"github.com/jackfish212/dirserve/types"
)

const fallbackContentType = "text/plain"

func (s *Server) dispatch(c *gin.Context) {
	ctx := c.Request.Context()
	reqPath := c.Request.URL.Path
	clean := dirserve.CleanPath(reqPath)

	meta, err := s.provider.Stat(ctx, clean)
	if err != nil {
		s.logger.Debug("httpserve: stat failed", "path", clean, "error", err)
		c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	switch meta.Kind {
	case types.KindRegular:
		if reqPath != clean {
			redirect(c, clean)
			return
		}
		s.serveFile(c, clean, meta)
	case types.KindDir:
		dir := dirserve.DirPath(clean)
		if reqPath != dir {
			redirect(c, dir)
			return
		}
		if s.serveIndex(c, dir) {
			return
		}
		s.renderer.ServeListing(c.Writer, c.Request, dir)
	default:
		s.logger.Warn("httpserve: refusing to serve special file", "path", clean, "kind", meta.Kind.String())
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// redirect sends the client to the canonical form of its path, keeping the
// query string.
func redirect(c *gin.Context, target string) {
	u := url.URL{Path: target, RawQuery: c.Request.URL.RawQuery}
	c.Redirect(http.StatusMovedPermanently, u.String())
}

// serveIndex serves the configured index file of dir when one exists.
func (s *Server) serveIndex(c *gin.Context, dir string) bool {
	if s.cfg.Index == "" {
		return false
	}
	p := path.Join(dir, s.cfg.Index)
	meta, err := s.provider.Stat(c.Request.Context(), p)
	if err != nil || meta.Kind != types.KindRegular {
		return false
	}
	s.serveFile(c, p, meta)
	return true
}

func (s *Server) serveFile(c *gin.Context, p string, meta *types.Metadata) {
	rd, ok := s.provider.(types.Readable)
	if !ok {
		s.logger.Error("httpserve: provider cannot open files", "path", p, "error", types.ErrNotSupported)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	f, err := rd.Open(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
			return
		}
		s.logger.Error("httpserve: open failed", "path", p, "error", err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	defer f.Close()

	ctype, err := contentType(p, f)
	if err != nil {
		s.logger.Error("httpserve: content sniffing failed", "path", p, "error", err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.Header("Content-Type", ctype)
	http.ServeContent(c.Writer, c.Request, path.Base(p), meta.Modified, f)
}

// contentType prefers the extension table and falls back to sniffing the
// leading bytes. Content that sniffs as nothing in particular is sent as
// plain text. f is rewound before returning.
func contentType(name string, f io.ReadSeeker) (string, error) {
	if t, ok := listing.TypeByName(path.Base(name)); ok {
		return t, nil
	}
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	if mt.Is("application/octet-stream") {
		return fallbackContentType, nil
	}
	return mt.String(), nil
}
