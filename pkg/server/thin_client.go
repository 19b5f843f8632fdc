package server

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	clientdist "github.com/cosmos-docs/livepreview/client/dist"
	"github.com/cosmos-docs/livepreview/pkg/theme"
)

const (
	// ClientPath serves the thin client script.
	ClientPath = "/_cosmos/client.js"
	// StylesheetPath serves the theme stylesheet.
	StylesheetPath = "/_cosmos/theme.css"
)

// asset is an embedded file served with a content ETag.
type asset struct {
	body        []byte
	etag        string
	contentType string
}

func newAsset(body []byte, contentType string) asset {
	sum := sha256.Sum256(body)
	return asset{body: body, etag: `"` + hex.EncodeToString(sum[:]) + `"`, contentType: contentType}
}

var (
	thinClient = newAsset(clientdist.ClientJS, "application/javascript; charset=utf-8")
	stylesheet = newAsset([]byte(theme.Stylesheet()), "text/css; charset=utf-8")
)

func (s *Server) serveThinClient(w http.ResponseWriter, r *http.Request) {
	if len(thinClient.body) == 0 {
		http.Error(w, "Thin client not available", http.StatusInternalServerError)
		return
	}
	s.serveAsset(w, r, thinClient)
}

func (s *Server) serveStylesheet(w http.ResponseWriter, r *http.Request) {
	s.serveAsset(w, r, stylesheet)
}

func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request, a asset) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	h := w.Header()
	h.Set("ETag", a.etag)
	h.Set("Content-Type", a.contentType)
	h.Set("X-Content-Type-Options", "nosniff")
	// Asset URLs are not versioned.
	if s.config.DevMode {
		h.Set("Cache-Control", "no-store")
	} else {
		h.Set("Cache-Control", "public, max-age=0, must-revalidate")
	}

	if matchesETag(r.Header.Get("If-None-Match"), a.etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(a.body)
	}
}

// matchesETag checks an If-None-Match list, accepting "*" and weak
// validators.
func matchesETag(header, etag string) bool {
	if etag == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
