package theme

import (
	"net/http"
	"strings"
)

const (
	// HintHeader is the client hint carrying the user agent's color scheme.
	HintHeader = "Sec-CH-Prefers-Color-Scheme"

	// SchemeCookie is set by the thin client from matchMedia on first load.
	SchemeCookie = "prefers-color-scheme"
)

// AdvertiseHint asks the browser to send HintHeader on later requests.
func AdvertiseHint(h http.Header) {
	h.Add("Accept-CH", HintHeader)
	h.Add("Vary", HintHeader)
	h.Add("Critical-CH", HintHeader)
}

// ModeFromRequest reads the ambient color-scheme preference once. The
// client hint wins over the cookie; fallback is used when neither is
// present or recognised. The result is a snapshot: later changes of the
// user's system scheme are only seen by a new request.
func ModeFromRequest(r *http.Request, fallback Mode) Mode {
	if r == nil {
		return fallback
	}
	if v := strings.Trim(r.Header.Get(HintHeader), `" `); v != "" {
		if m, err := ParseMode(v); err == nil {
			return m
		}
	}
	if c, err := r.Cookie(SchemeCookie); err == nil {
		if m, err := ParseMode(c.Value); err == nil {
			return m
		}
	}
	return fallback
}
