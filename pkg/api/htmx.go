package api

import (
	"net/http"
	"strings"
)

// htmxRequestHeader is sent by htmx on every request it initiates.
const htmxRequestHeader = "HX-Request"

// isHTMXRequest reports whether the request came from htmx and wants a
// fragment rather than the full document.
func isHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}
