package views

import (
	"net/http"

	g "maragu.dev/gomponents"
)

var htmlContentType = []string{"text/html; charset=utf-8"}

// Renderer adapts a gomponents node to gin's render.Render, so handlers can call
// c.Render(status, views.Renderer{Node: ...}).
type Renderer struct {
	Node g.Node
}

func (r Renderer) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.Node.Render(w)
}

func (r Renderer) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}
