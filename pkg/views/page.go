// Package views renders the landing page with gomponents.
package views

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"wallpro-landing/pkg/content"
	"wallpro-landing/pkg/models"
)

// FormAnchor is the element id the call-to-action controls scroll to.
const FormAnchor = "contactform"

// PageData is everything the page needs for one render.
type PageData struct {
	Site   *content.Site
	Form   models.FormState
	Errors models.FieldErrors
}

// Page renders the full landing page document.
func Page(d PageData) g.Node {
	site := d.Site
	return c.HTML5(c.HTML5Props{
		Title:       site.SEO.Title,
		Description: site.SEO.Description,
		Language:    "en",
		Head: []g.Node{
			Meta(Name("keywords"), Content(site.SEO.Keywords)),
			Meta(g.Attr("property", "og:title"), Content(site.SEO.Title)),
			Meta(g.Attr("property", "og:description"), Content(site.SEO.Description)),
			Meta(g.Attr("property", "og:type"), Content("website")),
			Meta(g.Attr("property", "og:url"), Content(site.SEO.URL)),
			Link(Rel("canonical"), Href(site.SEO.URL)),
			Link(Rel("stylesheet"), Href("/assets/site.css")),
			Script(Src("https://unpkg.com/htmx.org@1.9.12"), Defer()),
		},
		Body: []g.Node{
			Class("min-h-screen bg-white"),
			navigation(site),
			Main(
				hero(site),
				features(site),
				services(site),
				Section(ID(FormAnchor), Class("py-20 bg-white"),
					Div(Class("max-w-3xl mx-auto px-4"),
						sectionHeading(site.Form.Section, "text-3xl md:text-4xl", "mb-12"),
						QuoteForm(d),
					),
				),
				results(site),
				faq(site),
				closing(site),
			),
		},
	})
}
