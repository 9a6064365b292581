package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"wallpro-landing/pkg/content"
)

// scrollToForm runs alongside the tel: navigation of a call control.
const scrollToForm = `var f=document.querySelector('#` + FormAnchor + `');if(f){f.scrollIntoView({behavior:'smooth',inline:'nearest'})}`

// CallButton dials the business and scrolls the quote form into view. It
// carries no state, so it renders the same regardless of the form.
func CallButton(site *content.Site, class string, children ...g.Node) g.Node {
	return A(
		Href(site.Phone.URI),
		Class("group inline-flex items-center justify-center gap-3 "+class),
		g.Attr("onclick", scrollToForm),
		g.Attr("data-call", "phone"),
		icon("phone", "w-6 h-6"),
		g.Group(children),
		icon("arrow", "w-5 h-5 group-hover:translate-x-1 transition-transform"),
	)
}

func navigation(site *content.Site) g.Node {
	return Header(Class("absolute inset-x-0 top-0 z-10"),
		Nav(Class("max-w-7xl mx-auto px-4 py-4 flex items-center justify-between"),
			A(Href("/"), Class("text-lg font-bold text-gray-900"), g.Text(site.Brand)),
			Div(Class("flex items-center gap-6"),
				A(Href("#"+FormAnchor), Class("text-gray-600 hover:text-gray-900"), g.Text(site.Form.Heading)),
				A(Href(site.Phone.URI), Class("font-medium text-gray-900"), g.Text(site.Phone.Display)),
			),
		),
	)
}

func sectionHeading(s content.Section, size, margin string) g.Node {
	return Div(Class("text-center "+margin),
		H2(Class(size+" font-bold mb-4 text-gray-900"), g.Text(s.Heading)),
		P(Class("text-lg text-gray-600"), g.Text(s.Lead)),
	)
}

func photo(img content.Image, height string) g.Node {
	return Div(Class("relative w-full "+height),
		Img(Src(img.Src), Alt(img.Alt), Class("absolute inset-0 h-full w-full object-cover rounded-xl"),
			g.Attr("sizes", "(max-width: 768px) 100vw, 50vw")),
		Div(Class("absolute inset-0 rounded-xl ring-1 ring-black/10")),
	)
}

func checkList(items []string, textClass string) g.Node {
	return g.Map(items, func(item string) g.Node {
		return Li(Class("flex items-center gap-3"),
			icon("circlecheck", "w-5 h-5 text-gray-900"),
			g.El("span", Class(textClass), g.Text(item)),
		)
	})
}

func hero(site *content.Site) g.Node {
	h := site.Hero
	return Section(Class("relative pt-20 bg-gradient-to-b from-gray-50 to-white"),
		Div(Class("max-w-7xl mx-auto px-4 relative"),
			Div(Class("flex flex-col md:flex-row gap-12 items-center py-16"),
				Div(Class("w-full md:w-1/2"),
					Div(Class("inline-block bg-gray-900 text-white px-4 py-1 rounded-full text-sm font-medium mb-6"), g.Text(h.Badge)),
					H1(Class("text-5xl md:text-7xl font-bold mb-6 text-gray-900"),
						g.Text(h.Heading),
						g.El("span", Class("block text-gray-900"), g.Text(h.Subheading)),
					),
					P(Class("text-xl text-gray-600 mb-8 leading-relaxed"), g.Text(h.Lead)),
					CallButton(site, "bg-gray-900 text-white px-8 py-4 rounded-full text-lg font-medium hover:bg-gray-800",
						g.El("span", g.Text(h.CTA))),
				),
				Div(Class("w-full md:w-1/2"), photo(h.Image, "h-96")),
			),
		),
	)
}

func features(site *content.Site) g.Node {
	return Section(Class("py-20 bg-white"),
		Div(Class("max-w-7xl mx-auto px-4"),
			sectionHeading(site.Features.Section, "text-4xl", "mb-16"),
			Div(Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Map(site.Features.Items, func(f content.Feature) g.Node {
					return Div(Class("bg-gray-50 p-6 rounded-xl hover:shadow-lg transition-shadow duration-300"),
						Div(Class("text-gray-900 mb-4"), icon(f.Icon, "w-6 h-6")),
						H3(Class("text-xl font-semibold mb-2"), g.Text(f.Title)),
						P(Class("text-gray-600"), g.Text(f.Description)),
					)
				}),
			),
		),
	)
}

func services(site *content.Site) g.Node {
	return Section(Class("py-20 bg-gray-50"),
		Div(Class("max-w-7xl mx-auto px-4"),
			sectionHeading(site.Services.Section, "text-4xl", "mb-16"),
			Div(Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
				g.Map(site.Services.Items, func(s content.ServiceType) g.Node {
					return Div(Class("bg-white p-8 rounded-xl hover:shadow-lg transition-shadow duration-300"),
						H3(Class("text-2xl font-bold mb-4 text-gray-900"), g.Text(s.Title)),
						Ul(Class("space-y-3"), checkList(s.Points, "text-gray-600")),
					)
				}),
			),
		),
	)
}

func results(site *content.Site) g.Node {
	r := site.Results
	return Section(Class("py-20 bg-white"),
		Div(Class("max-w-7xl mx-auto px-4"),
			Div(Class("grid grid-cols-1 md:grid-cols-2 gap-12 items-center"),
				Div(
					H2(Class("text-4xl font-bold mb-6 text-gray-900"), g.Text(r.Heading)),
					P(Class("text-lg text-gray-600 mb-6 leading-relaxed"), g.Text(r.Lead)),
					Ul(Class("space-y-4"), checkList(r.Points, "text-gray-600 font-medium")),
				),
				photo(r.Image, "h-[500px]"),
			),
		),
	)
}

func faq(site *content.Site) g.Node {
	return Section(Class("py-20 bg-gray-50"),
		Div(Class("max-w-4xl mx-auto px-4"),
			sectionHeading(site.FAQ.Section, "text-4xl", "mb-16"),
			Div(Class("space-y-6"),
				g.Map(site.FAQ.Items, func(q content.Question) g.Node {
					return Div(Class("bg-white p-6 rounded-xl"),
						H3(Class("text-xl font-semibold mb-3 text-gray-900"), g.Text(q.Question)),
						P(Class("text-gray-600"), g.Text(q.Answer)),
					)
				}),
			),
		),
	)
}

func closing(site *content.Site) g.Node {
	return Section(Class("py-16 bg-gray-900"),
		Div(Class("max-w-4xl mx-auto text-center px-4"),
			H2(Class("text-3xl md:text-4xl font-bold mb-6 text-white"), g.Text(site.Closing.Heading)),
			P(Class("text-xl mb-8 text-gray-300"), g.Text(site.Closing.Lead)),
			CallButton(site, "bg-white text-gray-900 px-8 py-4 rounded-full text-xl font-bold hover:bg-gray-100",
				g.El("span", g.Textf("Call %s", site.Phone.Display))),
		),
	)
}
