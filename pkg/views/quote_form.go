package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"wallpro-landing/pkg/content"
	"wallpro-landing/pkg/models"
)

// QuoteFormID is the id of the element htmx swaps on every form post.
const QuoteFormID = "quote-form"

const (
	labelClass = "block text-sm font-medium text-gray-900 mb-2"
	inputClass = "w-full px-4 py-3 rounded-lg border border-gray-200 focus:ring-2 focus:ring-gray-900 focus:border-transparent"
)

// QuoteForm renders the lead form. The commercial block is only rendered for
// commercial customers; otherwise its values ride along as hidden inputs so a
// later switch back to commercial finds them intact.
func QuoteForm(d PageData) g.Node {
	st := d.Form
	errs := d.Errors
	return Div(ID(QuoteFormID), Class("bg-gray-50 rounded-2xl shadow-lg p-8"),
		g.El("form", Method("post"), Action("/quote#"+FormAnchor), Class("space-y-6"),
			g.Attr("hx-post", "/quote"),
			g.Attr("hx-target", "#"+QuoteFormID),
			g.Attr("hx-swap", "outerHTML"),

			// First submit button in tree order, so Enter in a field submits
			// instead of selecting a customer type.
			Button(Type("submit"), Name("action"), Value(string(models.ActionSubmit)),
				Class("sr-only"), g.Attr("tabindex", "-1"), g.Attr("aria-hidden", "true")),
			hidden("customerType", string(st.CustomerType)),
			g.If(st.Submitted, hidden("submitted", "true")),
			g.If(st.Submitted, hidden("submittedEmail", st.ConfirmationEmail())),

			Div(Class("grid grid-cols-2 gap-4 mb-8"),
				customerTypeButton(st.CustomerType, models.CustomerResidential, models.ActionSelectResidential,
					"home", "Residential", "Home services"),
				customerTypeButton(st.CustomerType, models.CustomerCommercial, models.ActionSelectCommercial,
					"building", "Commercial", "Business solutions"),
			),
			fieldError(errs, "customerType"),

			Div(Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
				inputField("Name", "name", "text", st.Name, true, errs),
				inputField("Phone", "phone", "tel", st.Phone, true, errs),
			),

			g.Iff(st.IsCommercial(), func() g.Node {
				return commercialFields(d.Site.Form, st.QuoteRequest, errs)
			}),
			g.If(!st.IsCommercial(), g.Group([]g.Node{
				hidden("facilityType", st.FacilityType),
				hidden("projectSize", st.ProjectSize),
				hidden("urgency", st.Urgency),
			})),

			inputField("Email", "email", "email", st.Email, true, errs),
			inputField("Property Address", "address", "text", st.Address, true, errs),
			Div(
				g.El("label", For("projectDetails"), Class(labelClass), g.Text("Project Details")),
				Textarea(ID("projectDetails"), Name("projectDetails"), Rows("4"), Class(inputClass),
					Placeholder("Please describe your project requirements..."),
					// The parser drops one newline after <textarea>; this keeps a
					// leading newline in the details.
					g.Text("\n"+st.ProjectDetails)),
			),

			g.If(st.Submitted, SuccessPanel(st.ConfirmationEmail())),
			g.If(!st.Submitted, Button(Type("submit"), Name("action"), Value(string(models.ActionSubmit)),
				Class("w-full bg-gray-900 text-white py-4 rounded-lg text-lg font-semibold hover:bg-gray-800 transition-colors duration-300"),
				g.Text("Submit Quote Request"))),

			P(Class("text-sm text-gray-600 text-center"), g.Text(d.Site.Form.Footer)),
		),
	)
}

// SuccessPanel replaces the submit control once a quote request is accepted.
func SuccessPanel(email string) g.Node {
	return Div(ID("quote-success"), Class("p-8 flex flex-col items-center justify-center space-y-6 min-h-[400px]"),
		Div(Class("w-16 h-16 bg-green-50 rounded-full flex items-center justify-center mb-4"),
			icon("check", "w-8 h-8 text-green-500")),
		H3(Class("text-2xl font-medium text-gray-900"), g.Text("Quote Request Received")),
		Div(Class("space-y-2 text-center"),
			P(Class("text-gray-600"), g.Text("We will get back to you shortly")),
			P(Class("text-gray-500 text-sm"), g.Text("Response will be sent to "+email)),
		),
		Button(Type("submit"), Name("action"), Value(string(models.ActionDone)), g.Attr("formnovalidate"),
			Class("mt-8 bg-gray-900 text-white px-8 py-3 rounded-full hover:bg-gray-800 transition-colors duration-300"),
			g.Text("Done")),
	)
}

func commercialFields(form content.Form, q models.QuoteRequest, errs models.FieldErrors) g.Node {
	return g.Group([]g.Node{
		Div(
			g.El("label", For("facilityType"), Class(labelClass), g.Text("Facility Type *")),
			Select(ID("facilityType"), Name("facilityType"), Class(inputClass), Required(), invalid(errs, "facilityType"),
				Option(Value(""), g.Text("Select facility type")),
				g.Map(form.FacilityTypes, func(ft string) g.Node {
					return Option(Value(ft), g.If(ft == q.FacilityType, Selected()), g.Text(ft))
				}),
			),
			fieldError(errs, "facilityType"),
		),
		inputField("Project Size (sq ft)", "projectSize", "number", q.ProjectSize, true, errs,
			Placeholder("Enter approximate square footage"), Min("0"), g.Attr("step", "any")),
		Div(
			g.El("label", For("urgency"), Class(labelClass), g.Text("Urgency *")),
			Select(ID("urgency"), Name("urgency"), Class(inputClass), Required(), invalid(errs, "urgency"),
				Option(Value(""), g.Text("Select urgency level")),
				g.Map(form.Urgencies, func(u content.Option) g.Node {
					return Option(Value(u.Value), g.If(u.Value == q.Urgency, Selected()), g.Text(u.Label))
				}),
			),
			fieldError(errs, "urgency"),
		),
	})
}

func customerTypeButton(current, ct models.CustomerType, action models.Action, iconName, title, subtitle string) g.Node {
	border, iconColor, pressed := "border-gray-200 hover:border-gray-900", "text-gray-600", "false"
	if current == ct {
		border, iconColor, pressed = "border-gray-900 bg-gray-900/5", "text-gray-900", "true"
	}
	return Button(Type("submit"), Name("action"), Value(string(action)), g.Attr("formnovalidate"),
		g.Attr("aria-pressed", pressed),
		Class("p-4 rounded-xl border-2 transition-all duration-300 "+border),
		Div(Class("flex items-center gap-3"),
			icon(iconName, "w-5 h-5 "+iconColor),
			Div(
				H3(Class("text-lg font-semibold mb-1 text-gray-900"), g.Text(title)),
				P(Class("text-sm text-gray-600"), g.Text(subtitle)),
			),
		),
	)
}

func inputField(label, name, inputType, value string, required bool, errs models.FieldErrors, extra ...g.Node) g.Node {
	text := label
	if required {
		text += " *"
	}
	return Div(
		g.El("label", For(name), Class(labelClass), g.Text(text)),
		Input(ID(name), Type(inputType), Name(name), Value(value), Class(inputClass),
			g.If(required, Required()), invalid(errs, name), g.Group(extra)),
		fieldError(errs, name),
	)
}

func hidden(name, value string) g.Node {
	return Input(Type("hidden"), Name(name), Value(value))
}

func invalid(errs models.FieldErrors, name string) g.Node {
	if _, ok := errs[name]; !ok {
		return nil
	}
	return g.Attr("aria-invalid", "true")
}

func fieldError(errs models.FieldErrors, name string) g.Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return P(Class("mt-2 text-sm text-red-600"), g.Attr("data-error-for", name), g.Text(msg))
}
