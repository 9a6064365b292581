package models

import "time"

// CustomerType is the residential/commercial selector that decides which
// quote fields are mandatory.
type CustomerType string

const (
	CustomerUnset       CustomerType = ""
	CustomerResidential CustomerType = "residential"
	CustomerCommercial  CustomerType = "commercial"
)

// Action names the interaction carried by a quote form post.
type Action string

const (
	ActionSelectResidential Action = "customer-residential"
	ActionSelectCommercial  Action = "customer-commercial"
	ActionSubmit            Action = "submit"
	ActionDone              Action = "done"
)

// ParseAction maps the posted action value to an Action. Anything unknown,
// including a missing value from a script-driven post, is a submit.
func ParseAction(v string) Action {
	switch a := Action(v); a {
	case ActionSelectResidential, ActionSelectCommercial, ActionDone:
		return a
	default:
		return ActionSubmit
	}
}

// QuoteRequest represents the data structure coming from the quote form.
// The validate tags describe a commercial request; callers exclude
// CommercialFields when the customer is not commercial.
type QuoteRequest struct {
	CustomerType   CustomerType `form:"customerType" json:"customerType" validate:"omitempty,oneof=residential commercial"`
	FacilityType   string       `form:"facilityType" json:"facilityType" validate:"required,facility"`
	ProjectSize    string       `form:"projectSize" json:"projectSize" validate:"required,htmlnumber"`
	Urgency        string       `form:"urgency" json:"urgency" validate:"required,urgency"`
	Name           string       `form:"name" json:"name" validate:"required"`
	Phone          string       `form:"phone" json:"phone" validate:"required"`
	Email          string       `form:"email" json:"email" validate:"required,htmlemail"`
	Address        string       `form:"address" json:"address" validate:"required"`
	ProjectDetails string       `form:"projectDetails" json:"projectDetails"`
}

// CommercialFields are the QuoteRequest fields that only apply to commercial
// customers.
var CommercialFields = []string{"FacilityType", "ProjectSize", "Urgency"}

// IsCommercial reports whether the commercial-only fields are in play.
func (q QuoteRequest) IsCommercial() bool {
	return q.CustomerType == CustomerCommercial
}

// FormState is the lead form as the visitor sees it. It round-trips through
// the rendered page on every post.
type FormState struct {
	QuoteRequest
	Submitted bool `form:"submitted"`
	// SubmittedEmail is the email captured by the last accepted submit.
	// Edits to Email while the success panel is up do not touch it.
	SubmittedEmail string `form:"submittedEmail"`
}

// SelectCustomerType overwrites the customer type. Values entered for the
// other type are kept.
func (s *FormState) SelectCustomerType(t CustomerType) {
	s.CustomerType = t
}

// MarkSubmitted swaps the submit control for the success panel.
func (s *FormState) MarkSubmitted() {
	s.Submitted = true
	s.SubmittedEmail = s.Email
}

// Dismiss returns the form to its editable state without clearing anything.
func (s *FormState) Dismiss() {
	s.Submitted = false
	s.SubmittedEmail = ""
}

// ConfirmationEmail is the address shown on the success panel.
func (s FormState) ConfirmationEmail() string {
	if s.SubmittedEmail != "" {
		return s.SubmittedEmail
	}
	return s.Email
}

// FieldErrors maps a form field name to the message shown beside it.
type FieldErrors map[string]string

// Lead is an accepted quote request.
type Lead struct {
	ID         string       `json:"id"`
	ReceivedAt time.Time    `json:"receivedAt"`
	Quote      QuoteRequest `json:"quote"`
}
