package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	tests := map[string]Action{
		"customer-residential": ActionSelectResidential,
		"customer-commercial":  ActionSelectCommercial,
		"done":                 ActionDone,
		"submit":               ActionSubmit,
		"":                     ActionSubmit,
		"delete-everything":    ActionSubmit,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseAction(in), "action %q", in)
	}
}

func TestSwitchingCustomerTypeKeepsCommercialValues(t *testing.T) {
	state := FormState{}
	state.SelectCustomerType(CustomerCommercial)
	state.FacilityType = "Hotel"
	state.ProjectSize = "2400"
	state.Urgency = "urgent"
	want := state.QuoteRequest

	state.SelectCustomerType(CustomerResidential)
	assert.False(t, state.IsCommercial())
	assert.Equal(t, "Hotel", state.FacilityType)

	state.SelectCustomerType(CustomerCommercial)
	if diff := cmp.Diff(want, state.QuoteRequest); diff != "" {
		t.Errorf("quote changed across customer type round trip (-want +got):\n%s", diff)
	}
}

func TestDismissKeepsValues(t *testing.T) {
	state := FormState{QuoteRequest: QuoteRequest{
		CustomerType: CustomerResidential,
		Name:         "Dana",
		Phone:        "778-555-0101",
		Email:        "dana@example.com",
		Address:      "1 Main St",
	}}
	before := state.QuoteRequest

	state.MarkSubmitted()
	assert.True(t, state.Submitted)
	assert.Equal(t, "dana@example.com", state.SubmittedEmail)

	state.Dismiss()
	assert.False(t, state.Submitted)
	assert.Empty(t, state.SubmittedEmail)
	if diff := cmp.Diff(before, state.QuoteRequest); diff != "" {
		t.Errorf("dismiss mutated the quote (-want +got):\n%s", diff)
	}
}

func TestConfirmationEmailIsFixedAtSubmit(t *testing.T) {
	state := FormState{QuoteRequest: QuoteRequest{Email: "first@example.com"}}
	state.MarkSubmitted()

	state.Email = "second@example.com"
	state.SelectCustomerType(CustomerCommercial)
	assert.Equal(t, "first@example.com", state.ConfirmationEmail())

	// A submitted flag posted without the captured address falls back to
	// the current email.
	bare := FormState{QuoteRequest: QuoteRequest{Email: "bare@example.com"}, Submitted: true}
	assert.Equal(t, "bare@example.com", bare.ConfirmationEmail())
}
