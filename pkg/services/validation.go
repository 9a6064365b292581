package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"wallpro-landing/pkg/content"
	"wallpro-landing/pkg/models"
)

var fieldLabels = map[string]string{
	"customerType":   "Customer type",
	"facilityType":   "Facility type",
	"projectSize":    "Project size",
	"urgency":        "Urgency",
	"name":           "Name",
	"phone":          "Phone",
	"email":          "Email",
	"address":        "Property address",
	"projectDetails": "Project details",
}

var (
	// Address grammar of <input type="email">, which allows dotless domains.
	htmlEmailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
	// Floating-point grammar of <input type="number">: no leading plus, no
	// hex, no inf or nan.
	htmlNumberPattern = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
)

// QuoteValidator checks a quote request the way the browser checks the
// visible form: required fields, email and number formats, and the fixed
// option lists.
type QuoteValidator struct {
	validate *validator.Validate
}

// NewQuoteValidator builds a validator whose option lists come from the page
// copy, so the form and its checks cannot drift apart.
func NewQuoteValidator(form content.Form) (*QuoteValidator, error) {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	facilities := slices.Clone(form.FacilityTypes)
	urgencies := form.UrgencyValues()
	if err := v.RegisterValidation("facility", oneOfList(facilities)); err != nil {
		return nil, fmt.Errorf("error registering facility validation: %w", err)
	}
	if err := v.RegisterValidation("urgency", oneOfList(urgencies)); err != nil {
		return nil, fmt.Errorf("error registering urgency validation: %w", err)
	}
	if err := v.RegisterValidation("htmlemail", htmlEmail); err != nil {
		return nil, fmt.Errorf("error registering email validation: %w", err)
	}
	if err := v.RegisterValidation("htmlnumber", nonNegativeNumber); err != nil {
		return nil, fmt.Errorf("error registering number validation: %w", err)
	}
	return &QuoteValidator{validate: v}, nil
}

func htmlEmail(fl validator.FieldLevel) bool {
	return htmlEmailPattern.MatchString(fl.Field().String())
}

// nonNegativeNumber accepts what a number input with min="0" submits.
func nonNegativeNumber(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !htmlNumberPattern.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f >= 0
}

func oneOfList(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}
}

// Validate returns the failing fields of q, or nil when q may be submitted.
// Commercial-only fields are skipped unless the customer is commercial, even
// when they hold stale values.
func (v *QuoteValidator) Validate(q models.QuoteRequest) (models.FieldErrors, error) {
	var err error
	if q.IsCommercial() {
		err = v.validate.Struct(q)
	} else {
		err = v.validate.StructExcept(q, models.CommercialFields...)
	}
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("error validating quote request: %w", err)
	}

	fields := make(models.FieldErrors, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields, nil
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "htmlemail":
		return "Enter a valid email address"
	case "htmlnumber":
		return label + " must be a number of at least 0"
	default:
		return "Select a valid " + strings.ToLower(label)
	}
}
