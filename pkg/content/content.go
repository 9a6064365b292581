// Package content holds the static copy of the landing page.
//
// The copy lives in content.yaml, embedded at build time, so marketing text can
// change without touching the view code.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var siteYAML []byte

// Site is the full set of page copy.
type Site struct {
	SEO      SEO      `yaml:"seo"`
	Phone    Phone    `yaml:"phone"`
	Brand    string   `yaml:"brand"`
	Hero     Hero     `yaml:"hero"`
	Features Features `yaml:"features"`
	Services Services `yaml:"services"`
	Form     Form     `yaml:"form"`
	Results  Results  `yaml:"results"`
	FAQ      FAQ      `yaml:"faq"`
	Closing  Section  `yaml:"closing"`
}

// SEO carries the head metadata for search engines and social previews.
type SEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
	URL         string `yaml:"url"`
}

// Phone is the business number, as shown and as dialled.
type Phone struct {
	Display string `yaml:"display"`
	URI     string `yaml:"uri"`
}

type Image struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// Section is a heading with a lead paragraph.
type Section struct {
	Heading string `yaml:"heading"`
	Lead    string `yaml:"lead"`
}

type Hero struct {
	Badge      string `yaml:"badge"`
	Heading    string `yaml:"heading"`
	Subheading string `yaml:"subheading"`
	Lead       string `yaml:"lead"`
	CTA        string `yaml:"cta"`
	Image      Image  `yaml:"image"`
}

type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Features struct {
	Section `yaml:",inline"`
	Items   []Feature `yaml:"items"`
}

type ServiceType struct {
	Title  string   `yaml:"title"`
	Points []string `yaml:"points"`
}

type Services struct {
	Section `yaml:",inline"`
	Items   []ServiceType `yaml:"items"`
}

// Option is a value/label pair for a select input.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Form struct {
	Section       `yaml:",inline"`
	Footer        string   `yaml:"footer"`
	FacilityTypes []string `yaml:"facility_types"`
	Urgencies     []Option `yaml:"urgencies"`
}

type Results struct {
	Section `yaml:",inline"`
	Points  []string `yaml:"points"`
	Image   Image    `yaml:"image"`
}

type Question struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type FAQ struct {
	Section `yaml:",inline"`
	Items   []Question `yaml:"items"`
}

// Load parses the embedded page copy.
func Load() (*Site, error) {
	return Parse(siteYAML)
}

// Parse decodes page copy from YAML and checks the fields the page cannot
// render without.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("error parsing site content: %w", err)
	}
	if err := site.validate(); err != nil {
		return nil, fmt.Errorf("error in site content: %w", err)
	}
	return &site, nil
}

func (s *Site) validate() error {
	var errs []error
	if s.SEO.Title == "" {
		errs = append(errs, errors.New("seo.title is empty"))
	}
	if !strings.HasPrefix(s.Phone.URI, "tel:") {
		errs = append(errs, fmt.Errorf("phone.uri %q is not a tel: URI", s.Phone.URI))
	}
	if len(s.Form.FacilityTypes) == 0 {
		errs = append(errs, errors.New("form.facility_types is empty"))
	}
	if len(s.Form.Urgencies) == 0 {
		errs = append(errs, errors.New("form.urgencies is empty"))
	}
	return errors.Join(errs...)
}

// UrgencyValues returns the accepted urgency values in display order.
func (f Form) UrgencyValues() []string {
	values := make([]string, 0, len(f.Urgencies))
	for _, u := range f.Urgencies {
		values = append(values, u.Value)
	}
	return values
}
