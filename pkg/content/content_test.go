package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	site, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tel:+1(778)653-4724", site.Phone.URI)
	assert.Equal(t, "https://acvancouver.com", site.SEO.URL)
	assert.Equal(t, []string{
		"Office Space",
		"Retail Location",
		"Restaurant",
		"Residential Building",
		"Medical Office",
		"Educational Facility",
		"Hotel",
		"Industrial Facility",
	}, site.Form.FacilityTypes)
	assert.Equal(t, []string{"emergency", "urgent", "standard", "planned"}, site.Form.UrgencyValues())

	assert.Len(t, site.Features.Items, 4)
	assert.Len(t, site.Services.Items, 4)
	for _, s := range site.Services.Items {
		assert.Len(t, s.Points, 4, s.Title)
	}
	assert.Len(t, site.Results.Points, 4)
	assert.Len(t, site.FAQ.Items, 4)
	assert.Equal(t, "Our Services", site.Services.Heading)
	assert.Equal(t, "/photos/homepage/2.jpg", site.Hero.Image.Src)
	assert.Equal(t, "/photos/homepage/1.jpg", site.Results.Image.Src)
}

func TestParseRejectsIncompleteContent(t *testing.T) {
	_, err := Parse([]byte(`
seo:
  title: ""
phone:
  uri: "+1 778 653 4724"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seo.title is empty")
	assert.Contains(t, err.Error(), "not a tel: URI")
	assert.Contains(t, err.Error(), "form.facility_types is empty")
	assert.Contains(t, err.Error(), "form.urgencies is empty")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("seo: [unterminated"))
	assert.ErrorContains(t, err, "error parsing site content")
}
