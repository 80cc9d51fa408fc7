package render

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mediumJSON = `{
  "source": "https://medium.com/@test",
  "posts": [
    {"title": "First Post", "link": "https://medium.com/p/1", "date": "2023-01-02T15:04:05Z", "excerpt": "An excerpt."},
    {"title": "Second Post", "link": "https://medium.com/p/2", "date": null, "excerpt": ""}
  ]
}`

const certificatesJSON = `{
  "generated_at": "2025-06-01T12:00:00Z",
  "total_count": 1,
  "categories": [
    {"key": "cloud", "display_name": "Cloud", "icon": "C", "color": "#ff9900", "count": 1,
     "certificates": [{"title": "AWS SAA", "provider": "Amazon Web Services", "file": "assets/certs/aws.pdf"}]}
  ]
}`

const badgesJSON = `{
  "last_updated": "2025-06-01T12:00:00Z",
  "total_count": 1,
  "categories": [
    {"name": "Credentials", "display_name": "Professional Certifications", "icon": "B", "color": "#ff9900",
     "description": "", "sort_order": 1, "count": 1,
     "certifications": [
       {"title": "Solutions Architect", "provider": "Amazon Web Services", "category": "Credentials",
        "badge_image": "sa.png", "badge_path": "assets/badges/sa.png",
        "verification_url": "https://www.credly.com/badges/abc",
        "fallback_svg": "data:image/svg+xml,placeholder", "issue_date": "2023-05-01"}
     ]}
  ]
}`

func writeArtifacts(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestSections(t *testing.T) {
	t.Run("renders every available artifact", func(t *testing.T) {
		dir := writeArtifacts(t, map[string]string{
			MediumArtifactFile:       mediumJSON,
			CertificatesArtifactFile: certificatesJSON,
			BadgesArtifactFile:       badgesJSON,
			ExperienceArtifactFile:   `<section class="experience"><h3>SRE</h3></section>`,
		})

		sections := Sections(dir, func(string, ...interface{}) {})
		require.Len(t, sections, 4)
		assert.Contains(t, string(sections[SectionMediumPosts]), "First Post")
		assert.Contains(t, string(sections[SectionCertificates]), "AWS SAA")
		assert.Contains(t, string(sections[SectionBadges]), "Solutions Architect")
		assert.Contains(t, string(sections[SectionExperience]), "SRE")
	})

	t.Run("missing artifacts render placeholders and warn", func(t *testing.T) {
		var warned int
		sections := Sections(t.TempDir(), func(format string, args ...interface{}) {
			warned++
			assert.Contains(t, fmt.Sprintf(format, args...), "unavailable")
		})

		require.Len(t, sections, 4)
		assert.Equal(t, 4, warned)
		for id, markup := range sections {
			assert.Equal(t, Placeholder(id), markup, "section %s", id)
		}
	})

	t.Run("corrupt artifact renders placeholder", func(t *testing.T) {
		dir := writeArtifacts(t, map[string]string{
			MediumArtifactFile: "{not json",
		})

		sections := Sections(dir, func(string, ...interface{}) {})
		assert.Equal(t, Placeholder(SectionMediumPosts), sections[SectionMediumPosts])
	})

	t.Run("empty post list renders placeholder", func(t *testing.T) {
		dir := writeArtifacts(t, map[string]string{
			MediumArtifactFile: `{"source": "https://medium.com/@test", "posts": []}`,
		})

		sections := Sections(dir, func(string, ...interface{}) {})
		assert.Equal(t, Placeholder(SectionMediumPosts), sections[SectionMediumPosts])
	})

	t.Run("rendering is idempotent", func(t *testing.T) {
		dir := writeArtifacts(t, map[string]string{
			MediumArtifactFile:       mediumJSON,
			CertificatesArtifactFile: certificatesJSON,
			BadgesArtifactFile:       badgesJSON,
			ExperienceArtifactFile:   `<section>x</section>`,
		})

		first := Sections(dir, func(string, ...interface{}) {})
		second := Sections(dir, func(string, ...interface{}) {})
		assert.Equal(t, first, second)
	})
}

func TestMediumPosts(t *testing.T) {
	markup, err := MediumPosts([]byte(mediumJSON))
	require.NoError(t, err)
	html := string(markup)

	assert.Contains(t, html, `<a href="https://medium.com/p/1"`)
	assert.Contains(t, html, "Jan 2, 2023")
	assert.Contains(t, html, "An excerpt.")
	assert.Contains(t, html, "More on Medium")
	// The undated post renders without a <time> element.
	assert.Contains(t, html, "Second Post")
}

func TestCertificates(t *testing.T) {
	markup, err := Certificates([]byte(certificatesJSON))
	require.NoError(t, err)
	html := string(markup)

	assert.Contains(t, html, `data-category="cloud"`)
	assert.Contains(t, html, "Cloud")
	assert.Contains(t, html, `<a href="assets/certs/aws.pdf">AWS SAA</a>`)

	t.Run("no entries is an error", func(t *testing.T) {
		_, err := Certificates([]byte(`{"total_count": 0, "categories": []}`))
		require.Error(t, err)
	})
}

func TestBadgeCertifications(t *testing.T) {
	markup, err := BadgeCertifications([]byte(badgesJSON))
	require.NoError(t, err)
	html := string(markup)

	assert.Contains(t, html, "Professional Certifications")
	assert.Contains(t, html, `src="assets/badges/sa.png"`)
	assert.Contains(t, html, "Issued May 2023")
	assert.Contains(t, html, `href="https://www.credly.com/badges/abc"`)
}
