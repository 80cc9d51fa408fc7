// Package render turns the generated JSON artifacts into the HTML markup
// injected into the site's pages. Each artifact shape has its own typed
// render function; a missing or malformed artifact degrades to a placeholder
// instead of failing the build.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
)

// Section ids, matching the container ids the page layouts use.
const (
	SectionMediumPosts  = "medium-posts"
	SectionCertificates = "certificates"
	SectionBadges       = "badge-certifications"
	SectionExperience   = "experience"
)

// Artifact filenames within the artifacts directory.
const (
	MediumArtifactFile       = "medium_posts.json"
	CertificatesArtifactFile = "certificates.json"
	BadgesArtifactFile       = "badge_certifications.json"
	ExperienceArtifactFile   = "experience.html"
)

// Placeholder is the markup shown when a section's data cannot be loaded.
func Placeholder(section string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<p class="section-unavailable" data-section=%q>This content is currently unavailable.</p>`,
		section))
}

// Sections loads every known artifact from dir and renders it. The result
// always contains an entry for every known section; sections whose artifact
// is missing, unreadable or malformed get the placeholder and a logged
// warning. Rendering is pure: the same artifact bytes always produce the
// same markup.
func Sections(dir string, warnf func(format string, args ...interface{})) map[string]template.HTML {
	if warnf == nil {
		warnf = log.Printf
	}

	out := make(map[string]template.HTML, 4)
	load := func(section, file string, render func([]byte) (template.HTML, error)) {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			warnf("Warning: section %q unavailable: %v", section, err)
			out[section] = Placeholder(section)
			return
		}
		markup, err := render(data)
		if err != nil {
			warnf("Warning: section %q unavailable: %v", section, err)
			out[section] = Placeholder(section)
			return
		}
		out[section] = markup
	}

	load(SectionMediumPosts, MediumArtifactFile, MediumPosts)
	load(SectionCertificates, CertificatesArtifactFile, Certificates)
	load(SectionBadges, BadgesArtifactFile, BadgeCertifications)
	load(SectionExperience, ExperienceArtifactFile, experienceFragment)
	return out
}

// experienceFragment is generated HTML already; it is included as-is.
func experienceFragment(data []byte) (template.HTML, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", fmt.Errorf("experience fragment is empty")
	}
	return template.HTML(data), nil
}
