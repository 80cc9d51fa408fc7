package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/vijayrmourya/vijaymourya/internal/model"
)

var sectionFuncs = template.FuncMap{
	"shortDate": func(iso *string) string {
		if iso == nil {
			return ""
		}
		t, err := time.Parse(time.RFC3339, *iso)
		if err != nil {
			return *iso
		}
		return t.Format("Jan 2, 2006")
	},
	"displayDate": func(date string) string {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			return date
		}
		return t.Format("Jan 2006")
	},
}

var mediumTemplate = template.Must(template.New("medium-posts").Funcs(sectionFuncs).Parse(`<div class="medium-posts">
{{- range .Posts }}
  <article class="medium-post">
    <h3><a href="{{ .Link }}" target="_blank" rel="noopener">{{ .Title }}</a></h3>
    {{- with shortDate .Date }}
    <time>{{ . }}</time>
    {{- end }}
    {{- if .Excerpt }}
    <p class="medium-excerpt">{{ .Excerpt }}</p>
    {{- end }}
  </article>
{{- end }}
  <p class="medium-more"><a href="{{ .Source }}" target="_blank" rel="noopener">More on Medium</a></p>
</div>
`))

var certificatesTemplate = template.Must(template.New("certificates").Parse(`<div class="certificate-categories">
{{- range .Categories }}
  <section class="certificate-category" data-category="{{ .Key }}">
    <h3><span class="category-icon">{{ .Icon }}</span> {{ .DisplayName }} <span class="category-count" style="color: {{ .Color }}">{{ .Count }}</span></h3>
    <ul>
      {{- range .Certificates }}
      <li><a href="{{ .File }}">{{ .Title }}</a> <span class="certificate-provider">{{ .Provider }}</span></li>
      {{- end }}
    </ul>
  </section>
{{- end }}
</div>
`))

var badgesTemplate = template.Must(template.New("badge-certifications").Funcs(sectionFuncs).Parse(`<div class="badge-categories">
{{- range .Categories }}
  <section class="badge-category" data-category="{{ .Name }}">
    <h3><span class="category-icon">{{ .Icon }}</span> {{ .DisplayName }} <span class="category-count" style="color: {{ .Color }}">{{ .Count }}</span></h3>
    {{- if .Description }}
    <p class="category-description">{{ .Description }}</p>
    {{- end }}
    <div class="badge-grid">
      {{- range .Certifications }}
      <figure class="badge-card">
        <img src="{{ .BadgePath }}" alt="{{ .Title }}" onerror="this.onerror=null;this.src='{{ .FallbackSVG }}'">
        <figcaption>
          <strong>{{ .Title }}</strong>
          <span class="badge-provider">{{ .Provider }}</span>
          {{- if .IssueDate }}
          <time>Issued {{ displayDate .IssueDate }}</time>
          {{- end }}
          {{- if .ExpiryDate }}
          <time>Expires {{ displayDate .ExpiryDate }}</time>
          {{- end }}
          {{- if .VerificationURL }}
          <a href="{{ .VerificationURL }}" target="_blank" rel="noopener">Verify</a>
          {{- end }}
        </figcaption>
      </figure>
      {{- end }}
    </div>
  </section>
{{- end }}
</div>
`))

// MediumPosts renders the medium posts artifact. An empty post list is
// treated the same as a missing artifact so the page never shows a bare
// shell.
func MediumPosts(data []byte) (template.HTML, error) {
	var artifact model.MediumArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return "", fmt.Errorf("failed to parse medium posts artifact: %w", err)
	}
	if len(artifact.Posts) == 0 {
		return "", fmt.Errorf("medium posts artifact has no posts")
	}
	return execute(mediumTemplate, artifact)
}

// Certificates renders the certificates artifact.
func Certificates(data []byte) (template.HTML, error) {
	var artifact model.CertificatesArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return "", fmt.Errorf("failed to parse certificates artifact: %w", err)
	}
	if artifact.TotalCount == 0 || len(artifact.Categories) == 0 {
		return "", fmt.Errorf("certificates artifact has no entries")
	}
	return execute(certificatesTemplate, artifact)
}

// BadgeCertifications renders the badge certifications artifact.
func BadgeCertifications(data []byte) (template.HTML, error) {
	var artifact model.BadgeArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return "", fmt.Errorf("failed to parse badge certifications artifact: %w", err)
	}
	if artifact.TotalCount == 0 || len(artifact.Categories) == 0 {
		return "", fmt.Errorf("badge certifications artifact has no entries")
	}
	return execute(badgesTemplate, artifact)
}

func execute(tmpl *template.Template, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", tmpl.Name(), err)
	}
	return template.HTML(buf.String()), nil
}
