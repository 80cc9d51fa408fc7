package generator

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const monthLayout = "2006-01"

var experienceTemplate = template.Must(template.New("experience").Parse(`<section class="experience" id="experience">
{{- range . }}
  <article class="experience-entry">
    <header>
      <h3>{{ .Role }}</h3>
      <p class="experience-company">{{ .Company }}{{ if .Location }} · {{ .Location }}{{ end }}</p>
      <p class="experience-period">{{ .Period }}</p>
    </header>
    {{- if .SummaryHTML }}
    <div class="experience-summary">{{ .SummaryHTML }}</div>
    {{- end }}
    {{- if .Highlights }}
    <ul class="experience-highlights">
      {{- range .Highlights }}
      <li>{{ . }}</li>
      {{- end }}
    </ul>
    {{- end }}
  </article>
{{- end }}
</section>
`))

type renderedExperience struct {
	Role        string
	Company     string
	Location    string
	Period      string
	SummaryHTML template.HTML
	Highlights  []template.HTML
}

// GenerateExperience renders the experience config into an HTML fragment.
// Summaries and highlights are markdown; everything else is treated as plain
// text. As with the other generators, an invalid entry fails the run before
// anything is rendered.
func GenerateExperience(cfg *ExperienceConfig, now time.Time) ([]byte, error) {
	var errs []string
	for i, entry := range cfg.Experience {
		label := entry.Role
		if label == "" {
			label = fmt.Sprintf("entry #%d", i+1)
		}
		if entry.Role == "" {
			errs = append(errs, fmt.Sprintf("%s: missing required field: role", label))
		}
		if entry.Company == "" {
			errs = append(errs, fmt.Sprintf("%s: missing required field: company", label))
		}
		if entry.Start == "" {
			errs = append(errs, fmt.Sprintf("%s: missing required field: start", label))
		} else if _, err := time.Parse(monthLayout, entry.Start); err != nil {
			errs = append(errs, fmt.Sprintf("%s: invalid start %q, expected YYYY-MM", label, entry.Start))
		}
		if entry.End != "" {
			if _, err := time.Parse(monthLayout, entry.End); err != nil {
				errs = append(errs, fmt.Sprintf("%s: invalid end %q, expected YYYY-MM", label, entry.End))
			}
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("experience config has %d invalid entr%s:\n  - %s",
			len(errs), plural(len(errs), "y", "ies"), strings.Join(errs, "\n  - "))
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	rendered := make([]renderedExperience, 0, len(cfg.Experience))
	for _, entry := range cfg.Experience {
		out := renderedExperience{
			Role:     entry.Role,
			Company:  entry.Company,
			Location: entry.Location,
			Period:   formatPeriod(entry.Start, entry.End),
		}
		if entry.Summary != "" {
			html, err := markdownToHTML(md, entry.Summary)
			if err != nil {
				return nil, fmt.Errorf("failed to render summary for %q: %w", entry.Role, err)
			}
			out.SummaryHTML = html
		}
		for _, h := range entry.Highlights {
			html, err := markdownToHTML(md, h)
			if err != nil {
				return nil, fmt.Errorf("failed to render highlight for %q: %w", entry.Role, err)
			}
			out.Highlights = append(out.Highlights, stripParagraph(html))
		}
		rendered = append(rendered, out)
	}

	var buf bytes.Buffer
	if err := experienceTemplate.Execute(&buf, rendered); err != nil {
		return nil, fmt.Errorf("failed to execute experience template: %w", err)
	}
	return buf.Bytes(), nil
}

func markdownToHTML(md goldmark.Markdown, source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// stripParagraph unwraps the single <p> goldmark puts around a one-line
// highlight so the list items stay flat.
func stripParagraph(html template.HTML) template.HTML {
	s := strings.TrimSpace(string(html))
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "<p>"), "</p>")
	}
	return template.HTML(s)
}

func formatPeriod(start, end string) string {
	from, _ := time.Parse(monthLayout, start)
	if end == "" {
		return fmt.Sprintf("%s – Present", from.Format("Jan 2006"))
	}
	to, _ := time.Parse(monthLayout, end)
	return fmt.Sprintf("%s – %s", from.Format("Jan 2006"), to.Format("Jan 2006"))
}
