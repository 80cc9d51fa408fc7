package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vijayrmourya/vijaymourya/internal/model"
)

const dateLayout = "2006-01-02"

// providerStyles maps well-known providers to the colors used for the
// generated fallback badge placeholder.
var providerStyles = map[string]struct {
	Background string
	Text       string
	Short      string
}{
	"Amazon Web Services": {"#232f3e", "#ff9900", "AWS"},
	"Google Cloud":        {"#4285f4", "white", "GCP"},
	"Coursera":            {"#0056d2", "white", "Coursera"},
	"Linux Foundation":    {"#003366", "#ffffff", "LF"},
	"HashiCorp":           {"#7B42BC", "white", "HC"},
}

// GenerateBadges turns the badge certifications config into the badge
// artifact. The whole config is validated first: any invalid entry fails the
// run and nothing is produced. Non-fatal findings (missing image files,
// unconfigured verification URLs) come back as warnings.
func GenerateBadges(cfg *BadgeConfig, badgesDir string, now time.Time) (*model.BadgeArtifact, []string, error) {
	var errs []string
	var warnings []string

	for i, cert := range cfg.Certifications {
		label := cert.Title
		if label == "" {
			label = fmt.Sprintf("entry #%d", i+1)
		}
		for _, e := range validateBadgeEntry(cert, cfg.Categories) {
			errs = append(errs, fmt.Sprintf("certification %q: %s", label, e))
		}
		if cert.BadgeImage != "" && badgesDir != "" {
			if _, err := os.Stat(filepath.Join(badgesDir, cert.BadgeImage)); err != nil {
				warnings = append(warnings, fmt.Sprintf("certification %q: badge image not found: %s", label, cert.BadgeImage))
			}
		}
		if cert.VerificationURL == "" || strings.Contains(cert.VerificationURL, "YOUR-") {
			warnings = append(warnings, fmt.Sprintf("certification %q: verification URL not configured", label))
		}
	}
	if len(errs) > 0 {
		return nil, warnings, fmt.Errorf("badge config has %d invalid entr%s:\n  - %s",
			len(errs), plural(len(errs), "y", "ies"), strings.Join(errs, "\n  - "))
	}

	artifact := &model.BadgeArtifact{
		LastUpdated: now.Format(time.RFC3339),
	}

	byCategory := make(map[string][]model.BadgeCertification)
	for _, cert := range cfg.Certifications {
		byCategory[cert.Category] = append(byCategory[cert.Category], model.BadgeCertification{
			Title:           cert.Title,
			Provider:        cert.Provider,
			Category:        cert.Category,
			BadgeImage:      cert.BadgeImage,
			BadgePath:       "assets/badges/" + cert.BadgeImage,
			VerificationURL: cert.VerificationURL,
			FallbackSVG:     fallbackSVG(cert.Provider),
			IssueDate:       cert.IssueDate,
			ExpiryDate:      cert.ExpiryDate,
			CredentialID:    cert.CredentialID,
			Description:     cert.Description,
		})
	}

	for name, certs := range byCategory {
		meta := cfg.Categories[name]
		sortBadgesByIssueDate(certs)
		artifact.Categories = append(artifact.Categories, model.BadgeCategory{
			Name:           name,
			DisplayName:    displayNameOr(meta.DisplayName, name),
			Icon:           iconOr(meta.Icon),
			Color:          colorOr(meta.Color),
			Description:    meta.Description,
			SortOrder:      sortOrderOr(meta.SortOrder),
			Count:          len(certs),
			Certifications: certs,
		})
		artifact.TotalCount += len(certs)
	}

	sort.SliceStable(artifact.Categories, func(i, j int) bool {
		a, b := artifact.Categories[i], artifact.Categories[j]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.Name < b.Name
	})

	return artifact, warnings, nil
}

func validateBadgeEntry(cert BadgeEntry, categories map[string]BadgeCategoryMeta) []string {
	var errs []string
	if cert.Title == "" {
		errs = append(errs, "missing required field: title")
	}
	if cert.Provider == "" {
		errs = append(errs, "missing required field: provider")
	}
	if cert.Category == "" {
		errs = append(errs, "missing required field: category")
	} else if _, ok := categories[cert.Category]; !ok {
		errs = append(errs, fmt.Sprintf("unknown category: %s", cert.Category))
	}
	if cert.BadgeImage == "" {
		errs = append(errs, "missing required field: badge_image")
	}

	var issued, expires time.Time
	if cert.IssueDate != "" {
		t, err := time.Parse(dateLayout, cert.IssueDate)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid issue_date %q, expected YYYY-MM-DD", cert.IssueDate))
		} else {
			issued = t
		}
	}
	if cert.ExpiryDate != "" {
		t, err := time.Parse(dateLayout, cert.ExpiryDate)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid expiry_date %q, expected YYYY-MM-DD", cert.ExpiryDate))
		} else {
			expires = t
		}
	}
	if !issued.IsZero() && !expires.IsZero() && expires.Before(issued) {
		errs = append(errs, fmt.Sprintf("expiry_date %s precedes issue_date %s", cert.ExpiryDate, cert.IssueDate))
	}
	return errs
}

// sortBadgesByIssueDate orders newest first; entries without an issue date
// sort after every dated entry.
func sortBadgesByIssueDate(certs []model.BadgeCertification) {
	sort.SliceStable(certs, func(i, j int) bool {
		if certs[i].IssueDate == "" {
			return false
		}
		if certs[j].IssueDate == "" {
			return true
		}
		return certs[i].IssueDate > certs[j].IssueDate
	})
}

// fallbackSVG builds a data-URI placeholder shown when a badge image fails
// to load.
func fallbackSVG(provider string) string {
	style, ok := providerStyles[provider]
	if !ok {
		style.Background, style.Text, style.Short = "#4A90E2", "white", "CERT"
	}
	return fmt.Sprintf("data:image/svg+xml,%%3Csvg xmlns='http://www.w3.org/2000/svg' width='140' height='140'%%3E%%3Crect fill='%s' width='140' height='140' rx='10'/%%3E%%3Ctext x='70' y='75' font-family='Arial' font-size='16' fill='%s' text-anchor='middle'%%3E%s%%3C/text%%3E%%3C/svg%%3E",
		style.Background, style.Text, style.Short)
}

func displayNameOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return cases.Title(language.English).String(fallback)
}

func iconOr(icon string) string {
	if icon != "" {
		return icon
	}
	return "📄"
}

func colorOr(color string) string {
	if color != "" {
		return color
	}
	return "#60A5FA"
}

func sortOrderOr(order int) int {
	if order != 0 {
		return order
	}
	return 999
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
