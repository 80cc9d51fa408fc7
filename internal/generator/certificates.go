package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/vijayrmourya/vijaymourya/internal/model"
)

// GenerateCertificates turns the certificates config into the certificates
// artifact. Categories keep their authored order; counts are derived, never
// taken from the config. Any invalid entry fails the whole run.
func GenerateCertificates(cfg *CertificatesConfig, now time.Time) (*model.CertificatesArtifact, error) {
	var errs []string
	seen := make(map[string]bool)

	for i, cat := range cfg.Categories {
		label := cat.Key
		if label == "" {
			label = fmt.Sprintf("category #%d", i+1)
		}
		if cat.Key == "" {
			errs = append(errs, fmt.Sprintf("%s: missing required field: key", label))
		} else if seen[cat.Key] {
			errs = append(errs, fmt.Sprintf("%s: duplicate category key", label))
		}
		seen[cat.Key] = true
		if cat.DisplayName == "" {
			errs = append(errs, fmt.Sprintf("%s: missing required field: display_name", label))
		}
		for j, cert := range cat.Certificates {
			if cert.Title == "" {
				errs = append(errs, fmt.Sprintf("%s certificate #%d: missing required field: title", label, j+1))
			}
			if cert.Provider == "" {
				errs = append(errs, fmt.Sprintf("%s certificate #%d: missing required field: provider", label, j+1))
			}
			if cert.File == "" {
				errs = append(errs, fmt.Sprintf("%s certificate #%d: missing required field: file", label, j+1))
			}
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("certificates config has %d invalid entr%s:\n  - %s",
			len(errs), plural(len(errs), "y", "ies"), strings.Join(errs, "\n  - "))
	}

	artifact := &model.CertificatesArtifact{
		GeneratedAt: now.Format(time.RFC3339),
	}
	for _, cat := range cfg.Categories {
		out := model.CertificateCategory{
			Key:         cat.Key,
			DisplayName: cat.DisplayName,
			Icon:        iconOr(cat.Icon),
			Color:       colorOr(cat.Color),
			Count:       len(cat.Certificates),
		}
		for _, cert := range cat.Certificates {
			out.Certificates = append(out.Certificates, model.Certificate{
				Title:    cert.Title,
				Provider: cert.Provider,
				File:     cert.File,
			})
		}
		artifact.Categories = append(artifact.Categories, out)
		artifact.TotalCount += out.Count
	}
	return artifact, nil
}
