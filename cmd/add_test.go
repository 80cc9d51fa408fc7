package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijayrmourya/vijaymourya/internal/generator"
)

const addTestConfig = `categories:
  Credentials:
    display_name: Professional Certifications
    sort_order: 1
certifications:
  - title: Existing Badge
    provider: Amazon Web Services
    category: Credentials
    badge_image: existing.png
`

func TestRunAddBadge(t *testing.T) {
	t.Run("appends a new entry preserving existing ones", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "badge_certifications.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(addTestConfig), 0o644))

		input := strings.Join([]string{
			"Terraform Associate",              // title
			"HashiCorp",                        // provider
			"",                                 // category, accepts the default
			"tf-badge",                         // badge image, .png appended
			"https://www.credly.com/badges/tf", // verification url
			"not-a-date",                       // rejected issue date
			"2024-03-01",                       // issue date
			"",                                 // expiry date
			"",                                 // credential id
			"Infrastructure as code badge",     // description
		}, "\n") + "\n"

		var out bytes.Buffer
		require.NoError(t, runAddBadge(configPath, strings.NewReader(input), &out))

		assert.Contains(t, out.String(), "Invalid date format")
		assert.Contains(t, out.String(), "Certification added")

		cfg, err := generator.LoadBadgeConfig(configPath)
		require.NoError(t, err)
		require.Len(t, cfg.Certifications, 2)
		assert.Equal(t, "Existing Badge", cfg.Certifications[0].Title)

		added := cfg.Certifications[1]
		assert.Equal(t, "Terraform Associate", added.Title)
		assert.Equal(t, "HashiCorp", added.Provider)
		assert.Equal(t, "Credentials", added.Category)
		assert.Equal(t, "tf-badge.png", added.BadgeImage)
		assert.Equal(t, "2024-03-01", added.IssueDate)
		assert.Equal(t, "Infrastructure as code badge", added.Description)
	})

	t.Run("empty required field is re-prompted", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "badge_certifications.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(addTestConfig), 0o644))

		input := strings.Join([]string{
			"",                 // rejected empty title
			"Some Badge",       // title
			"Provider X",       // provider
			"Credentials",      // category
			"img.png",          // badge image
			"", "", "", "", "", // optional fields
		}, "\n") + "\n"

		var out bytes.Buffer
		require.NoError(t, runAddBadge(configPath, strings.NewReader(input), &out))
		assert.Contains(t, out.String(), "This field is required.")

		cfg, err := generator.LoadBadgeConfig(configPath)
		require.NoError(t, err)
		require.Len(t, cfg.Certifications, 2)
		assert.Equal(t, "Some Badge", cfg.Certifications[1].Title)
	})

	t.Run("missing config fails", func(t *testing.T) {
		var out bytes.Buffer
		err := runAddBadge(filepath.Join(t.TempDir(), "nope.yaml"), strings.NewReader(""), &out)
		require.Error(t, err)
	})
}
