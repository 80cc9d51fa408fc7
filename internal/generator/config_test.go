package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBadgeConfig(t *testing.T) {
	t.Run("round trips a valid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "badge_certifications.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
categories:
  Credentials:
    display_name: Professional Certifications
    icon: "X"
    sort_order: 1
certifications:
  - title: Solutions Architect
    provider: Amazon Web Services
    category: Credentials
    badge_image: sa.png
    issue_date: "2023-05-01"
`), 0o644))

		cfg, err := LoadBadgeConfig(path)
		require.NoError(t, err)
		require.Len(t, cfg.Certifications, 1)
		assert.Equal(t, "Solutions Architect", cfg.Certifications[0].Title)
		assert.Equal(t, 1, cfg.Categories["Credentials"].SortOrder)
	})

	t.Run("unknown keys fail the run", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "badge_certifications.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
certifications:
  - title: X
    provder: typo
`), 0o644))

		_, err := LoadBadgeConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error unmarshalling config file")
	})

	t.Run("malformed yaml fails the run", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "badge_certifications.yaml")
		require.NoError(t, os.WriteFile(path, []byte("certifications: [unclosed"), 0o644))

		_, err := LoadBadgeConfig(path)
		require.Error(t, err)
	})

	t.Run("missing file fails the run", func(t *testing.T) {
		_, err := LoadBadgeConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})
}

func TestWriteJSONArtifact(t *testing.T) {
	t.Run("creates parent directories and overwrites wholesale", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "assets", "data", "out.json")

		require.NoError(t, WriteJSONArtifact(path, map[string]int{"a": 1}))
		require.NoError(t, WriteJSONArtifact(path, map[string]int{"b": 2}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"b": 2}`, string(data))
	})
}
