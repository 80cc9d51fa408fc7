package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijayrmourya/vijaymourya/internal/config"
	"github.com/vijayrmourya/vijaymourya/internal/model"
)

const baseLayout = `<html><head><title>{{ .Site.Config.title }}</title></head>
<body>{{ .Item.ContentHTML }}</body></html>`

const singleLayout = `<html><body>
<h1>{{ .Item.Title }}</h1>
{{ .Item.ContentHTML }}
</body></html>`

const homeLayout = `<html><body>
<div id="medium-posts">{{ index .Site.Sections "medium-posts" }}</div>
<div id="experience">{{ index .Site.Sections "experience" }}</div>
</body></html>`

// chdir changes into dir and restores the previous working directory when
// the test ends; it stands in for t.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func scaffoldSite(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())

	require.NoError(t, os.MkdirAll("content/posts", 0o755))
	require.NoError(t, os.MkdirAll("layouts", 0o755))
	require.NoError(t, os.MkdirAll("static", 0o755))

	require.NoError(t, os.WriteFile("layouts/base.html", []byte(baseLayout), 0o644))
	require.NoError(t, os.WriteFile("layouts/single.html", []byte(singleLayout), 0o644))
	require.NoError(t, os.WriteFile("layouts/home.html", []byte(homeLayout), 0o644))

	require.NoError(t, os.WriteFile("content/posts/first-post.md", []byte(`---
title: First Post
date: 2023-01-02
---
Some **bold** content.
`), 0o644))
	require.NoError(t, os.WriteFile("static/style.css", []byte("body{}"), 0o644))
}

func testSite() *model.SiteData {
	return &model.SiteData{Config: map[string]interface{}{"title": "Test Site"}}
}

func TestRunBuildProcess(t *testing.T) {
	cfg := config.Config{
		SiteTitle:    "Test Site",
		OutputDir:    "public",
		ToolsDir:     "tools",
		ArtifactsDir: "assets/data",
	}

	t.Run("builds pages, homepage and static assets", func(t *testing.T) {
		scaffoldSite(t)
		require.NoError(t, os.MkdirAll("assets/data", 0o755))
		require.NoError(t, os.WriteFile("assets/data/experience.html", []byte("<section>SRE at Example Corp</section>"), 0o644))

		site := testSite()
		require.NoError(t, runBuildProcess(cfg, site))

		page, err := os.ReadFile(filepath.Join("public", "posts", "first-post", "index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(page), "<h1>First Post</h1>")
		assert.Contains(t, string(page), "<strong>bold</strong>")

		home, err := os.ReadFile(filepath.Join("public", "index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(home), "SRE at Example Corp")
		// No medium artifact was generated, so the homepage shows the
		// placeholder instead of failing.
		assert.Contains(t, string(home), "currently unavailable")

		assert.FileExists(t, filepath.Join("public", "style.css"))
	})

	t.Run("content type derives from directory", func(t *testing.T) {
		scaffoldSite(t)
		site := testSite()
		require.NoError(t, runBuildProcess(cfg, site))

		require.Len(t, site.ContentItems, 1)
		assert.Equal(t, "posts", site.ContentItems[0].Type)
		assert.Equal(t, "/posts/first-post/", site.ContentItems[0].Permalink)
		require.Len(t, site.ContentByType["posts"], 1)
	})

	t.Run("missing content directory fails", func(t *testing.T) {
		chdir(t, t.TempDir())
		require.Error(t, runBuildProcess(cfg, testSite()))
	})

	t.Run("rebuild does not duplicate content items", func(t *testing.T) {
		scaffoldSite(t)
		site := testSite()
		require.NoError(t, runBuildProcess(cfg, site))
		require.NoError(t, runBuildProcess(cfg, site))
		assert.Len(t, site.ContentItems, 1)
	})
}
