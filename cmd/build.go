// cmd/build.go
package cmd

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vijayrmourya/vijaymourya/internal/config"
	"github.com/vijayrmourya/vijaymourya/internal/model"
	"github.com/vijayrmourya/vijaymourya/internal/render"

	"github.com/adrg/frontmatter"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	conventionalContentDir = "content"
	conventionalLayoutsDir = "layouts"
	conventionalBaseLayout = "base.html" // The main layout file to execute for pages
	conventionalStaticDir  = "static"    // For static assets
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from content, layouts, and generated artifacts",
	Long: `The build command processes Markdown files from './content/',
extracts frontmatter, applies templates from './layouts/' (including partials),
copies static assets from './static/', renders the generated data artifacts
into their page sections, and writes the site into the configured output
directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(appConfig, siteData)
	},
}

func runBuildProcess(cfg config.Config, site *model.SiteData) error {
	fmt.Println("Starting site build...")
	fmt.Printf("Using OutputDir: '%s', BaseURL: '%s', SiteTitle: '%s'\n", cfg.OutputDir, cfg.BaseURL, cfg.SiteTitle)

	// A rebuild starts from scratch; the serve command reuses site across
	// builds.
	site.ContentItems = []*model.ContentItem{}
	site.ContentByType = make(map[string][]*model.ContentItem)

	mdParser := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)

	sourceDir := conventionalContentDir
	layoutsDir := conventionalLayoutsDir
	staticDir := conventionalStaticDir
	outputDir := cfg.OutputDir

	if _, err := os.Stat(sourceDir); os.IsNotExist(err) {
		return fmt.Errorf("conventional source directory '%s' not found. Please create it and add your Markdown files", sourceDir)
	}
	if _, err := os.Stat(layoutsDir); os.IsNotExist(err) {
		return fmt.Errorf("conventional layouts directory '%s' not found. Please create it and add your .html layout files", layoutsDir)
	}

	fmt.Printf("Cleaning output directory: %s\n", outputDir)
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	if _, err := os.Stat(staticDir); !os.IsNotExist(err) {
		fmt.Printf("Copying static assets from '%s' to '%s'\n", staticDir, outputDir)
		if err := copyDirContents(staticDir, outputDir); err != nil {
			return fmt.Errorf("failed to copy static assets: %w", err)
		}
	} else {
		fmt.Printf("Static assets directory '%s' not found, skipping copy.\n", staticDir)
	}

	// Artifacts generated out of band become pre-rendered page sections.
	// A missing or broken artifact degrades to a placeholder; it never
	// fails the build.
	fmt.Printf("Rendering artifact sections from '%s'\n", cfg.ArtifactsDir)
	site.Sections = render.Sections(cfg.ArtifactsDir, nil)

	templates, err := loadLayouts(layoutsDir)
	if err != nil {
		return err
	}

	fmt.Printf("Processing content from source directory: '%s'\n", sourceDir)
	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		item, err := loadContentItem(mdParser, sourceDir, path, d.Name())
		if err != nil {
			return err
		}
		site.ContentItems = append(site.ContentItems, item)
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("error during content collection walk: %w", walkErr)
	}
	fmt.Printf("Collected %d content items.\n", len(site.ContentItems))

	// Sort ContentItems by Date (descending); undated items last.
	sort.SliceStable(site.ContentItems, func(i, j int) bool {
		if site.ContentItems[i].Date.IsZero() {
			return false
		}
		if site.ContentItems[j].Date.IsZero() {
			return true
		}
		return site.ContentItems[i].Date.After(site.ContentItems[j].Date)
	})

	for _, item := range site.ContentItems {
		site.ContentByType[item.Type] = append(site.ContentByType[item.Type], item)
	}

	// ** Page generation **
	defaultSingleLayout := "single.html"
	for _, item := range site.ContentItems {
		layoutToExecute := defaultSingleLayout
		if item.Layout != "" {
			if templates.Lookup(item.Layout) != nil {
				layoutToExecute = item.Layout
			} else {
				fmt.Printf("Warning: Frontmatter layout '%s' for item '%s' not found, using '%s'\n", item.Layout, item.Title, layoutToExecute)
			}
		}
		if templates.Lookup(layoutToExecute) == nil {
			fmt.Printf("Warning: Layout '%s' for item '%s' not found. Using conventional base layout '%s'.\n", layoutToExecute, item.Title, conventionalBaseLayout)
			layoutToExecute = conventionalBaseLayout
			if templates.Lookup(layoutToExecute) == nil {
				return fmt.Errorf("critical error: neither layout '%s' nor conventional base layout '%s' could be found for item '%s'", item.Layout, conventionalBaseLayout, item.Title)
			}
		}

		outputPath := filepath.Join(outputDir, item.Permalink, "index.html")
		if err := executeToFile(templates, layoutToExecute, outputPath, struct {
			Site *model.SiteData
			Item *model.ContentItem
		}{site, item}); err != nil {
			return err
		}
		fmt.Printf("Generated: %s using layout %s\n", outputPath, layoutToExecute)
	}

	// ** Homepage **
	homeLayoutName := "home.html"
	if templates.Lookup(homeLayoutName) == nil {
		return fmt.Errorf("homepage layout '%s' not found. Please create it in the layouts directory", homeLayoutName)
	}
	homeOutputPath := filepath.Join(outputDir, "index.html")
	if err := executeToFile(templates, homeLayoutName, homeOutputPath, struct {
		Site *model.SiteData
	}{site}); err != nil {
		return err
	}
	fmt.Printf("Generated homepage: %s\n", homeOutputPath)

	fmt.Println("Site build completed successfully!")
	return nil
}

// loadLayouts parses base.html and the partials first, then every other
// layout, and home.html last so its definitions win.
func loadLayouts(layoutsDir string) (*template.Template, error) {
	var layoutFiles []string
	err := filepath.WalkDir(layoutsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			layoutFiles = append(layoutFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files in '%s': %w", layoutsDir, err)
	}

	var baseHTMLPath string
	var homeHTMLPath string
	var partialLayoutFiles []string
	var otherLayoutFiles []string
	for _, f := range layoutFiles {
		switch {
		case filepath.Base(f) == conventionalBaseLayout && filepath.Dir(f) == layoutsDir:
			baseHTMLPath = f
		case strings.HasPrefix(filepath.Dir(f), filepath.Join(layoutsDir, "partials")):
			partialLayoutFiles = append(partialLayoutFiles, f)
		case filepath.Base(f) == "home.html" && filepath.Dir(f) == layoutsDir:
			homeHTMLPath = f
		default:
			otherLayoutFiles = append(otherLayoutFiles, f)
		}
	}
	if baseHTMLPath == "" {
		return nil, fmt.Errorf("base.html not found directly in layouts directory '%s'", layoutsDir)
	}

	templates, err := template.ParseFiles(append([]string{baseHTMLPath}, partialLayoutFiles...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base.html and partials: %w", err)
	}
	if len(otherLayoutFiles) > 0 {
		if templates, err = templates.ParseFiles(otherLayoutFiles...); err != nil {
			return nil, fmt.Errorf("failed to parse page layout files: %w", err)
		}
	}
	if homeHTMLPath != "" {
		if templates, err = templates.ParseFiles(homeHTMLPath); err != nil {
			return nil, fmt.Errorf("failed to parse home.html: %w", err)
		}
	}
	fmt.Printf("Parsed %d layout file(s).\n", len(layoutFiles))
	return templates, nil
}

func loadContentItem(mdParser goldmark.Markdown, sourceDir, path, name string) (*model.ContentItem, error) {
	fileBytes, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, readErr)
	}

	var fmData map[string]interface{}
	markdownBodyContent, frontmatterErr := frontmatter.Parse(bytes.NewReader(fileBytes), &fmData)
	if frontmatterErr != nil {
		fmt.Printf("Warning: Could not parse frontmatter for %s (or no frontmatter found): %v. Treating as pure markdown.\n", path, frontmatterErr)
		markdownBodyContent = fileBytes
		fmData = make(map[string]interface{})
	}

	var htmlBuffer bytes.Buffer
	if convertErr := mdParser.Convert(markdownBodyContent, &htmlBuffer); convertErr != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML for file '%s': %w", path, convertErr)
	}

	// Determine Page Title
	pageTitle := ""
	if titleFromFM, ok := fmData["title"].(string); ok && titleFromFM != "" {
		pageTitle = titleFromFM
	} else {
		pageBaseName := strings.TrimSuffix(name, filepath.Ext(name))
		tempTitle := strings.ReplaceAll(strings.ReplaceAll(pageBaseName, "-", " "), "_", " ")
		pageTitle = cases.Title(language.English).String(tempTitle)
	}

	// Determine Content Type: first content subdirectory, frontmatter wins.
	relPath, _ := filepath.Rel(sourceDir, path)
	dir := filepath.Dir(relPath)
	parts := strings.Split(dir, string(filepath.Separator))
	itemType := "page"
	if len(parts) > 0 && parts[0] != "." && parts[0] != "" {
		itemType = parts[0]
	}
	if fmType, ok := fmData["type"].(string); ok && fmType != "" {
		itemType = fmType
	}

	// Parse Date
	var itemDate time.Time
	if dateStr, ok := fmData["date"].(string); ok {
		formats := []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}
		parsed := false
		for _, format := range formats {
			parsedDate, err := time.Parse(format, dateStr)
			if err == nil {
				itemDate = parsedDate
				parsed = true
				break
			}
		}
		if !parsed {
			fmt.Printf("Warning: Could not parse date string '%s' for %s with any common format. Please use YYYY-MM-DD or RFC3339 format.\n", dateStr, path)
		}
	}

	// Determine Permalink
	itemPermalink := "/" + strings.TrimSuffix(relPath, filepath.Ext(relPath)) + "/"
	itemPermalink = filepath.Clean(itemPermalink)
	if !strings.HasPrefix(itemPermalink, "/") {
		itemPermalink = "/" + itemPermalink
	}
	if !strings.HasSuffix(itemPermalink, "/") {
		itemPermalink += "/"
	}

	itemSummary := ""
	if summary, ok := fmData["summary"].(string); ok {
		itemSummary = summary
	}
	itemLayout := ""
	if layout, ok := fmData["layout"].(string); ok {
		itemLayout = layout
	}

	return &model.ContentItem{
		Title:       pageTitle,
		Date:        itemDate,
		Type:        itemType,
		SourcePath:  path,
		Permalink:   itemPermalink,
		ContentHTML: template.HTML(htmlBuffer.String()),
		Frontmatter: fmData,
		Summary:     itemSummary,
		Layout:      itemLayout,
	}, nil
}

func executeToFile(templates *template.Template, layout, outputPath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", outputPath, err)
	}
	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", outputPath, err)
	}
	defer outFile.Close()
	if err := templates.ExecuteTemplate(outFile, layout, data); err != nil {
		return fmt.Errorf("failed to execute template '%s' (outputting to '%s'): %w", layout, outputPath, err)
	}
	return nil
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			// os.ModePerm here, not the source mode; the umask trims it.
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
		} else {
			if err := copyFile(path, dstPath); err != nil {
				return fmt.Errorf("failed to copy file from %s to %s: %w", path, dstPath, err)
			}
		}
		return nil
	})
}

// copyFile copies a single file from srcFile to dstFile.
func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	if err := os.MkdirAll(filepath.Dir(dstFile), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", filepath.Dir(dstFile), err)
	}

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}

	if srcInfo, err := os.Stat(srcFile); err == nil {
		if err := os.Chmod(dstFile, srcInfo.Mode()); err != nil {
			fmt.Printf("Warning: could not set permissions on %s: %v\n", dstFile, err)
		}
	} else {
		fmt.Printf("Warning: could not stat source file %s to preserve permissions: %v\n", srcFile, err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
