package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"github.com/vijayrmourya/vijaymourya/internal/model"
)

const (
	// DefaultMaxPosts bounds how many feed items end up in the artifact.
	DefaultMaxPosts = 6

	excerptLength  = 200
	requestTimeout = 30 * time.Second
)

// Options configures a medium feed fetch.
type Options struct {
	Username string
	MaxPosts int

	// FeedURL overrides the medium feed URL derived from Username.
	// Used by tests.
	FeedURL string

	Client *http.Client
}

// FetchMedium downloads and parses the medium RSS feed for the configured
// username and maps the most recent items to the medium posts artifact.
// Nothing is written here: callers only persist the artifact after a fully
// successful fetch, so failures leave the previous artifact untouched.
func FetchMedium(ctx context.Context, opts Options) (*model.MediumArtifact, error) {
	if opts.Username == "" && opts.FeedURL == "" {
		return nil, fmt.Errorf("medium username not configured")
	}
	maxPosts := opts.MaxPosts
	if maxPosts <= 0 {
		maxPosts = DefaultMaxPosts
	}
	feedURL := opts.FeedURL
	if feedURL == "" {
		feedURL = fmt.Sprintf("https://medium.com/feed/@%s", opts.Username)
	}

	parser := gofeed.NewParser()
	if opts.Client != nil {
		parser.Client = opts.Client
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	parsed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch medium feed %s: %w", feedURL, err)
	}

	artifact := &model.MediumArtifact{
		Source: fmt.Sprintf("https://medium.com/@%s", opts.Username),
		Posts:  []model.MediumPost{},
	}
	if opts.Username == "" {
		artifact.Source = feedURL
	}

	for i, item := range parsed.Items {
		if i >= maxPosts {
			break
		}
		post := model.MediumPost{
			Title:   "Untitled",
			Link:    item.Link,
			Excerpt: Excerpt(itemBody(item), excerptLength),
		}
		if item.Title != "" {
			post.Title = item.Title
		}
		if item.PublishedParsed != nil {
			date := item.PublishedParsed.UTC().Format(time.RFC3339)
			post.Date = &date
		}
		artifact.Posts = append(artifact.Posts, post)
	}
	return artifact, nil
}

func itemBody(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}

// Excerpt strips markup from an HTML fragment, collapses whitespace and
// truncates to at most length runes with a trailing ellipsis.
func Excerpt(fragment string, length int) string {
	text := strings.Join(strings.Fields(stripTags(fragment)), " ")
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return string(runes[:length]) + "…"
}

func stripTags(fragment string) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF ends the fragment; anything else means the input
			// was not HTML at all, so fall back to the raw text.
			if b.Len() == 0 {
				return fragment
			}
			return b.String()
		case html.TextToken:
			b.WriteString(tokenizer.Token().Data)
			b.WriteByte(' ')
		}
	}
}
