package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rssFeed(items ...string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Stories by Test on Medium</title>
<link>https://medium.com/@test</link>
%s
</channel></rss>`, strings.Join(items, "\n"))
}

func rssItem(title, link, pubDate, description string) string {
	return fmt.Sprintf(`<item><title>%s</title><link>%s</link><pubDate>%s</pubDate><description><![CDATA[%s]]></description></item>`,
		title, link, pubDate, description)
}

func serveFeed(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchMedium(t *testing.T) {
	t.Run("maps feed items to posts", func(t *testing.T) {
		srv := serveFeed(t, rssFeed(
			rssItem("Kubernetes at Home", "https://medium.com/p/1", "Mon, 02 Jan 2023 15:04:05 GMT",
				"<p>Running a <b>homelab</b> cluster.</p>"),
		))

		artifact, err := FetchMedium(context.Background(), Options{
			Username: "test",
			FeedURL:  srv.URL,
		})
		require.NoError(t, err)

		assert.Equal(t, "https://medium.com/@test", artifact.Source)
		require.Len(t, artifact.Posts, 1)
		post := artifact.Posts[0]
		assert.Equal(t, "Kubernetes at Home", post.Title)
		assert.Equal(t, "https://medium.com/p/1", post.Link)
		require.NotNil(t, post.Date)
		assert.Equal(t, "2023-01-02T15:04:05Z", *post.Date)
		assert.Equal(t, "Running a homelab cluster.", post.Excerpt)
	})

	t.Run("bounds the number of posts", func(t *testing.T) {
		var items []string
		for i := 0; i < 10; i++ {
			items = append(items, rssItem(fmt.Sprintf("Post %d", i), fmt.Sprintf("https://medium.com/p/%d", i),
				"Mon, 02 Jan 2023 15:04:05 GMT", "text"))
		}
		srv := serveFeed(t, rssFeed(items...))

		artifact, err := FetchMedium(context.Background(), Options{
			Username: "test",
			FeedURL:  srv.URL,
			MaxPosts: 3,
		})
		require.NoError(t, err)
		require.Len(t, artifact.Posts, 3)
		assert.Equal(t, "Post 0", artifact.Posts[0].Title)
		assert.Equal(t, "Post 2", artifact.Posts[2].Title)
	})

	t.Run("untitled and undated items get defaults", func(t *testing.T) {
		srv := serveFeed(t, rssFeed(
			`<item><link>https://medium.com/p/2</link><description>no title here</description></item>`,
		))

		artifact, err := FetchMedium(context.Background(), Options{Username: "test", FeedURL: srv.URL})
		require.NoError(t, err)
		require.Len(t, artifact.Posts, 1)
		assert.Equal(t, "Untitled", artifact.Posts[0].Title)
		assert.Nil(t, artifact.Posts[0].Date)
	})

	t.Run("server error fails the fetch", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		_, err := FetchMedium(context.Background(), Options{Username: "test", FeedURL: srv.URL})
		require.Error(t, err)
	})

	t.Run("missing username fails", func(t *testing.T) {
		_, err := FetchMedium(context.Background(), Options{})
		require.Error(t, err)
	})
}

func TestExcerpt(t *testing.T) {
	t.Run("strips markup and collapses whitespace", func(t *testing.T) {
		got := Excerpt("<p>Hello   <em>world</em></p>\n<p>second</p>", 200)
		assert.Equal(t, "Hello world second", got)
	})

	t.Run("truncates long text with an ellipsis", func(t *testing.T) {
		got := Excerpt(strings.Repeat("a", 300), 200)
		assert.Equal(t, 201, len([]rune(got)))
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("keeps short text untouched", func(t *testing.T) {
		assert.Equal(t, "short", Excerpt("short", 200))
	})
}
