package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vijayrmourya/vijaymourya/internal/feed"
	"github.com/vijayrmourya/vijaymourya/internal/generator"
	"github.com/vijayrmourya/vijaymourya/internal/render"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetches external feed data into artifacts",
}

var fetchMediumCmd = &cobra.Command{
	Use:   "medium",
	Short: "Fetches recent Medium posts into the medium posts artifact",
	Long: `Polls the Medium RSS feed for the configured username and rewrites the
medium posts artifact with the most recent items. A network or parse failure
leaves the previous artifact unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := feed.Options{
			Username: appConfig.Medium.Username,
			MaxPosts: appConfig.Medium.MaxPosts,
		}
		// The scheduled job overrides via the environment, same contract
		// as the rest of the automation.
		if v := os.Getenv("MEDIUM_USERNAME"); v != "" {
			opts.Username = v
		}
		if v := os.Getenv("MAX_POSTS"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid MAX_POSTS value %q: %w", v, err)
			}
			opts.MaxPosts = n
		}

		fmt.Printf("Fetching Medium feed for @%s (max %d posts)\n", opts.Username, opts.MaxPosts)
		artifact, err := feed.FetchMedium(cmd.Context(), opts)
		if err != nil {
			return err
		}

		outputPath := filepath.Join(appConfig.ArtifactsDir, render.MediumArtifactFile)
		if err := generator.WriteJSONArtifact(outputPath, artifact); err != nil {
			return err
		}
		fmt.Printf("Wrote %d posts to %s\n", len(artifact.Posts), outputPath)
		return nil
	},
}

func init() {
	fetchCmd.AddCommand(fetchMediumCmd)
	rootCmd.AddCommand(fetchCmd)
}
