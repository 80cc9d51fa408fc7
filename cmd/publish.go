package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijayrmourya/vijaymourya/internal/publish"
)

var (
	publishFiles    []string
	publishMessage  string
	publishCountCmd string
	publishRemote   string
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Commits and pushes generated artifacts",
	Long: `The publish command stages the given files, commits them with the
message template (substituting any {COUNT} token with the output of the count
command) and pushes to the remote. With nothing staged it exits successfully
without committing. Flags fall back to the FILES, COMMIT_MSG_TEMPLATE and
COUNT_CMD environment variables so the scheduled automation can drive it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := publishFiles
		if len(files) == 0 {
			files = strings.Fields(os.Getenv("FILES"))
		}
		message := publishMessage
		if message == "" {
			message = os.Getenv("COMMIT_MSG_TEMPLATE")
		}
		countCmd := publishCountCmd
		if countCmd == "" {
			countCmd = os.Getenv("COUNT_CMD")
		}

		return publish.Run(cmd.Context(), publish.Options{
			RepoDir:         ".",
			Files:           files,
			MessageTemplate: message,
			CountCmd:        countCmd,
			RemoteName:      publishRemote,
		})
	},
}

func init() {
	publishCmd.Flags().StringSliceVar(&publishFiles, "files", nil, "files to stage (defaults to $FILES)")
	publishCmd.Flags().StringVar(&publishMessage, "message", "", "commit message template, {COUNT} is substituted (defaults to $COMMIT_MSG_TEMPLATE)")
	publishCmd.Flags().StringVar(&publishCountCmd, "count-cmd", "", "shell command emitting the item count (defaults to $COUNT_CMD)")
	publishCmd.Flags().StringVar(&publishRemote, "remote", "origin", "git remote to push to")
	rootCmd.AddCommand(publishCmd)
}
