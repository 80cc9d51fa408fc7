// Package publish stages, commits and pushes generated artifacts. It mirrors
// the commit helper used by the scheduled automation: nothing staged means a
// clean exit, the commit message supports a {COUNT} substitution, and a
// failed pull/merge is tolerated so a scheduled run is not lost to a
// conflict.
package publish

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CountToken is the placeholder substituted into the commit message
// template.
const CountToken = "{COUNT}"

// Options describes one publish run.
type Options struct {
	// RepoDir is the working tree to operate on. The .git directory is
	// detected upwards from here.
	RepoDir string

	// Files to stage, relative to the repository root.
	Files []string

	// MessageTemplate is the commit message; any {COUNT} token is
	// replaced by the output of CountCmd.
	MessageTemplate string

	// CountCmd is an optional shell command whose output becomes the
	// count. A failing command or non-numeric output substitutes 0.
	CountCmd string

	RemoteName  string
	AuthorName  string
	AuthorEmail string

	// Now is the commit timestamp source, defaulting to time.Now.
	// Tests pin it.
	Now func() time.Time
}

// Run executes a publish per opts. It returns nil when there was nothing to
// commit.
func Run(ctx context.Context, opts Options) error {
	if len(opts.Files) == 0 {
		return fmt.Errorf("no files to publish")
	}
	if opts.MessageTemplate == "" {
		return fmt.Errorf("commit message template is empty")
	}
	if opts.RemoteName == "" {
		opts.RemoteName = git.DefaultRemoteName
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	repo, err := git.PlainOpenWithOptions(opts.RepoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fmt.Errorf("failed to open git repository at %s: %w", opts.RepoDir, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	for _, file := range opts.Files {
		if _, err := worktree.Add(file); err != nil {
			// A listed file that never existed is not fatal; the
			// generators may legitimately skip an artifact.
			log.Printf("Warning: could not stage %s: %v", file, err)
		}
	}

	status, err := worktree.Status()
	if err != nil {
		return fmt.Errorf("failed to read worktree status: %w", err)
	}
	if !hasStagedChanges(status) {
		fmt.Println("No changes to commit.")
		return nil
	}

	message := opts.MessageTemplate
	if strings.Contains(message, CountToken) {
		count := Count(ctx, opts.CountCmd)
		message = strings.ReplaceAll(message, CountToken, strconv.Itoa(count))
	}

	commit, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  nameOr(opts.AuthorName, "Portfolio Automation"),
			Email: nameOr(opts.AuthorEmail, "actions@users.noreply.github.com"),
			When:  opts.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	fmt.Printf("Committed %s: %s\n", commit.String()[:7], message)

	// A concurrent push from another job must not kill a scheduled run;
	// log and keep going, the push below decides success.
	if err := worktree.PullContext(ctx, &git.PullOptions{RemoteName: opts.RemoteName}); err != nil &&
		!errors.Is(err, git.NoErrAlreadyUpToDate) {
		log.Printf("Warning: pull failed, continuing: %v", err)
	}

	if err := repo.PushContext(ctx, &git.PushOptions{RemoteName: opts.RemoteName}); err != nil &&
		!errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push: %w", err)
	}
	fmt.Println("Pushed successfully.")
	return nil
}

// Count runs the count command and parses its output. Any failure, or output
// that is not a number, yields 0.
func Count(ctx context.Context, countCmd string) int {
	if countCmd == "" {
		return 0
	}
	out, err := exec.CommandContext(ctx, "sh", "-c", countCmd).Output()
	if err != nil {
		log.Printf("Warning: count command failed, using 0: %v", err)
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		log.Printf("Warning: count command output %q is not a number, using 0", strings.TrimSpace(string(out)))
		return 0
	}
	return n
}

func hasStagedChanges(status git.Status) bool {
	for _, fileStatus := range status {
		switch fileStatus.Staging {
		case git.Unmodified, git.Untracked:
		default:
			return true
		}
	}
	return false
}

func nameOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
