package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/vijayrmourya/vijaymourya/internal/generator"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Interactive helpers for editing the YAML configs",
}

var addBadgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Interactively appends a badge certification to the config",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := filepath.Join(appConfig.ToolsDir, "badge_certifications.yaml")
		return runAddBadge(configPath, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runAddBadge(configPath string, in io.Reader, out io.Writer) error {
	cfg, err := generator.LoadBadgeConfig(configPath)
	if err != nil {
		return err
	}

	p := prompter{reader: bufio.NewReader(in), out: out}

	fmt.Fprintln(out, "Add a new badge certification")
	fmt.Fprintln(out)

	entry := generator.BadgeEntry{}
	if entry.Title, err = p.required("Certification title"); err != nil {
		return err
	}
	if entry.Provider, err = p.required("Provider/Issuer"); err != nil {
		return err
	}

	fmt.Fprintln(out, "Available categories:")
	for name, meta := range cfg.Categories {
		fmt.Fprintf(out, "  - %s (%s)\n", name, meta.DisplayName)
	}
	if entry.Category, err = p.withDefault("Category", "Credentials"); err != nil {
		return err
	}

	if entry.BadgeImage, err = p.required("Badge image filename (in assets/badges/)"); err != nil {
		return err
	}
	if !strings.HasSuffix(entry.BadgeImage, ".png") {
		entry.BadgeImage += ".png"
	}

	if entry.VerificationURL, err = p.optional("Verification URL"); err != nil {
		return err
	}
	if entry.IssueDate, err = p.date("Issue date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if entry.ExpiryDate, err = p.date("Expiry date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if entry.CredentialID, err = p.optional("Credential ID"); err != nil {
		return err
	}
	if entry.Description, err = p.optional("Description"); err != nil {
		return err
	}

	cfg.Certifications = append(cfg.Certifications, entry)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", configPath, err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Certification added to %s\n", configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  1. Add the badge image: assets/badges/%s\n", entry.BadgeImage)
	fmt.Fprintln(out, "  2. Run: folio generate badges")
	fmt.Fprintln(out, "  3. Run: folio publish")
	return nil
}

type prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func (p prompter) read(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p prompter) required(prompt string) (string, error) {
	for {
		value, err := p.read(prompt)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		fmt.Fprintln(p.out, "This field is required.")
	}
}

func (p prompter) optional(prompt string) (string, error) {
	return p.read(prompt)
}

func (p prompter) withDefault(prompt, def string) (string, error) {
	value, err := p.read(fmt.Sprintf("%s [%s]", prompt, def))
	if err != nil {
		return "", err
	}
	if value == "" {
		return def, nil
	}
	return value, nil
}

func (p prompter) date(prompt string) (string, error) {
	for {
		value, err := p.read(prompt)
		if err != nil {
			return "", err
		}
		if value == "" {
			return "", nil
		}
		if _, err := time.Parse("2006-01-02", value); err == nil {
			return value, nil
		}
		fmt.Fprintln(p.out, "Invalid date format, please use YYYY-MM-DD.")
	}
}

func init() {
	addCmd.AddCommand(addBadgeCmd)
	rootCmd.AddCommand(addCmd)
}
