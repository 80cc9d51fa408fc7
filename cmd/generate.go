package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vijayrmourya/vijaymourya/internal/generator"
	"github.com/vijayrmourya/vijaymourya/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates data artifacts from the YAML configs",
	Long: `The generate subcommands read a YAML config from the tools directory,
validate it, and overwrite the matching artifact in the artifacts directory.
A config with any invalid entry fails the run; the previous artifact is left
in place.`,
}

var generateBadgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Generates the badge certifications artifact",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := filepath.Join(appConfig.ToolsDir, "badge_certifications.yaml")
		fmt.Printf("Generating badge certifications from %s\n", configPath)

		cfg, err := generator.LoadBadgeConfig(configPath)
		if err != nil {
			return err
		}

		artifact, warnings, err := generator.GenerateBadges(cfg, "assets/badges", time.Now())
		for _, w := range warnings {
			fmt.Printf("Warning: %s\n", w)
		}
		if err != nil {
			return err
		}

		outputPath := filepath.Join(appConfig.ArtifactsDir, render.BadgesArtifactFile)
		if err := generator.WriteJSONArtifact(outputPath, artifact); err != nil {
			return err
		}

		fmt.Printf("Generated %s: %d certifications in %d categories\n",
			outputPath, artifact.TotalCount, len(artifact.Categories))
		for _, cat := range artifact.Categories {
			fmt.Printf("  %s %s: %d\n", cat.Icon, cat.DisplayName, cat.Count)
		}
		return nil
	},
}

var generateCertificatesCmd = &cobra.Command{
	Use:   "certificates",
	Short: "Generates the certificates artifact",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := filepath.Join(appConfig.ToolsDir, "certificates.yaml")
		fmt.Printf("Generating certificates from %s\n", configPath)

		cfg, err := generator.LoadCertificatesConfig(configPath)
		if err != nil {
			return err
		}

		artifact, err := generator.GenerateCertificates(cfg, time.Now())
		if err != nil {
			return err
		}

		outputPath := filepath.Join(appConfig.ArtifactsDir, render.CertificatesArtifactFile)
		if err := generator.WriteJSONArtifact(outputPath, artifact); err != nil {
			return err
		}

		fmt.Printf("Generated %s: %d certificates in %d categories\n",
			outputPath, artifact.TotalCount, len(artifact.Categories))
		return nil
	},
}

var generateExperienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Generates the experience HTML fragment",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := filepath.Join(appConfig.ToolsDir, "experience.yaml")
		fmt.Printf("Generating experience fragment from %s\n", configPath)

		cfg, err := generator.LoadExperienceConfig(configPath)
		if err != nil {
			return err
		}

		fragment, err := generator.GenerateExperience(cfg, time.Now())
		if err != nil {
			return err
		}

		outputPath := filepath.Join(appConfig.ArtifactsDir, render.ExperienceArtifactFile)
		if err := generator.WriteArtifact(outputPath, fragment); err != nil {
			return err
		}

		fmt.Printf("Generated %s: %d entries\n", outputPath, len(cfg.Experience))
		return nil
	},
}

var generateAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Runs every generator",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, sub := range []*cobra.Command{generateBadgesCmd, generateCertificatesCmd, generateExperienceCmd} {
			if err := sub.RunE(sub, nil); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	generateCmd.AddCommand(generateBadgesCmd)
	generateCmd.AddCommand(generateCertificatesCmd)
	generateCmd.AddCommand(generateExperienceCmd)
	generateCmd.AddCommand(generateAllCmd)
	rootCmd.AddCommand(generateCmd)
}
