package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAML input shapes for the generators. These are the hand-authored configs
// under the tools directory; unknown keys are rejected so a typo fails the
// run instead of silently dropping data.

type BadgeCategoryMeta struct {
	DisplayName string `yaml:"display_name"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
	Description string `yaml:"description"`
	SortOrder   int    `yaml:"sort_order"`
}

type BadgeEntry struct {
	Title           string `yaml:"title"`
	Provider        string `yaml:"provider"`
	Category        string `yaml:"category"`
	BadgeImage      string `yaml:"badge_image"`
	VerificationURL string `yaml:"verification_url"`
	IssueDate       string `yaml:"issue_date"`
	ExpiryDate      string `yaml:"expiry_date"`
	CredentialID    string `yaml:"credential_id"`
	Description     string `yaml:"description"`
}

type BadgeConfig struct {
	Categories     map[string]BadgeCategoryMeta `yaml:"categories"`
	Certifications []BadgeEntry                 `yaml:"certifications"`
}

type CertificateEntry struct {
	Title    string `yaml:"title"`
	Provider string `yaml:"provider"`
	File     string `yaml:"file"`
}

type CertificateCategoryConfig struct {
	Key          string             `yaml:"key"`
	DisplayName  string             `yaml:"display_name"`
	Icon         string             `yaml:"icon"`
	Color        string             `yaml:"color"`
	Certificates []CertificateEntry `yaml:"certificates"`
}

type CertificatesConfig struct {
	Categories []CertificateCategoryConfig `yaml:"categories"`
}

type ExperienceEntry struct {
	Role       string   `yaml:"role"`
	Company    string   `yaml:"company"`
	Location   string   `yaml:"location"`
	Start      string   `yaml:"start"`
	End        string   `yaml:"end"`
	Summary    string   `yaml:"summary"`
	Highlights []string `yaml:"highlights"`
}

type ExperienceConfig struct {
	Experience []ExperienceEntry `yaml:"experience"`
}

func LoadBadgeConfig(path string) (*BadgeConfig, error) {
	var cfg BadgeConfig
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadCertificatesConfig(path string) (*CertificatesConfig, error) {
	var cfg CertificatesConfig
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadExperienceConfig(path string) (*ExperienceConfig, error) {
	var cfg ExperienceConfig
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, out); err != nil {
		return fmt.Errorf("error unmarshalling config file %s: %w", path, err)
	}
	return nil
}
