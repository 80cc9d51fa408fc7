package config

type Config struct {
	SiteTitle string `mapstructure:"siteTitle"`
	OutputDir string `mapstructure:"outputDir"`
	BaseURL   string `mapstructure:"baseURL"`

	// Directory holding the hand-authored YAML configs consumed by the
	// generators (badge_certifications.yaml, certificates.yaml,
	// experience.yaml).
	ToolsDir string `mapstructure:"toolsDir"`

	// Directory the generators and fetcher write their artifacts into and
	// the build reads them back from.
	ArtifactsDir string `mapstructure:"artifactsDir"`

	Medium MediumConfig `mapstructure:"medium"`
}

// MediumConfig configures the medium feed fetcher.
type MediumConfig struct {
	Username string `mapstructure:"username"`
	MaxPosts int    `mapstructure:"maxPosts"`
}
