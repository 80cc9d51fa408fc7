package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijayrmourya/vijaymourya/internal/config"
	"github.com/vijayrmourya/vijaymourya/internal/model"

	"github.com/spf13/viper"
)

var cfgFile string
var appConfig config.Config
var siteData *model.SiteData

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - the portfolio site toolchain",
	Long: `folio generates the data artifacts behind the portfolio site
(badge certifications, certificates, experience, Medium posts), builds the
static pages that embed them, and publishes the results.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute(site *model.SiteData) {
	siteData = site
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	v.SetDefault("outputDir", "public")
	v.SetDefault("baseURL", "")
	v.SetDefault("siteTitle", "Vijay Mourya")
	v.SetDefault("toolsDir", "tools")
	v.SetDefault("artifactsDir", "assets/data")
	v.SetDefault("medium.username", "vjmourya")
	v.SetDefault("medium.maxPosts", 6)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found in current directory: %w", cfgFile, err)
			}
			fmt.Println("No config file specified or found in current directory. Using default values and/or environment variables.")
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Println("Using config file:", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return nil
}
