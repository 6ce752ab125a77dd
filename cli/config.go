package cli

import (
	"fmt"

	"legalgpt-portal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect Legal-GPT configuration",
	Long: `Inspect Legal-GPT configuration.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (LEGALGPT_*, GEMINI_API_KEY, DATABASE_URL, AWS_*)
3. .env file in the working directory
4. Config file (~/.legalgpt/config.yaml)
5. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration with secrets redacted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		errOut := cmd.ErrOrStderr()
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(errOut, "Configuration file: %s\n\n", used)
		} else {
			fmt.Fprintf(errOut, "No configuration file found (using defaults)\n\n")
		}

		return writeConfig(cmd, cfg)
	},
}

func writeConfig(cmd *cobra.Command, cfg *config.Config) error {
	yamlData, err := yaml.Marshal(cfg.Redacted())
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(yamlData)
	return err
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
