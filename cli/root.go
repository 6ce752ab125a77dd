// Package cli implements the legalgpt command line.
package cli

import (
	"fmt"

	"legalgpt-portal/config"
	"legalgpt-portal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "v0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "legalgpt",
	Short: "Legal-GPT - US legal reference portal and consultation backend",
	Long: `Legal-GPT presents US legal provisions, landmark Supreme Court cases and an
AI legal consultation assistant.

It provides information only. It is not legal advice and does not create an
attorney-client relationship.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "legalgpt %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.legalgpt/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration for the running command
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the command's logger, writing to outputs when given
func newLogger(cfg *config.Config, outputs ...string) (*zap.Logger, error) {
	return logging.New(cfg.Log.Level, cfg.Log.Development, outputs...)
}
