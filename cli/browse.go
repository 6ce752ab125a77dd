package cli

import (
	"legalgpt-portal/client"
	"legalgpt-portal/knowledge"
	"legalgpt-portal/tui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var browseLogFile string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive terminal portal",
	Long: `Browse provisions, landmark cases and project information, and send legal
queries to the consultation backend (see --api-url).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// the terminal owns stdout and stderr while the portal runs
		logger := zap.NewNop()
		if browseLogFile != "" {
			if logger, err = newLogger(cfg, browseLogFile); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
		}

		backend := client.New(cfg.API, client.WithAPIKey(cfg.APIKey))
		m, err := tui.New(knowledge.Default(), backend,
			tui.WithToastDuration(cfg.UI.ToastDuration),
			tui.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		logger.Info("portal started", zap.String("backend", cfg.API.URL()))
		return tui.Run(m)
	},
}

func init() {
	browseCmd.Flags().String("api-url", "", "consultation backend base URL (default http://localhost:7860)")
	browseCmd.Flags().StringVar(&browseLogFile, "log-file", "", "write logs to this file")
	_ = viper.BindPFlag("api.base_url", browseCmd.Flags().Lookup("api-url"))

	rootCmd.AddCommand(browseCmd)
}
