package cli

import (
	"context"
	"os/signal"
	"syscall"

	"legalgpt-portal/knowledge"
	"legalgpt-portal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the consultation backend and reference data API",
	Long: `Serve the HTTP API:

  GET  /health               liveness
  GET  /api/sections         section ids and labels
  GET  /api/provisions       provisions, optionally ?category=<name|all>
  GET  /api/cases            landmark cases
  GET  /api/project          project information
  POST /api/predict          legal consultation
  GET  /api/consultations    recent consultations
  GET  /metrics              prometheus metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, cleanup, err := server.NewConsultationService(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		srv := server.New(cfg, knowledge.Default(), svc, logger)
		return server.Run(ctx, srv, logger)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :7860)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}
