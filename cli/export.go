package cli

import (
	"fmt"

	"legalgpt-portal/app"
	"legalgpt-portal/export"
	"legalgpt-portal/knowledge"
	"legalgpt-portal/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a static HTML and Markdown snapshot of every section",
	Long: `Render every portal section to a standalone HTML document and a Markdown
document and store them, with a manifest, in the configured storage
(local directory or S3 bucket).`,
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

		store, err := storage.New(cmd.Context(), cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		a, err := app.New(knowledge.Default(), app.WithLogger(logger))
		if err != nil {
			return err
		}

		manifest, err := export.NewExporter(a, store, logger).Export(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Snapshot %s\n", manifest.ID)
		for _, d := range manifest.Documents {
			fmt.Fprintf(out, "  %-13s %-4s %s\n", d.Section, d.Format, d.Path)
		}
		fmt.Fprintf(out, "Manifest: %s\n", manifest.Path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("storage", "", "storage type: local or s3")
	exportCmd.Flags().String("output", "", "local storage directory")
	_ = viper.BindPFlag("storage.type", exportCmd.Flags().Lookup("storage"))
	_ = viper.BindPFlag("storage.local_path", exportCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(exportCmd)
}
