package cli

import (
	"legalgpt-portal/app"
	"legalgpt-portal/knowledge"
	legalmcp "legalgpt-portal/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	mcpHTTP     bool
	mcpHTTPAddr string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the reference data as MCP tools",
	Long: `Expose list_categories, get_provisions, list_cases, get_project and
render_section over MCP. Uses stdio unless --http is given.`,
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

		kb := knowledge.Default()
		a, err := app.New(kb, app.WithLogger(logger))
		if err != nil {
			return err
		}
		s := legalmcp.NewServer(kb, a)

		if mcpHTTP {
			addr := mcpHTTPAddr
			if addr == "" {
				addr = cfg.MCP.Addr
			}
			logger.Info("starting MCP server", zap.String("transport", "http"), zap.String("addr", addr))
			return legalmcp.NewHTTPServer(s, "/mcp").Start(addr)
		}

		logger.Info("starting MCP server", zap.String("transport", "stdio"))
		return server.ServeStdio(s)
	},
}

func init() {
	mcpCmd.Flags().BoolVar(&mcpHTTP, "http", false, "serve over streamable HTTP instead of stdio")
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "addr", "", "HTTP listen address (default :8081)")

	rootCmd.AddCommand(mcpCmd)
}
