package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scanready/scanready/internal/config"
	"github.com/scanready/scanready/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server for use with AI tooling",
	Long: `Start a Model Context Protocol stdio server that coding assistants can
query during a session. The server exposes five tools:

  validate_project     Full pre-scan validation for a project directory
  classify_scan_error  Categorize raw scanner error output
  score_config         Completeness score of an existing configuration
  plan_recovery        Classify a failure and propose regenerated config
  suggest_improvements Ranked configuration improvement suggestions

Add to your assistant's MCP configuration:
  {"mcpServers":{"scanready":{"command":"scanready","args":["mcp"]}}}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	srv := mcp.NewServer(newValidator(cfg), appVersion)
	return srv.Run(cmd.Context(), os.Stdin, os.Stdout)
}
