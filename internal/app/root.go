// Package app contains the Cobra command tree for scanready.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/scanready/scanready/internal/analyzer"
	"github.com/scanready/scanready/internal/config"
	"github.com/scanready/scanready/internal/validator"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "scanready",
	Short: "Pre-scan validation and recovery for SonarQube scanner configuration",
	Long: `scanready inspects a project before a SonarQube scan runs, detects its
languages and build layout, scores the existing scanner configuration, and
turns scanner failures into concrete recovery steps. A scan should degrade,
never abort: validation always completes and always reports what it found.

Run 'scanready validate' in a project root to get started.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("scanready", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  validate  Detect languages and validate scanner configuration")
		fmt.Println("  score     Score an existing sonar-project.properties file")
		fmt.Println("  classify  Classify a raw scanner error message")
		fmt.Println("  recover   Plan (and optionally apply) configuration recovery")
		fmt.Println("  suggest   Generate ranked configuration improvements")
		fmt.Println("  history   Show validation trends over time")
		fmt.Println("  watch     Re-validate a project and alert on regressions")
		fmt.Println("  doctor    Check whether the scanready setup is healthy")
		fmt.Println("  mcp       Run an MCP stdio server for use with AI tooling")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/scanready/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// newValidator builds a validator from the configuration, wiring the
// configured resolve timeout into the Java analyzer.
func newValidator(cfg *config.Config) *validator.Validator {
	registry := validator.NewRegistry()

	java := analyzer.NewJavaAnalyzer()
	if cfg.ResolveTimeoutSeconds > 0 {
		java.ResolveTimeout = time.Duration(cfg.ResolveTimeoutSeconds) * time.Second
	}
	registry.Register(java)
	registry.Register(analyzer.NewPythonAnalyzer())
	registry.Register(analyzer.NewJavaScriptAnalyzer())
	registry.Register(analyzer.NewGoAnalyzer())
	registry.Register(analyzer.NewCppAnalyzer())

	return validator.New(registry, cfg.PropertiesFile)
}
