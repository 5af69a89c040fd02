package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scanready/scanready/internal/config"
	"github.com/scanready/scanready/internal/output"
)

var scoreCmd = &cobra.Command{
	Use:   "score [project-path]",
	Short: "Score an existing sonar-project.properties file",
	Long: `Score validates a project and reports only the configuration scoring:
whether a properties file exists, which detected properties it declares,
and a 0-100 completeness score weighted toward critical properties.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	v := newValidator(cfg)
	result := v.Validate(path)
	analysis := result.ExistingConfig

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	fmt.Println(output.Section("Configuration Score"))
	fmt.Println()

	if !analysis.Exists {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("File:"),
			output.StyleError.Render("not found at "+analysis.Path))
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Completeness:"),
			output.ScoreBar(float64(analysis.CompletenessScore), 20))
		fmt.Printf("\n Run 'scanready recover' or create %s to configure the scan.\n\n",
			filepath.Base(analysis.Path))
		return nil
	}

	fmt.Printf(" %s %s\n", output.StyleLabel.Render("File:"), analysis.Path)
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Declared properties:"),
		output.StyleValue.Render(fmt.Sprintf("%d", len(analysis.Properties))))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Completeness:"),
		output.ScoreBar(float64(analysis.CompletenessScore), 20))

	if len(analysis.MissingCritical) > 0 {
		fmt.Println(output.Section("Missing Critical"))
		fmt.Println()
		for _, key := range analysis.MissingCritical {
			fmt.Printf("  %s %s\n", output.StyleError.Render("✗"), key)
		}
	}

	if len(analysis.MissingRecommended) > 0 {
		fmt.Println(output.Section("Missing Recommended"))
		fmt.Println()
		for _, key := range analysis.MissingRecommended {
			fmt.Printf("  %s %s\n", output.StyleWarning.Render("−"), key)
		}
	}

	fmt.Println()
	return nil
}
