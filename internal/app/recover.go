package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scanready/scanready/internal/config"
	"github.com/scanready/scanready/internal/output"
	"github.com/scanready/scanready/internal/recovery"
)

var (
	recoverFlagFile  string
	recoverFlagApply bool
)

var recoverCmd = &cobra.Command{
	Use:   "recover [project-path] [error-text]",
	Short: "Plan (and optionally apply) configuration recovery after a failed scan",
	Long: `Recover classifies a scanner failure and, when the category is one that
regenerated configuration can fix, re-analyzes the project and proposes a
new sonar-project.properties built from the detected properties.

By default the proposed file is printed without touching anything. Pass
--apply to write it to the project root; an existing file is backed up
with a .bak suffix first.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRecover,
}

func init() {
	recoverCmd.Flags().StringVar(&recoverFlagFile, "file", "", "Read the error text from a file")
	recoverCmd.Flags().BoolVar(&recoverFlagApply, "apply", false, "Write the regenerated configuration to the project")
	rootCmd.AddCommand(recoverCmd)
}

func runRecover(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	projectPath := args[0]

	var raw string
	switch {
	case recoverFlagFile != "":
		data, err := os.ReadFile(recoverFlagFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", recoverFlagFile, err)
		}
		raw = string(data)
	case len(args) == 2:
		raw = args[1]
	default:
		return fmt.Errorf("no error text given: pass it as the second argument or use --file")
	}

	coordinator := recovery.New(newValidator(cfg))
	plan := coordinator.Plan(projectPath, raw)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	renderPlan(plan)

	if !plan.Regenerate {
		return nil
	}

	if !recoverFlagApply {
		fmt.Println(output.StyleMuted.Render(" Dry run. Pass --apply to write this file."))
		fmt.Println()
		return nil
	}

	target := filepath.Join(projectPath, cfg.PropertiesFile)
	if err := writeWithBackup(target, plan.Rendered); err != nil {
		return fmt.Errorf("applying recovery: %w", err)
	}
	fmt.Printf(" %s wrote %s\n\n", output.StyleSuccess.Render("✓"), target)
	return nil
}

// renderPlan prints the classification verdict and, when present, the
// regenerated file content.
func renderPlan(plan recovery.Plan) {
	fmt.Println(output.Section("Recovery Plan"))
	fmt.Println()
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Category:"), categoryBadge(plan.Error.Category, plan.Recoverable))

	if !plan.Recoverable {
		fmt.Printf(" %s %s\n\n", output.StyleLabel.Render("Recoverable:"), output.StyleError.Render("no"))
		fmt.Printf(" %s\n   %s\n\n", output.StyleBold.Render("Recommendation:"), plan.Recommendation)
		return
	}

	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Recoverable:"), output.StyleSuccess.Render("yes"))

	if plan.Validation != nil {
		fmt.Printf(" %s %d language(s), %d detected propert%s\n",
			output.StyleLabel.Render("Analysis:"),
			len(plan.Validation.Languages),
			len(plan.Validation.DetectedProperties),
			pluralYIes(len(plan.Validation.DetectedProperties)))
	}

	if !plan.Regenerate {
		fmt.Println()
		fmt.Printf(" %s\n   %s\n\n", output.StyleBold.Render("Recommendation:"), plan.Recommendation)
		fmt.Println(output.StyleMuted.Render(" Nothing was detected to regenerate configuration from."))
		fmt.Println()
		return
	}

	fmt.Println(output.Section("Regenerated Configuration"))
	fmt.Println()
	fmt.Println(plan.Rendered)
}

// writeWithBackup writes content to path, preserving any existing file as
// path.bak first.
func writeWithBackup(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+".bak"); err != nil {
			return fmt.Errorf("backing up existing file: %w", err)
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

func pluralYIes(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
