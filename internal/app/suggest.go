package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scanready/scanready/internal/config"
	"github.com/scanready/scanready/internal/output"
	"github.com/scanready/scanready/internal/suggest"
)

var suggestFlagLimit int

var suggestCmd = &cobra.Command{
	Use:   "suggest [project-path]",
	Short: "Generate ranked configuration improvements",
	Long: `Suggest validates a project, runs the rule engine over the result, and
prints improvement recommendations ranked by estimated impact.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestFlagLimit, "limit", 10, "Maximum number of suggestions to show")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
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

	engine := suggest.NewEngine()
	suggestions := engine.Run(&suggest.Context{Result: &result})

	if suggestFlagLimit > 0 && len(suggestions) > suggestFlagLimit {
		suggestions = suggestions[:suggestFlagLimit]
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestions)
	}

	fmt.Println(output.Section("Suggestions"))
	fmt.Println()

	if len(suggestions) == 0 {
		fmt.Println(output.StyleSuccess.Render(" Nothing to improve. The configuration looks complete."))
		fmt.Println()
		return nil
	}

	for i, s := range suggestions {
		fmt.Printf(" %d. %s %s\n", i+1, priorityBadge(s.Priority), output.StyleBold.Render(s.Title))
		fmt.Printf("    %s\n", s.Description)
		fmt.Printf("    %s\n\n", output.StyleMuted.Render(fmt.Sprintf("category: %s, impact: %.1f", s.Category, s.ImpactScore)))
	}
	return nil
}

// priorityBadge renders a styled priority tag.
func priorityBadge(p int) string {
	switch p {
	case suggest.PriorityCritical:
		return output.StyleError.Render("[critical]")
	case suggest.PriorityHigh:
		return output.StyleWarning.Render("[high]")
	case suggest.PriorityMedium:
		return output.StyleBold.Render("[medium]")
	default:
		return output.StyleMuted.Render("[low]")
	}
}
