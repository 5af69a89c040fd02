package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scanready/scanready/internal/config"
	"github.com/scanready/scanready/internal/output"
	"github.com/scanready/scanready/internal/store"
)

var (
	historyFlagLimit   int
	historyFlagProject string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show validation trends over time",
	Long: `History reads the local database of recorded validation runs and shows
how completeness scores and scan quality have moved over time. Use
--project to focus on a single project and see its latest delta.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 20, "Maximum number of runs to show")
	historyCmd.Flags().StringVar(&historyFlagProject, "project", "", "Only show runs for this project path")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		output.SetNoColor(true)
	}

	dbPath := config.DBPath()
	if _, err := os.Stat(dbPath); err != nil {
		fmt.Println(" No history yet. Run 'scanready validate' to record a first run.")
		return nil
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if historyFlagProject != "" {
		return renderProjectHistory(db, historyFlagProject)
	}
	return renderRecentHistory(db)
}

// renderRecentHistory shows the most recent runs across all projects.
func renderRecentHistory(db *store.DB) error {
	runs, snaps, err := db.RecentRuns(historyFlagLimit)
	if err != nil {
		return fmt.Errorf("loading runs: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println(" No history yet. Run 'scanready validate' to record a first run.")
		return nil
	}

	fmt.Println(output.Section("Validation History"))
	fmt.Println()

	tbl := output.NewTable("When", "Project", "Quality", "Score", "Languages", "Missing Critical")
	for i, run := range runs {
		tbl.AddRow(
			snaps[i].TakenAt.Format("2006-01-02 15:04"),
			run.Project,
			run.ScanQuality,
			fmt.Sprintf("%d", run.CompletenessScore),
			fmt.Sprintf("%d", run.LanguageCount),
			fmt.Sprintf("%d", run.MissingCritical),
		)
	}
	tbl.Print()
	fmt.Println()
	return nil
}

// renderProjectHistory shows one project's runs plus its latest delta.
func renderProjectHistory(db *store.DB, project string) error {
	runs, err := db.RunsForProject(project, historyFlagLimit)
	if err != nil {
		return fmt.Errorf("loading runs for %s: %w", project, err)
	}

	delta, err := db.LatestDelta(project)
	if err != nil {
		return fmt.Errorf("computing delta: %w", err)
	}

	if flagJSON {
		out := map[string]any{"runs": runs}
		if delta != nil {
			out["delta"] = delta
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(runs) == 0 {
		fmt.Printf(" No recorded runs for %s.\n", project)
		return nil
	}

	fmt.Println(output.Section("Project History: " + project))
	fmt.Println()

	tbl := output.NewTable("Quality", "Score", "Config", "Languages", "Properties", "Warnings")
	for _, run := range runs {
		configStr := output.StyleError.Render("missing")
		if run.ConfigExists {
			configStr = output.StyleSuccess.Render("present")
		}
		tbl.AddRow(
			run.ScanQuality,
			fmt.Sprintf("%d", run.CompletenessScore),
			configStr,
			fmt.Sprintf("%d", run.LanguageCount),
			fmt.Sprintf("%d", run.PropertyCount),
			fmt.Sprintf("%d", run.WarningCount),
		)
	}
	tbl.Print()

	if delta != nil {
		fmt.Println()
		fmt.Printf(" %s %s (%d → %d)\n",
			output.StyleLabel.Render("Score trend:"),
			output.TrendArrow(float64(delta.ScoreDelta), true),
			delta.PreviousScore, delta.CurrentScore)
		if delta.PreviousQuality != delta.CurrentQuality {
			fmt.Printf(" %s %s → %s\n",
				output.StyleLabel.Render("Quality:"),
				delta.PreviousQuality, delta.CurrentQuality)
		}
	}
	fmt.Println()
	return nil
}
