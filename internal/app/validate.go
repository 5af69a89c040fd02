package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/scanready/scanready/internal/config"
	"github.com/scanready/scanready/internal/output"
	"github.com/scanready/scanready/internal/store"
	"github.com/scanready/scanready/internal/validator"
)

var (
	validateFlagPaths  []string
	validateFlagNoSave bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [project-path...]",
	Short: "Detect languages and validate scanner configuration",
	Long: `Validate runs every language analyzer against each project root,
aggregates the detected scanner properties, scores any existing
sonar-project.properties file, and reports the resulting scan quality.

Validation never fails: a project with no detectable languages is reported
as degraded, not rejected. Each run is recorded in the local history
database unless --no-save is given.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringSliceVar(&validateFlagPaths, "path", nil, "Additional project paths to validate (can be repeated)")
	validateCmd.Flags().BoolVar(&validateFlagNoSave, "no-save", false, "Do not record this run in the history database")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	}

	// Determine project paths: args, then --path flags, then config defaults.
	paths := append([]string{}, args...)
	paths = append(paths, validateFlagPaths...)
	if len(paths) == 0 {
		paths = cfg.ProjectPaths
	}

	v := newValidator(cfg)

	// Validate each path concurrently, keeping results in input order.
	results := make([]validator.PreScanValidationResult, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			results[i] = v.Validate(path)
			return nil
		})
	}
	// Analyzers never return errors, so Wait cannot fail; kept for shape.
	_ = g.Wait()

	if !validateFlagNoSave {
		if err := saveValidationRuns(results); err != nil && flagVerbose {
			fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	}

	for i := range results {
		fmt.Print(output.Report(&results[i]))
	}
	return nil
}

// saveValidationRuns records one snapshot with a run row per project.
func saveValidationRuns(results []validator.PreScanValidationResult) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	snapshotID, err := db.CreateSnapshot("validate", appVersion)
	if err != nil {
		return err
	}

	for i := range results {
		r := &results[i]
		run := store.ValidationRun{
			SnapshotID:         snapshotID,
			Project:            r.ProjectPath,
			ScanQuality:        string(r.ScanQuality),
			CompletenessScore:  r.ExistingConfig.CompletenessScore,
			ConfigExists:       r.ExistingConfig.Exists,
			LanguageCount:      len(r.Languages),
			PropertyCount:      len(r.DetectedProperties),
			WarningCount:       len(r.Warnings),
			MissingCritical:    len(r.MissingCritical),
			MissingRecommended: len(r.MissingRecommended),
		}
		if err := db.RecordRun(snapshotID, run); err != nil {
			return err
		}
	}
	return nil
}
