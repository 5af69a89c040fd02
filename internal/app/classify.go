package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scanready/scanready/internal/classifier"
	"github.com/scanready/scanready/internal/output"
)

var classifyFlagFile string

var classifyCmd = &cobra.Command{
	Use:   "classify [error-text]",
	Short: "Classify a raw scanner error message",
	Long: `Classify matches a raw scanner error against known failure patterns and
reports the category, any file paths and missing parameters extracted from
the message, whether the failure is recoverable by regenerating
configuration, and a suggested fix.

The error text can be passed as an argument, read from a file with --file,
or piped on stdin:

  sonar-scanner 2>&1 | scanready classify`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyFlagFile, "file", "", "Read the error text from a file instead of an argument")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		output.SetNoColor(true)
	}

	raw, err := readErrorText(args)
	if err != nil {
		return err
	}

	parsed := classifier.Classify(raw)
	recoverable := classifier.IsRecoverable(parsed)

	if flagJSON {
		out := struct {
			classifier.ParsedScanError
			Recoverable    bool   `json:"recoverable"`
			Recommendation string `json:"recommendation"`
		}{parsed, recoverable, classifier.RecoveryRecommendation(parsed)}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(output.Section("Scan Error Classification"))
	fmt.Println()
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Category:"), categoryBadge(parsed.Category, recoverable))
	if recoverable {
		fmt.Printf(" %s %s\n", output.StyleLabel.Render("Recoverable:"), output.StyleSuccess.Render("yes"))
	} else {
		fmt.Printf(" %s %s\n", output.StyleLabel.Render("Recoverable:"), output.StyleError.Render("no"))
	}

	if len(parsed.AffectedPaths) > 0 {
		fmt.Printf(" %s %s\n", output.StyleLabel.Render("Affected paths:"), strings.Join(parsed.AffectedPaths, ", "))
	}
	if len(parsed.MissingParameters) > 0 {
		fmt.Printf(" %s %s\n", output.StyleLabel.Render("Missing parameters:"), strings.Join(parsed.MissingParameters, ", "))
	}

	fmt.Println()
	fmt.Printf(" %s\n", output.StyleBold.Render("Suggested fix:"))
	fmt.Printf("   %s\n", parsed.SuggestedFix)
	fmt.Println()
	fmt.Printf(" %s\n", output.StyleBold.Render("Recommendation:"))
	fmt.Printf("   %s\n\n", classifier.RecoveryRecommendation(parsed))
	return nil
}

// readErrorText resolves the error text from the argument, --file, or stdin.
func readErrorText(args []string) (string, error) {
	if classifyFlagFile != "" {
		data, err := os.ReadFile(classifyFlagFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", classifyFlagFile, err)
		}
		return string(data), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}

	// Read from stdin when it is not a terminal.
	info, err := os.Stdin.Stat()
	if err == nil && (info.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		if len(strings.TrimSpace(string(data))) > 0 {
			return string(data), nil
		}
	}

	return "", fmt.Errorf("no error text given: pass it as an argument, use --file, or pipe it on stdin")
}

// categoryBadge styles a category by whether it can be recovered from.
func categoryBadge(cat classifier.Category, recoverable bool) string {
	if recoverable {
		return output.StyleWarning.Render(string(cat))
	}
	return output.StyleError.Render(string(cat))
}
