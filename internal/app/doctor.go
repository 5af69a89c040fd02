package app

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/scanready/scanready/internal/config"
	"github.com/scanready/scanready/internal/output"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the scanready setup is healthy",
	Long: `Run a series of health checks against your scanready configuration and
the scanner toolchain. Prints a pass/fail line for each check and a summary
of how many checks passed.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		output.SetNoColor(true)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var checks []doctorCheck

	// 1. Scanner binary on PATH.
	checks = append(checks, checkBinary("sonar-scanner", "sonar-scanner binary", true))

	// 2. Build tools used for property detection and classpath resolution.
	checks = append(checks, checkBinary("mvn", "Maven (classpath resolution)", false))
	checks = append(checks, checkBinary("npm", "npm (JavaScript detection)", false))
	checks = append(checks, checkBinary("go", "Go toolchain", false))

	// 3. Configured project paths exist.
	checks = append(checks, checkProjectPaths(cfg.ProjectPaths)...)

	// 4. Properties file coverage across configured projects.
	checks = append(checks, checkPropertiesCoverage(cfg.ProjectPaths, cfg.PropertiesFile))

	// 5. Config directory is writable.
	checks = append(checks, checkConfigDir())

	// 6. SQLite history database.
	checks = append(checks, checkDatabase())

	// 7. Watch daemon.
	checks = append(checks, checkWatchDaemon())

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	if flagJSON {
		out := doctorOutput{
			Checks:      checks,
			PassedCount: passed,
			TotalCount:  len(checks),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(output.Section("Doctor"))
	fmt.Println()

	for _, c := range checks {
		renderDoctorCheck(c)
	}

	fmt.Println()
	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Printf(" %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Printf(" %s\n\n", output.StyleWarning.Render(summary))
	}

	return nil
}

// renderDoctorCheck prints a single check result line.
func renderDoctorCheck(c doctorCheck) {
	var indicator string
	if c.Passed {
		indicator = output.StyleSuccess.Render("✓")
	} else {
		indicator = output.StyleWarning.Render("✗")
	}
	label := output.StyleBold.Render(c.Name)
	detail := output.StyleMuted.Render(c.Message)
	fmt.Printf("  %s  %-34s %s\n", indicator, label, detail)
}

// checkBinary verifies that a binary is resolvable on PATH. Optional tools
// fail softly with a hint rather than a hard failure message.
func checkBinary(bin, name string, required bool) doctorCheck {
	path, err := exec.LookPath(bin)
	if err != nil {
		msg := fmt.Sprintf("%s not found on PATH", bin)
		if !required {
			msg += " (only needed for some analyzers)"
		}
		return doctorCheck{Name: name, Passed: false, Message: msg}
	}
	return doctorCheck{Name: name, Passed: true, Message: path}
}

// checkProjectPaths verifies that each configured project path exists.
func checkProjectPaths(paths []string) []doctorCheck {
	if len(paths) == 0 {
		return []doctorCheck{{
			Name:    "Project paths",
			Passed:  false,
			Message: "no project paths configured",
		}}
	}

	var checks []doctorCheck
	for _, p := range paths {
		abs, _ := filepath.Abs(p)
		_, err := os.Stat(p)
		if err != nil {
			checks = append(checks, doctorCheck{
				Name:    fmt.Sprintf("Project path: %s", filepath.Base(abs)),
				Passed:  false,
				Message: fmt.Sprintf("not found: %s", p),
			})
		} else {
			checks = append(checks, doctorCheck{
				Name:    fmt.Sprintf("Project path: %s", filepath.Base(abs)),
				Passed:  true,
				Message: abs,
			})
		}
	}
	return checks
}

// checkPropertiesCoverage counts configured projects with a properties file.
func checkPropertiesCoverage(paths []string, propsFile string) doctorCheck {
	if len(paths) == 0 {
		return doctorCheck{
			Name:    "Properties coverage",
			Passed:  false,
			Message: "no project paths configured",
		}
	}

	with := 0
	for _, p := range paths {
		if _, err := os.Stat(filepath.Join(p, propsFile)); err == nil {
			with++
		}
	}

	return doctorCheck{
		Name:    "Properties coverage",
		Passed:  with > 0,
		Message: fmt.Sprintf("%d/%d projects have %s", with, len(paths), propsFile),
	}
}

// checkConfigDir verifies the config directory exists or can be created.
func checkConfigDir() doctorCheck {
	dir := config.ConfigDir()
	info, err := os.Stat(dir)
	if err != nil {
		return doctorCheck{
			Name:    "Config directory",
			Passed:  false,
			Message: fmt.Sprintf("not found: %s (created on first validate)", dir),
		}
	}
	if !info.IsDir() {
		return doctorCheck{
			Name:    "Config directory",
			Passed:  false,
			Message: fmt.Sprintf("path exists but is not a directory: %s", dir),
		}
	}
	return doctorCheck{Name: "Config directory", Passed: true, Message: dir}
}

// checkDatabase verifies that the SQLite database file exists.
func checkDatabase() doctorCheck {
	dbPath := config.DBPath()
	_, err := os.Stat(dbPath)
	if err != nil {
		return doctorCheck{
			Name:    "History database",
			Passed:  false,
			Message: fmt.Sprintf("not found at %s (run 'scanready validate' to create)", dbPath),
		}
	}
	return doctorCheck{Name: "History database", Passed: true, Message: dbPath}
}

// checkWatchDaemon checks whether the watch daemon PID file exists and the
// process is running.
func checkWatchDaemon() doctorCheck {
	pidPath := filepath.Join(config.ConfigDir(), "watch.pid")

	data, err := os.ReadFile(pidPath)
	if err != nil {
		return doctorCheck{
			Name:    "Watch daemon",
			Passed:  false,
			Message: "not running (no PID file)",
		}
	}

	pidStr := strings.TrimSpace(string(data))
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		return doctorCheck{
			Name:    "Watch daemon",
			Passed:  false,
			Message: fmt.Sprintf("invalid PID in file: %q", pidStr),
		}
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return doctorCheck{
			Name:    "Watch daemon",
			Passed:  false,
			Message: fmt.Sprintf("PID %d not found", pid),
		}
	}

	// Signal 0 checks process existence without sending an actual signal.
	if err := proc.Signal(syscall.Signal(0)); err != nil {
		return doctorCheck{
			Name:    "Watch daemon",
			Passed:  false,
			Message: fmt.Sprintf("PID %d is not running (stale PID file)", pid),
		}
	}

	return doctorCheck{
		Name:    "Watch daemon",
		Passed:  true,
		Message: fmt.Sprintf("running (PID %d)", pid),
	}
}
