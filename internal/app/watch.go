package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/scanready/scanready/internal/config"
	"github.com/scanready/scanready/internal/watcher"
)

var (
	watchDaemon   bool
	watchInterval string
	watchStop     bool
	watchQuiet    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [project-path]",
	Short: "Re-validate a project and alert on regressions",
	Long: `Run a background monitor that periodically re-validates a project. When
the scan quality or completeness score regresses, a critical property goes
missing, or a new validation warning appears, desktop notifications and/or
terminal alerts are emitted.

Examples:
  scanready watch                    # watch the current directory
  scanready watch ~/src/api          # watch a specific project
  scanready watch --daemon           # run in background, write PID file
  scanready watch --interval 5m      # check every 5 minutes
  scanready watch --stop             # stop the background daemon`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchDaemon, "daemon", false, "Run in background mode (write PID file, log to file)")
	watchCmd.Flags().StringVar(&watchInterval, "interval", "", "Check interval as duration string (e.g. 30s, 5m)")
	watchCmd.Flags().BoolVar(&watchStop, "stop", false, "Stop a running background daemon")
	watchCmd.Flags().BoolVar(&watchQuiet, "quiet", false, "Suppress terminal output, only send notifications")
	rootCmd.AddCommand(watchCmd)
}

// pidFilePath returns the path to the daemon PID file.
func pidFilePath() string {
	return filepath.Join(config.ConfigDir(), "watch.pid")
}

// logFilePath returns the path to the daemon log file.
func logFilePath() string {
	return filepath.Join(config.ConfigDir(), "watch.log")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchStop {
		return stopDaemon()
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	projectPath := "."
	if len(args) == 1 {
		projectPath = args[0]
	}

	interval := time.Duration(cfg.WatchIntervalSeconds) * time.Second
	if watchInterval != "" {
		interval, err = time.ParseDuration(watchInterval)
		if err != nil {
			return fmt.Errorf("invalid interval %q: %w", watchInterval, err)
		}
	}
	if interval < 5*time.Second {
		return fmt.Errorf("interval must be at least 5s, got %s", interval)
	}

	if watchDaemon {
		return runDaemon(cfg, projectPath, interval)
	}

	return runForeground(cfg, projectPath, interval)
}

// runForeground runs the watcher in the foreground with live terminal output.
func runForeground(cfg *config.Config, projectPath string, interval time.Duration) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)
	go func() {
		<-sigCh
		cancel()
	}()

	if !watchQuiet {
		fmt.Printf("scanready watching %s (checking every %s)\n", projectPath, interval)
	}

	alertFn := func(a watcher.Alert) {
		// Send desktop notification.
		_ = watcher.Notify(a)

		// Print to terminal unless quiet mode.
		if !watchQuiet {
			printAlert(a)
		}
	}

	w := watcher.New(projectPath, newValidator(cfg), interval, alertFn)

	// Take initial snapshot and display baseline.
	initial := w.Snapshot()
	if !watchQuiet {
		fmt.Printf("[%s] %s Baseline: %s quality, score %d, %d language(s)\n",
			time.Now().Format("15:04:05"),
			checkMark(),
			initial.ScanQuality,
			initial.CompletenessScore,
			initial.LanguageCount)
	}

	err := w.Run(ctx)
	if err == context.Canceled {
		if !watchQuiet {
			fmt.Println("\nStopped.")
		}
		return nil
	}
	return err
}

// runDaemon sets up PID and log files, then runs the watcher. The actual
// backgrounding should be done by the caller (nohup, &, etc.) since Go
// cannot reliably fork.
func runDaemon(cfg *config.Config, projectPath string, interval time.Duration) error {
	// Ensure config directory exists.
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	// Check for existing daemon.
	if pid, err := readPID(); err == nil {
		if processExists(pid) {
			return fmt.Errorf("daemon already running (PID %d). Use --stop to stop it", pid)
		}
		// Stale PID file, remove it.
		_ = os.Remove(pidFilePath())
	}

	// Write PID file.
	pid := os.Getpid()
	if err := os.WriteFile(pidFilePath(), []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer func() { _ = os.Remove(pidFilePath()) }()

	// Open log file for output.
	logFile, err := os.OpenFile(logFilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)
	go func() {
		<-sigCh
		cancel()
	}()

	writeLog(logFile, "scanready daemon started (PID %d, project %s, interval %s)", pid, projectPath, interval)

	alertFn := func(a watcher.Alert) {
		// Send desktop notification.
		_ = watcher.Notify(a)

		// Log to file.
		writeLog(logFile, "[%s] %s: %s", a.Level, a.Title, a.Message)
	}

	w := watcher.New(projectPath, newValidator(cfg), interval, alertFn)

	err = w.Run(ctx)
	if err == context.Canceled {
		writeLog(logFile, "daemon stopped")
		return nil
	}
	return err
}

// readPID reads the daemon PID from the PID file.
func readPID() (int, error) {
	data, err := os.ReadFile(pidFilePath())
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(string(data))
}

// writeLog writes a timestamped line to the log file.
func writeLog(f *os.File, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(f, "[%s] %s\n", timestamp, msg)
}

// printAlert formats and prints an alert to the terminal.
func printAlert(a watcher.Alert) {
	timestamp := a.Time.Format("15:04:05")
	icon := alertIcon(a.Level)
	fmt.Printf("[%s] %s %s\n", timestamp, icon, a.Title)
	if a.Message != "" {
		fmt.Printf("         %s\n", a.Message)
	}
}

// alertIcon returns the terminal indicator for an alert level.
func alertIcon(level string) string {
	switch level {
	case "critical":
		return "\xf0\x9f\x94\xb4" // red circle
	case "warning":
		return "\xe2\x9a\xa0\xef\xb8\x8f" // warning sign
	case "info":
		return "\xe2\x9c\x93" // check mark
	default:
		return " "
	}
}

// checkMark returns a terminal check mark indicator.
func checkMark() string {
	return "\xe2\x9c\x93"
}
