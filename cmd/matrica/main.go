// Package main provides the CLI entrypoint for matrica.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/matrica/internal/clipboard"
	"github.com/verte-zerg/matrica/internal/config"
	"github.com/verte-zerg/matrica/internal/form"
	"github.com/verte-zerg/matrica/internal/logger"
	"github.com/verte-zerg/matrica/internal/matrix"
	"github.com/verte-zerg/matrica/internal/model"
	"github.com/verte-zerg/matrica/internal/textgrid"
	"github.com/verte-zerg/matrica/internal/tui"
)

const (
	defaultLang         = matrix.LangRU
	defaultClipboard    = clipboard.ModeAuto
	defaultCopyFeedback = 2 * time.Second
)

var (
	uiLang         string
	uiClipboard    string
	uiCopyFeedback time.Duration
	debugLog       bool

	calcCopy    bool
	calcSummary bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "matrica",
		Short:         "Birth date numerology matrix",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runFormCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&uiLang, "lang", defaultLang, "label language (ru, en)")
	flags.StringVar(&uiClipboard, "clipboard", defaultClipboard, "clipboard mode (auto, native, osc52)")
	flags.DurationVar(&uiCopyFeedback, "copy-feedback", defaultCopyFeedback, "how long the copied notice stays visible")
	flags.BoolVar(&debugLog, "debug", false, "write debug logs")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runFormCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cleanup := setupLogger()
	defer cleanup()

	clip, err := clipboard.Select(cfg.Clipboard, os.Stderr)
	if err != nil {
		return err
	}
	logger.L().Info("form.start", "lang", cfg.Lang, "clipboard", clip.Name())

	m := tui.NewModel(tui.Deps{Config: cfg, Clipboard: clip, Logger: logger.L()})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc DAY MONTH YEAR",
		Short: "Print the matrix for a date",
		Args:  cobra.ExactArgs(3),
		RunE:  runCalcCmd,
	}
	cmd.Flags().BoolVar(&calcCopy, "copy", false, "copy the summary to the clipboard")
	cmd.Flags().BoolVar(&calcSummary, "summary", false, "print only the copy summary")
	return cmd
}

func runCalcCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cleanup := setupLogger()
	defer cleanup()

	sanitized := make([]string, len(args))
	for i, arg := range args {
		sanitized[i] = form.SanitizeDigits(arg)
	}
	date, err := form.NewValidator(cfg.Lang).Validate(sanitized[0], sanitized[1], sanitized[2])
	if err != nil {
		return err
	}
	result := matrix.Calculate(date.Day, date.Month, date.Year)
	logger.L().Debug("matrix.calculated", "destiny", result.Destiny)

	out := cmd.OutOrStdout()
	if calcSummary {
		if _, err := fmt.Fprintln(out, matrix.Summary(result)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		width := 0
		if f, ok := out.(*os.File); ok {
			width = textgrid.TerminalWidth(f)
		}
		if err := textgrid.Render(out, result, textgrid.Options{Lang: cfg.Lang, Width: width}); err != nil {
			return err
		}
	}

	if calcCopy {
		clip, err := clipboard.Select(cfg.Clipboard, os.Stderr)
		if err != nil {
			return err
		}
		if err := clip.Write(matrix.Summary(result)); err != nil {
			logger.L().Warn("clipboard.failed", "writer", clip.Name(), "err", err)
			logErrf("failed to copy summary: %v\n", err)
			return nil
		}
		logErrln(form.MessagesFor(cfg.Lang).Copied)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resolveConfig merges the config file under the flags and validates the result.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &uiLang, fileCfg.UI.Lang)
	applyStringConfig(cmd, "clipboard", &uiClipboard, fileCfg.UI.Clipboard)
	if fileCfg.UI.CopyFeedback != nil {
		d := fileCfg.UI.CopyFeedback.Duration
		applyDurationConfig(cmd, "copy-feedback", &uiCopyFeedback, &d)
	}

	cfg := model.Config{
		Lang:         strings.ToLower(strings.TrimSpace(uiLang)),
		Clipboard:    strings.ToLower(strings.TrimSpace(uiClipboard)),
		CopyFeedback: uiCopyFeedback,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if !matrix.SupportedLang(cfg.Lang) {
		return fmt.Errorf("--lang must be one of: %s, %s", matrix.LangRU, matrix.LangEN)
	}
	switch cfg.Clipboard {
	case clipboard.ModeAuto, clipboard.ModeNative, clipboard.ModeOSC52:
	default:
		return fmt.Errorf("--clipboard must be one of: auto, native, osc52")
	}
	if cfg.CopyFeedback <= 0 {
		return fmt.Errorf("--copy-feedback must be > 0")
	}
	return nil
}

func setupLogger() func() {
	cleanup, err := logger.Setup(logger.Config{Path: config.DefaultLogPath(), Debug: debugLog})
	if err != nil {
		logErrf("failed to open log file: %v\n", err)
		return func() {}
	}
	return func() {
		if cerr := cleanup(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target, value *time.Duration) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# matrica configuration
# Uncomment a value to enable it. CLI flags override config values.

[ui]
# lang = %q               # Label language: ru or en
# clipboard = %q        # Clipboard mode: auto, native or osc52
# copy-feedback = %q      # How long the copied notice stays visible
`,
		defaultLang,
		defaultClipboard,
		defaultCopyFeedback.String(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
