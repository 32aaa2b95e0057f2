// Package main provides the CLI entrypoint for spellace.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/spellace/internal/catalog"
	"github.com/verte-zerg/spellace/internal/config"
	"github.com/verte-zerg/spellace/internal/game"
	"github.com/verte-zerg/spellace/internal/generator"
	"github.com/verte-zerg/spellace/internal/logging"
	"github.com/verte-zerg/spellace/internal/model"
	"github.com/verte-zerg/spellace/internal/penalty"
	"github.com/verte-zerg/spellace/internal/report"
	"github.com/verte-zerg/spellace/internal/store"
	"github.com/verte-zerg/spellace/internal/tui"
)

const defaultLogLevel = "info"

var (
	gameWords    int
	gameDuration int
	logLevel     string

	playDifficulty string
	playPenalty    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spellace",
		Short:         "Competitive spelling race in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runMenuCmd,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	addGameFlags(rootCmd)

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newTiersCmd())
	rootCmd.AddCommand(newPenaltiesCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newPackCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&gameWords, "words", game.DefaultWords, "words per game")
	cmd.Flags().IntVar(&gameDuration, "duration", game.DefaultDuration, "game duration in seconds")
}

func runMenuCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := gameConfig(cmd, fileCfg)
	if fileCfg.Game.Difficulty != nil {
		cfg.Difficulty = *fileCfg.Game.Difficulty
	}
	if fileCfg.Game.Penalty != nil {
		cfg.Penalty = *fileCfg.Game.Penalty
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	_, err = runTUI(cfg, nil)
	return err
}

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a game directly",
		Args:  cobra.NoArgs,
		RunE:  runPlayCmd,
	}
	addGameFlags(cmd)
	cmd.Flags().StringVar(&playDifficulty, "difficulty", catalog.DefaultDifficulty, "difficulty level (see: spellace tiers)")
	cmd.Flags().StringVar(&playPenalty, "penalty", "", "penalty system (see: spellace penalties); picked by difficulty when empty")
	return cmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "difficulty", &playDifficulty, fileCfg.Game.Difficulty)
	applyStringConfig(cmd, "penalty", &playPenalty, fileCfg.Game.Penalty)
	cfg := gameConfig(cmd, fileCfg)
	cfg.Difficulty = playDifficulty
	cfg.Penalty = playPenalty
	if err := validateConfig(cfg); err != nil {
		return err
	}

	launch := &tui.Launch{Difficulty: cfg.Difficulty}
	if cfg.Penalty != "" {
		p := penalty.Parse(cfg.Penalty)
		launch.Penalty = &p
	}
	app, err := runTUI(cfg, launch)
	if err != nil {
		return err
	}
	result, ok := app.LastResult()
	if !ok {
		return nil
	}
	level, _ := catalog.New(nil).DifficultyByID(result.Difficulty)
	if err := report.RenderResult(cmd.OutOrStdout(), result, level); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// gameConfig merges config file values into flags the user did not set.
func gameConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.Config {
	applyIntConfig(cmd, "words", &gameWords, fileCfg.Game.Words)
	applyIntConfig(cmd, "duration", &gameDuration, fileCfg.Game.Duration)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	return model.Config{
		Words:    gameWords,
		Duration: gameDuration,
		LogLevel: logLevel,
	}
}

func runTUI(cfg model.Config, launch *tui.Launch) (*tui.App, error) {
	logger, closeLog := tuiLogger(cfg.LogLevel)
	defer closeLog()

	cat := loadCatalog(context.Background(), logger)
	app := tui.NewApp(tui.Options{
		Catalog: cat,
		Config:  cfg,
		Logger:  logger,
		Launch:  launch,
	})
	logger.Info("starting", "words", cfg.Words, "duration", cfg.Duration)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("failed to run TUI: %w", err)
	}
	return app, nil
}

// tuiLogger writes to the log file since the alternate screen owns stdout.
func tuiLogger(level string) (*log.Logger, func()) {
	path := config.DefaultLogPath()
	file, err := logging.OpenFile(path)
	if err != nil {
		logErrf("logging disabled: %v\n", err)
		return logging.New(io.Discard, level), func() {}
	}
	return logging.New(file, level), func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}
}

func cliLogger() *log.Logger {
	return logging.New(os.Stderr, logLevel)
}

// loadCatalog returns the built-in catalog extended with stored word packs.
// Store failures are logged and leave the built-in words in place.
func loadCatalog(ctx context.Context, logger *log.Logger) *catalog.Catalog {
	cat := catalog.New(generator.New())
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logger.Warn("word packs unavailable", "err", err)
		return cat
	}
	defer closeStore(st, logger)

	packs, err := st.ListAll(ctx)
	if err != nil {
		logger.Warn("failed to read word packs", "err", err)
		return cat
	}
	for tier, words := range packs {
		added, err := cat.AddWords(tier, words)
		if err != nil {
			logger.Warn("skipping word pack", "tier", tier, "err", err)
			continue
		}
		logger.Debug("loaded word pack", "tier", tier, "words", added)
	}
	return cat
}

func closeStore(st *store.Store, logger *log.Logger) {
	if err := st.Close(); err != nil {
		logger.Warn("failed to close db", "err", err)
	}
}

func newTiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List difficulty levels",
		Args:  cobra.NoArgs,
		RunE:  runTiersCmd,
	}
}

func runTiersCmd(cmd *cobra.Command, _ []string) error {
	cat := loadCatalog(cmd.Context(), cliLogger())
	levels := cat.Levels()
	counts := make(map[string]int, len(levels))
	for _, level := range levels {
		counts[level.ID] = len(cat.WordsFor(level.ID))
	}
	if err := report.RenderLevels(cmd.OutOrStdout(), levels, counts); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newPenaltiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "penalties",
		Short: "List penalty systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := report.RenderPenalties(cmd.OutOrStdout(), penalty.Systems()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <tier>",
		Short: "Show the words of a difficulty level",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordsCmd,
	}
}

func runWordsCmd(cmd *cobra.Command, args []string) error {
	tier := args[0]
	if err := validateTier(tier); err != nil {
		return err
	}
	cat := loadCatalog(cmd.Context(), cliLogger())
	if err := report.RenderWords(cmd.OutOrStdout(), cat.WordsFor(tier)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
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
	if err := ensureConfigFile(path); err != nil {
		return err
	}
	parts, err := editorCommand(os.Getenv("EDITOR"))
	if err != nil {
		return err
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

// ensureConfigFile writes the commented template unless path exists.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func editorCommand(editor string) ([]string, error) {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}
	return parts, nil
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

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# spellace configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# difficulty = %q     # Level for play and the preselected quick practice level
# penalty = "none"          # none, points, time, strikes, progressive (empty: by level)
# words = %d                # Words per game
# duration = %d            # Game duration in seconds

[log]
# level = %q              # debug, info, warn, error
`,
		catalog.DefaultDifficulty,
		game.DefaultWords,
		game.DefaultDuration,
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if cfg.Difficulty != "" {
		if err := validateTier(cfg.Difficulty); err != nil {
			return fmt.Errorf("--difficulty: %w", err)
		}
	}
	if cfg.Penalty != "" {
		if _, err := penalty.ParseStrict(cfg.Penalty); err != nil {
			return fmt.Errorf("--penalty: %w", err)
		}
	}
	return nil
}

func validateTier(tier string) error {
	cat := catalog.New(nil)
	if cat.Known(tier) {
		return nil
	}
	ids := make([]string, 0, len(cat.Levels()))
	for _, level := range cat.Levels() {
		ids = append(ids, level.ID)
	}
	return fmt.Errorf("unknown tier %q (available: %s)", tier, strings.Join(ids, ", "))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
