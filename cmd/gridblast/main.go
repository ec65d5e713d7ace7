// gridblast is a block-placement puzzle for the terminal.
//
// Usage:
//
//	gridblast list              - List board variants
//	gridblast play [variant]    - Play a variant (default: blast)
//	gridblast menu              - Pick variants interactively
//	gridblast serve             - Start SSH server for remote play
//	gridblast scores <variant>  - Show high scores for a variant
//	gridblast shapes            - Print the piece catalog
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30, GRIDBLAST_FPS)
//	--seed <value>   - Set RNG seed for reproducible piece order
//	--db <path>      - Set database path (GRIDBLAST_DB)
//	--config <path>  - Game config YAML (GRIDBLAST_CONFIG)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridblast/internal/config"
	"github.com/vovakirdan/gridblast/internal/games/blast"
	"github.com/vovakirdan/gridblast/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string

	logger   = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	settings = loadSettings()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridblast",
	Short: "Grid Blast - drop pieces, clear lines",
	Long: `Grid Blast is a terminal puzzle: place pieces from a three-slot tray
onto a square board. Full rows and columns vanish for points.

Available commands:
  list     - Show board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  shapes   - Print every piece in the catalog

Examples:
  gridblast play
  gridblast play blast_xl --seed 42
  gridblast menu
  gridblast serve --ssh :2222
  gridblast scores blast`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// loadSettings reads the environment and applies the log level.
func loadSettings() config.Settings {
	s, err := config.LoadSettings()
	if err != nil {
		logger.Warn("ignoring environment settings", "error", err)
	}
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		logger.Warn("unknown log level", "level", s.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return s
}

func init() {
	// Global persistent flags; environment values are the defaults.
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", settings.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", settings.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", settings.ConfigPath, "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shapesCmd)
}

// setup validates global flags and installs the game config.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, source, err := config.LoadBlastWithSource(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if source == config.SourceBuiltin {
		logger.Warn("no config file found, using built-in defaults")
	}
	logger.Debug("config loaded", "source", source)
	blast.SetConfig(cfg)
	return nil
}

// openStore opens the score database; a nil store means play without scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
