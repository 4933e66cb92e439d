// wordmatch is a terminal word matching game: pair each Kinyarwanda noun
// with its plural to clear a level.
//
// Usage:
//
//	wordmatch play [pack]       - Play a pack (default: kinyarwanda)
//	wordmatch list              - List available packs
//	wordmatch show <pack>       - Show the levels and pairs of a pack
//	wordmatch check <file>      - Validate a YAML catalog file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for a reproducible card order
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import packs to register them
	_ "github.com/vovakirdan/word-match/internal/packs/kinyarwanda"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordmatch",
	Short: "Word Match - pair singular and plural nouns in your terminal",
	Long: `Word Match lays out the words of a level as cards. Pick two cards
that form a singular/plural pair to match them, and clear every pair to
move on to the next level.

Available commands:
  play     - Play a pack
  list     - Show all available packs
  show     - Show the levels and pairs of a pack
  check    - Validate a YAML catalog file

Examples:
  wordmatch play
  wordmatch play --start-level 2
  wordmatch play --catalog ./my-words.yaml
  wordmatch show kinyarwanda`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger builds the logger selected by the global flags. The terminal
// belongs to the game while it runs, so without --log-file logs go nowhere.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), closer, nil
}
