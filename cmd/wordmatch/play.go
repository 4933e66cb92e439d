package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/word-match/internal/catalog"
	"github.com/vovakirdan/word-match/internal/config"
	"github.com/vovakirdan/word-match/internal/core"
	"github.com/vovakirdan/word-match/internal/games/wordmatch"
	"github.com/vovakirdan/word-match/internal/packs/kinyarwanda"
	"github.com/vovakirdan/word-match/internal/platform/tui"
	"github.com/vovakirdan/word-match/internal/registry"
)

var _ tui.Game = (*wordmatch.Game)(nil)

var (
	flagConfig     string
	flagCatalog    string
	flagStartLevel int
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a word pack",
	Long: `Start playing the specified pack, or the Kinyarwanda pack if none is given.

Controls:
  Mouse click          - Pick a card
  Arrows/hjkl          - Move the cursor
  Enter/Space          - Pick the card under the cursor
  ?                    - Show all keys
  Q/Ctrl+C             - Quit

Examples:
  wordmatch play
  wordmatch play kinyarwanda --start-level 3
  wordmatch play --catalog ./my-words.yaml
  wordmatch play --config ./my-layout.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Play a YAML catalog file instead of a registered pack")
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 1, "Level to start on (1-indexed)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	pack, err := resolvePack(args)
	if err != nil {
		return err
	}

	matchCfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := newLogger(pack.ID)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := wordmatch.New(pack,
		wordmatch.WithConfig(matchCfg),
		wordmatch.WithLogger(logger),
		wordmatch.WithStartLevel(flagStartLevel),
	)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// resolvePack picks the catalog to play: a --catalog file, the named pack,
// or the built-in default.
func resolvePack(args []string) (catalog.Catalog, error) {
	if flagCatalog != "" {
		if len(args) > 0 {
			return catalog.Catalog{}, fmt.Errorf("give either a pack name or --catalog, not both")
		}
		pack, err := catalog.LoadFile(flagCatalog)
		if err != nil {
			return catalog.Catalog{}, fmt.Errorf("load catalog: %w", err)
		}
		return pack, nil
	}

	id := kinyarwanda.ID
	if len(args) > 0 {
		id = args[0]
	}
	pack, err := registry.Get(id)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("%w\nRun 'wordmatch list' to see available packs", err)
	}
	return pack, nil
}
