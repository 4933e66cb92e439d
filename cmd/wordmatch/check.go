package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-match/internal/catalog"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a YAML catalog file",
	Long: `Load a YAML catalog and report problems that would stop it from
being played: missing levels, empty words, or a word claimed by two pairs.

Examples:
  wordmatch check ./my-words.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "check"})

	path := args[0]
	pack, err := catalog.LoadFile(path)
	if err != nil {
		var verr catalog.ValidationError
		if errors.As(err, &verr) {
			logger.Error("invalid catalog", "file", path, "code", verr.Code, "reason", verr.Message)
		} else {
			logger.Error("cannot load catalog", "file", path, "err", err)
		}
		return fmt.Errorf("%s: check failed", path)
	}

	logger.Info("catalog ok", "file", path, "id", pack.ID, "levels", pack.Len(), "pairs", pack.PairCount())
	return nil
}
