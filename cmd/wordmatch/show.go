package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-match/internal/catalog"
	"github.com/vovakirdan/word-match/internal/registry"
)

var flagShowYAML bool

var showCmd = &cobra.Command{
	Use:   "show <pack>",
	Short: "Show the levels and pairs of a pack",
	Long: `Display every level of the specified pack with its word pairs.

With --yaml the pack is printed in the catalog file format, ready to be
edited and played with 'wordmatch play --catalog'.

Examples:
  wordmatch show kinyarwanda
  wordmatch show kinyarwanda --yaml > my-words.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowYAML, "yaml", false, "Print the pack as a YAML catalog")
}

func runShow(cmd *cobra.Command, args []string) error {
	pack, err := registry.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w\nRun 'wordmatch list' to see available packs", err)
	}

	if flagShowYAML {
		data, err := catalog.MarshalYAML(pack)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	fmt.Println(headerStyle.Render(pack.Title))
	fmt.Println()
	fmt.Println(pairTable(pack).View())
	return nil
}

// pairTable lays out one row per pair, numbered by level.
func pairTable(pack catalog.Catalog) table.Model {
	var rows []table.Row
	for i, level := range pack.Levels {
		for _, p := range level.Pairs {
			rows = append(rows, table.Row{strconv.Itoa(i + 1), level.Name, p.Singular, p.Plural})
		}
	}

	columns := []table.Column{
		{Title: "Level", Width: 5},
		{Title: "Name", Width: 12},
		{Title: "Singular", Width: 14},
		{Title: "Plural", Width: 14},
	}
	for _, r := range rows {
		columns[1].Width = max(columns[1].Width, len(r[1]))
		columns[2].Width = max(columns[2].Width, len(r[2]))
		columns[3].Width = max(columns[3].Width, len(r[3]))
	}

	styles := table.DefaultStyles()
	styles.Selected = styles.Cell

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(styles),
	)
}
