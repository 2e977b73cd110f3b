package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/statebars/pkg/chart/data"
)

func (c *CLI) weightsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "weights",
		Short: "Print the visual-weight table",
		Long: `Print the per-state visual weights ("ease of drawing") attached to every
entry, including overrides from the [weights] section of the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), weightsTable(cfg.DataWeights(), cfg.Weights))
			return nil
		},
	}
}

// weightsTable renders w sorted by abbreviation. Rows overridden in the
// config are marked.
func weightsTable(w data.Weights, overrides map[string]float64) string {
	all := w.All()
	abbrevs := make([]string, 0, len(all))
	for k := range all {
		abbrevs = append(abbrevs, k)
	}
	slices.Sort(abbrevs)

	overridden := make(map[string]bool, len(overrides))
	for k := range overrides {
		overridden[strings.ToUpper(k)] = true
	}

	rows := make([][]string, len(abbrevs))
	for i, a := range abbrevs {
		mark := ""
		if overridden[a] {
			mark = "config"
		}
		rows[i] = []string{a, strconv.FormatFloat(all[a], 'f', -1, 64), mark}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("State", "Weight", "Source").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return StyleNumber.Padding(0, 1)
			case col == 2:
				return StyleDim.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		}).
		Render() + "\n" + StyleDim.Render(fmt.Sprintf("  unlisted states use %g", data.DefaultWeight))
}
