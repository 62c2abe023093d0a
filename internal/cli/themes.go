package cli

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// themesCommand lists the available palettes, or the tokens of one.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes [name]",
		Short: "List themes or show the color tokens of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range c.Config.PaletteNames() {
					marker := "  "
					if name == c.Config.Theme {
						marker = StyleTitle.Render("* ")
					}
					fmt.Fprintln(stdout, marker+name)
				}
				return nil
			}

			palette, err := c.Config.Palette(args[0])
			if err != nil {
				return err
			}
			tokens := make([]string, 0, len(palette))
			for tok := range palette {
				tokens = append(tokens, tok)
			}
			slices.Sort(tokens)

			rows := make([][]string, len(tokens))
			for i, tok := range tokens {
				rows[i] = []string{tok, palette[tok], "██"}
			}
			fmt.Fprintln(stdout, table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Token", "Value", "").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return listHeaderStyle
					}
					if col == 2 && row < len(tokens) {
						return lipgloss.NewStyle().Foreground(lipgloss.Color(palette[tokens[row]]))
					}
					return StyleValue
				}).
				Render())
			return nil
		},
	}
}
