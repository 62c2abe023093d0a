package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartlabel/pkg/chart"
	"github.com/matzehuels/chartlabel/pkg/label"
	"github.com/matzehuels/chartlabel/pkg/pipeline"
)

// layoutCommand creates the layout command for inspecting label placement.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		name      string
		themeName string
		output    string
		width     float64
		height    float64
		noCache   bool
		refresh   bool
	)

	cmd := &cobra.Command{
		Use:   "layout <chart.yaml>",
		Short: "Show where each label is placed",
		Long: `Place the labels of a chart without rendering it and print them as a table.

Labels the resolver moved off their default position are highlighted; the
Leader column shows whether a connector line joins them to their data.
With --output the placement is also written as JSON (same format as
'render -f json').`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ch, _, err := c.loadChart(args[0], name)
			if err != nil {
				return err
			}
			opts, err := c.pipelineOptions(themeName)
			if err != nil {
				return err
			}
			opts.Width, opts.Height, opts.Refresh = width, height, refresh
			return c.runLayout(ctx, args[0], ch, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&name, "chart", "c", "", "chart to lay out from a multi-chart document")
	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "theme used to resolve label colors")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the placement as JSON")
	cmd.Flags().Float64Var(&width, "width", 0, "canvas width (default: chart width or 640)")
	cmd.Flags().Float64Var(&height, "height", 0, "canvas height (default: chart height or 400)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, input string, ch *chart.Chart, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	done := timed(loggerFromContext(ctx))
	l, err := runner.Layout(ctx, ch, opts)
	if err != nil {
		return err
	}
	done("Laid out %s", chartName(ch))

	fmt.Fprintln(stdout, labelTable(l.Labels, l.Gauge))
	if l.Center != nil {
		printKeyValue("center", fmt.Sprintf("%q at (%.1f, %.1f)", l.Center.Lines, l.Center.X, l.Center.Y))
	}

	if output != "" {
		data, err := l.JSON(opts.Theme)
		if err != nil {
			return err
		}
		if err := writeOutput(output, data); err != nil {
			return err
		}
		printFile(output)
	}

	printStats(l.Count(), l.Displaced(), false)
	printNewline()
	printNextStep("Render", "chartlabel render "+input)
	return nil
}

// labelTable renders placed labels, including gauge labels, as a bordered
// table. Displaced rows are highlighted.
func labelTable(labels []label.PlacedLabel, gauge *label.GaugeLayout) string {
	all := labels
	if gauge != nil {
		all = append(append([]label.PlacedLabel(nil), labels...), gauge.Labels...)
	}

	rows := make([][]string, 0, len(all))
	for _, p := range all {
		leader := ""
		if p.Leader.Visible() {
			leader = p.Leader.Shape.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(p.Record.Series),
			strconv.Itoa(p.Record.Index),
			p.Record.Kind.String(),
			p.Text,
			fmt.Sprintf("%.1f", p.TargetX),
			fmt.Sprintf("%.1f", p.TargetY),
			p.Side.String(),
			leader,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Series", "Index", "Kind", "Text", "X", "Y", "Side", "Leader").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if row < len(all) && all[row].Displaced() {
				return StyleMoved
			}
			if col == 4 || col == 5 {
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}
