package cli

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/matzehuels/chartlabel/pkg/chart"
	chartio "github.com/matzehuels/chartlabel/pkg/io"
)

// loadChart reads the document at path and selects the chart called name.
// With no name, a multi-chart document opens the picker on a terminal and
// is an error elsewhere. It also returns the number of charts in the
// document.
func (c *CLI) loadChart(path, name string) (*chart.Chart, int, error) {
	doc, err := chartio.ImportFile(path)
	if err != nil {
		return nil, 0, err
	}
	c.Logger.Debug("document loaded", "path", path, "charts", len(doc.Charts))

	if name == "" && len(doc.Charts) > 1 && interactive() {
		picked, err := pickChart(doc.Charts)
		if err != nil {
			return nil, 0, err
		}
		return picked, len(doc.Charts), nil
	}
	ch, err := doc.Chart(name)
	if err != nil {
		return nil, 0, err
	}
	return ch, len(doc.Charts), nil
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
