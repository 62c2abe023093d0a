package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/chartlabel/pkg/chart"
	"github.com/matzehuels/chartlabel/pkg/errors"
)

var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

var errNoSelection = errors.New(errors.ErrCodeInvalidInput, "no chart selected")

// ChartListModel is the bubbletea model behind the chart picker shown when
// a document holds several charts and no --chart was given.
type ChartListModel struct {
	Charts   []*chart.Chart
	Cursor   int
	Selected *chart.Chart // nil until enter is pressed
	Height   int          // visible rows
	Offset   int          // first visible row
}

func NewChartListModel(charts []*chart.Chart) ChartListModel {
	return ChartListModel{Charts: charts, Height: 15}
}

func (m ChartListModel) Init() tea.Cmd { return nil }

// move shifts the cursor by delta, clamped to the list, and scrolls so the
// cursor stays visible.
func (m *ChartListModel) move(delta int) {
	m.Cursor = max(0, min(m.Cursor+delta, len(m.Charts)-1))
	switch {
	case m.Cursor < m.Offset:
		m.Offset = m.Cursor
	case m.Cursor >= m.Offset+m.Height:
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m ChartListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.move(0)
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "home", "g":
			m.move(-len(m.Charts))
		case "end", "G":
			m.move(len(m.Charts))
		case "enter":
			if len(m.Charts) > 0 {
				m.Selected = m.Charts[m.Cursor]
				return m, tea.Quit
			}
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ChartListModel) View() string {
	end := min(m.Offset+m.Height, len(m.Charts))
	rows := make([][]string, 0, end-m.Offset)
	for i, ch := range m.Charts[m.Offset:end] {
		marker, title := "", ch.Title
		if m.Offset+i == m.Cursor {
			marker = "▸"
		}
		if title == "" {
			title = "-"
		}
		rows = append(rows, []string{marker, ch.Name, string(ch.Type),
			strconv.Itoa(len(ch.Datasets)), strconv.Itoa(len(ch.Labels)), title})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Chart", "Type", "Datasets", "Labels", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
			}
			if col == 3 || col == 4 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return strings.Join([]string{
		StyleTitle.Render("Select Chart"),
		listDimStyle.Render("↑/↓ move  ⏎ pick  q cancel"),
		"",
		t.Render(),
		"",
		listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Charts))),
	}, "\n")
}

// pickChart runs the picker and returns the chosen chart.
func pickChart(charts []*chart.Chart) (*chart.Chart, error) {
	final, err := tea.NewProgram(NewChartListModel(charts)).Run()
	if err != nil {
		return nil, fmt.Errorf("chart picker: %w", err)
	}
	m, ok := final.(ChartListModel)
	if !ok || m.Selected == nil {
		return nil, errNoSelection
	}
	return m.Selected, nil
}
