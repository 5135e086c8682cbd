package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cloudgraph/pkg/config"
	"github.com/matzehuels/cloudgraph/pkg/exposure"
	"github.com/matzehuels/cloudgraph/pkg/graph"
)

// maxValueWidth truncates long attribute values in the detail view.
const maxValueWidth = 80

// exploreCommand creates the explore command, an interactive node browser.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [csv]",
		Short: "Browse the resource graph interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runExplore(cmd.Context(), args, cfg)
		},
	}
}

func (c *CLI) runExplore(ctx context.Context, args []string, cfg config.Config) error {
	res, err := c.buildGraph(ctx, args, cfg, false)
	if err != nil {
		return err
	}
	p := tea.NewProgram(NewNodeListModel(res.Graph), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// =============================================================================
// NodeListModel - Interactive graph browser
// =============================================================================

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailKeyStyle    = lipgloss.NewStyle().Foreground(colorGray).Width(16)
)

// NodeListModel is the bubbletea model for browsing graph nodes. Enter opens
// a detail view of the selected node; esc returns to the list.
type NodeListModel struct {
	Graph  *graph.Graph
	Names  []string
	Cursor int
	Offset int
	Height int
	Detail bool
}

// NewNodeListModel creates a model listing the nodes of g by name.
func NewNodeListModel(g *graph.Graph) NodeListModel {
	return NodeListModel{
		Graph:  g,
		Names:  g.Names(),
		Height: 15,
	}
}

func (m NodeListModel) Init() tea.Cmd {
	return nil
}

func (m NodeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if !m.Detail && m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if !m.Detail && m.Cursor < len(m.Names)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Names) > 0 {
				m.Detail = true
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

// Selected returns the name under the cursor, or "" for an empty graph.
func (m NodeListModel) Selected() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Names) {
		return ""
	}
	return m.Names[m.Cursor]
}

func (m NodeListModel) View() string {
	if m.Detail {
		return m.detailView()
	}
	return m.listView()
}

func (m NodeListModel) listView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Resources"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(m.Names) == 0 {
		b.WriteString(listDimStyle.Render("  graph is empty"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Names))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		name := m.Names[i]
		n, _ := m.Graph.Node(name)
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			name,
			n.Attr("type"),
			fmt.Sprint(m.Graph.OutDegree(name)),
			fmt.Sprint(m.Graph.InDegree(name)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Type", "Out", "In").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			switch {
			case idx == m.Cursor:
				return listSelectedStyle
			case idx < len(m.Names) && m.Names[idx] == exposure.InternetNode:
				return StyleExposed
			case col >= 2:
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Names))))
	return b.String()
}

func (m NodeListModel) detailView() string {
	name := m.Selected()
	n, _ := m.Graph.Node(name)

	var b strings.Builder
	b.WriteString(StyleTitle.Render(name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		b.WriteString(detailKeyStyle.Render(k))
		b.WriteString(" ")
		b.WriteString(StyleValue.Render(truncate(n.Attrs[k], maxValueWidth)))
		b.WriteString("\n")
	}

	writeNeighbors(&b, "References", iconArrow, m.Graph.Successors(name))
	writeNeighbors(&b, "Referenced by", "←", m.Graph.Predecessors(name))
	return b.String()
}

func writeNeighbors(b *strings.Builder, title, icon string, names []string) {
	b.WriteString("\n")
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s (%d)", title, len(names))))
	b.WriteString("\n")
	if len(names) == 0 {
		b.WriteString(listDimStyle.Render("  none"))
		b.WriteString("\n")
		return
	}
	for _, n := range names {
		b.WriteString("  " + StyleDim.Render(icon) + " " + n + "\n")
	}
}

// truncate shortens s to at most n runes, marking the cut with "…".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
