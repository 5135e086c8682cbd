package cli

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/cloudgraph/pkg/graph"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder()
	for _, n := range []string{"vm", "nic", "nsg"} {
		if err := b.UpsertNode(n, graph.Attrs{"type": "t-" + n}); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.AddEdge("vm", "nic"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddEdge("nic", "nsg"); err != nil {
		t.Fatal(err)
	}
	return b.Graph()
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m NodeListModel, keys ...string) (NodeListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(NodeListModel)
	}
	return m, cmd
}

func TestNodeListNavigation(t *testing.T) {
	m := NewNodeListModel(testGraph(t))

	// Names are sorted: nic, nsg, vm.
	if m.Selected() != "nic" {
		t.Fatalf("Selected() = %q, want nic", m.Selected())
	}

	m, _ = send(m, "down", "j", "down")
	if m.Selected() != "vm" {
		t.Errorf("after moving past the end Selected() = %q, want vm", m.Selected())
	}

	m, _ = send(m, "up", "k", "k")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
}

func TestNodeListDetail(t *testing.T) {
	m := NewNodeListModel(testGraph(t))
	m, _ = send(m, "enter")
	if !m.Detail {
		t.Fatal("enter should open the detail view")
	}

	view := m.View()
	for _, want := range []string{"nic", "t-nic", "References (1)", "nsg", "Referenced by (1)", "vm"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q:\n%s", want, view)
		}
	}

	// Cursor keys are ignored while the detail view is open.
	m, _ = send(m, "down")
	if m.Selected() != "nic" {
		t.Errorf("Selected() = %q, want nic", m.Selected())
	}

	m, cmd := send(m, "esc")
	if m.Detail || cmd != nil {
		t.Error("esc should close the detail view without quitting")
	}

	_, cmd = send(m, "esc")
	if cmd == nil {
		t.Error("esc in the list view should quit")
	}
}

func TestNodeListEmptyGraph(t *testing.T) {
	m := NewNodeListModel(graph.NewBuilder().Graph())
	m, _ = send(m, "enter", "down")
	if m.Detail {
		t.Error("enter on an empty graph should not open details")
	}
	if !strings.Contains(m.View(), "graph is empty") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestNodeListWindowResize(t *testing.T) {
	m := NewNodeListModel(testGraph(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 4})
	if got := next.(NodeListModel).Height; got != 5 {
		t.Errorf("Height = %d, want minimum of 5", got)
	}
}

func TestNodeListResizeKeepsCursorVisible(t *testing.T) {
	b := graph.NewBuilder()
	for i := range 20 {
		if err := b.UpsertNode(fmt.Sprintf("n%02d", i), nil); err != nil {
			t.Fatal(err)
		}
	}
	m := NewNodeListModel(b.Graph())
	for range 12 {
		m, _ = send(m, "down")
	}
	if m.Offset != 0 {
		t.Fatalf("Offset = %d before resize, want 0", m.Offset)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 14})
	m = next.(NodeListModel)
	if m.Height != 6 {
		t.Fatalf("Height = %d, want 6", m.Height)
	}
	if m.Cursor < m.Offset || m.Cursor >= m.Offset+m.Height {
		t.Errorf("cursor %d outside window [%d, %d)", m.Cursor, m.Offset, m.Offset+m.Height)
	}
	if !strings.Contains(m.View(), "n12") {
		t.Error("selected node not rendered after resize")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
