package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/vecnet/pkg/vector"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// InspectModel - Interactive vertex browser
// =============================================================================

// InspectModel is the bubbletea model for browsing a network's vertices.
// The table lists every vertex; the panel below it shows the segments
// touching the vertex under the cursor.
type InspectModel struct {
	Network  vector.Network
	Cursor   int
	Height   int
	Offset   int
	incident [][]int        // segment indices touching each vertex
	conflict map[int]string // vertex -> conflicting halves, e.g. "in,out"
}

// newInspectModel creates a model positioned on the first vertex.
func newInspectModel(n vector.Network) InspectModel {
	m := InspectModel{
		Network:  n,
		Height:   15,
		incident: make([][]int, n.VertexCount()),
		conflict: make(map[int]string),
	}
	for i, s := range n.Segments {
		if s.Start >= 0 && s.Start < len(m.incident) {
			m.incident[s.Start] = append(m.incident[s.Start], i)
		}
		if s.End != s.Start && s.End >= 0 && s.End < len(m.incident) {
			m.incident[s.End] = append(m.incident[s.End], i)
		}
	}
	for _, hc := range n.HandleConflicts() {
		if prev := m.conflict[hc.Vertex]; prev != "" {
			m.conflict[hc.Vertex] = prev + "," + string(hc.Half)
		} else {
			m.conflict[hc.Vertex] = string(hc.Half)
		}
	}
	return m
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	last := m.Network.VertexCount() - 1
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < last {
				m.Cursor++
			}
		case "pgup":
			m.Cursor = max(m.Cursor-m.Height, 0)
		case "pgdown":
			m.Cursor = max(min(m.Cursor+m.Height, last), 0)
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = max(last, 0)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-14, 5)
	}

	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Vertices"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  pgup/pgdn page  q quit"))
	b.WriteString("\n\n")

	if m.Network.VertexCount() == 0 {
		b.WriteString(listDimStyle.Render("  network has no vertices"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, m.Network.VertexCount())
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		v := m.Network.Vertices[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(i),
			fmtCoord(v.X),
			fmtCoord(v.Y),
			strconv.Itoa(len(m.incident[i])),
			vertexStyleSummary(v),
			m.conflict[i],
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "x", "y", "Segs", "Style", "Conflict").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			switch {
			case idx == m.Cursor:
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			case col == 6 && m.conflict[idx] != "":
				return lipgloss.NewStyle().Foreground(colorYellow)
			default:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(m.segmentPanel())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.Network.VertexCount())))

	return b.String()
}

// segmentPanel lists the segments touching the selected vertex.
func (m InspectModel) segmentPanel() string {
	var b strings.Builder
	segs := m.incident[m.Cursor]
	if len(segs) == 0 {
		b.WriteString(listDimStyle.Render("  no segments"))
		b.WriteString("\n")
		return b.String()
	}
	for _, i := range segs {
		s := m.Network.Segments[i]
		line := fmt.Sprintf("  segment %d: %d → %d", i, s.Start, s.End)
		if !s.TangentStart.IsZero() || !s.TangentEnd.IsZero() {
			line += fmt.Sprintf("  out (%s,%s)  in (%s,%s)",
				fmtCoord(s.TangentStart.X), fmtCoord(s.TangentStart.Y),
				fmtCoord(s.TangentEnd.X), fmtCoord(s.TangentEnd.Y))
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func fmtCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// vertexStyleSummary lists the style fields that differ from the defaults.
func vertexStyleSummary(v vector.Vertex) string {
	var parts []string
	if v.CornerRadius != 0 {
		parts = append(parts, "r="+fmtCoord(v.CornerRadius))
	}
	if c := v.StrokeCap.OrDefault(); c != vector.StrokeCapNone {
		parts = append(parts, strings.ToLower(string(c)))
	}
	if j := v.StrokeJoin.OrDefault(); j != vector.StrokeJoinMiter {
		parts = append(parts, strings.ToLower(string(j)))
	}
	if h := v.HandleMirroring.OrDefault(); h != vector.HandleMirroringNone {
		parts = append(parts, "mirror "+strings.ToLower(string(h)))
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, " ")
}
