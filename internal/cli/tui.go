package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vizlab/netvis/pkg/store"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// DocumentListModel - Interactive document selection
// =============================================================================

// DocumentListModel is the bubbletea model for browsing stored documents.
type DocumentListModel struct {
	Docs     []store.Document
	Cursor   int
	Selected *store.Document
	Height   int
	Offset   int
}

// NewDocumentListModel creates a new document list model.
func NewDocumentListModel(docs []store.Document) DocumentListModel {
	return DocumentListModel{
		Docs:   docs,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m DocumentListModel) Init() tea.Cmd {
	return nil
}

func (m DocumentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Docs)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			doc := m.Docs[m.Cursor]
			m.Selected = &doc
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DocumentListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Document"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Docs) {
		end = len(m.Docs)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		doc := m.Docs[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			doc.Name,
			fmt.Sprintf("%d", len(doc.Graph.Nodes)),
			fmt.Sprintf("%d", len(doc.Graph.Edges)),
			formatRelativeTime(doc.CreatedAt),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Nodes", "Edges", "Created").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Docs))))

	return b.String()
}

// =============================================================================
// Static Table Output
// =============================================================================

// renderDocumentTable renders the document list as a static table for
// non-interactive output.
func renderDocumentTable(docs []store.Document) string {
	rows := make([][]string, len(docs))
	for i, doc := range docs {
		rows[i] = []string{
			doc.ID,
			doc.Name,
			fmt.Sprintf("%d", len(doc.Graph.Nodes)),
			fmt.Sprintf("%d", len(doc.Graph.Edges)),
			formatRelativeTime(doc.CreatedAt),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Nodes", "Edges", "Created").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
