// Package tui implements the bubbletea browser cmd/dir launches with
// -tui: a scrollable list over a scanned directory, with a detail
// pane showing the geometry-derived fields a plain listing line
// truncates. Styled after the teacher's recover-tui, same style
// variable names and conventions.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/shubham030/fatrescue/internal/display"
	"github.com/shubham030/fatrescue/internal/fat"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	deletedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))
)

// entryItem adapts a fat.ScannedEntry to list.Item.
type entryItem struct {
	entry fat.ScannedEntry
}

func (i entryItem) Title() string {
	name := display.Name(i.entry.Name)
	if i.entry.Deleted {
		return deletedStyle.Render(name)
	}
	return name
}

func (i entryItem) Description() string {
	return fmt.Sprintf("%s  cluster %d", humanize.Bytes(uint64(i.entry.FileSize)), i.entry.StartCluster)
}

func (i entryItem) FilterValue() string { return display.Name(i.entry.Name) }

// model is the bubbletea program state: a list of entries and an
// optional detail pane for whichever one is selected.
type model struct {
	width, height int
	list          list.Model
	geometry      fat.Geometry
	showDetail    bool
}

// NewModel builds a browser over entries, reporting sector size and
// FAT type in the detail pane from g.
func NewModel(entries []fat.ScannedEntry, g fat.Geometry) tea.Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Directory Listing"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return model{list: l, geometry: g}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			m.showDetail = !m.showDetail
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(" fatrescue dir "))
	s.WriteString("\n\n")
	s.WriteString(m.list.View())

	if m.showDetail {
		if item, ok := m.list.SelectedItem().(entryItem); ok {
			s.WriteString("\n")
			s.WriteString(subtitleStyle.Render("Detail"))
			s.WriteString("\n")
			s.WriteString(detailView(item.entry, m.geometry))
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("enter: toggle detail • q: quit"))
	return s.String()
}

func detailView(e fat.ScannedEntry, g fat.Geometry) string {
	var s strings.Builder
	fmt.Fprintf(&s, "Name:      %s\n", display.Name(e.Name))
	fmt.Fprintf(&s, "Size:      %d bytes (%s)\n", e.FileSize, humanize.Bytes(uint64(e.FileSize)))
	fmt.Fprintf(&s, "Cluster:   %d (FAT%d, %d-byte sectors)\n", e.StartCluster, g.FATType, g.SectorSize)
	fmt.Fprintf(&s, "Created:   %s\n", display.FormatDateTime(e.CreateDate, e.CreateTime))
	fmt.Fprintf(&s, "Modified:  %s\n", display.FormatDateTime(e.ModDate, e.ModTime))
	fmt.Fprintf(&s, "Accessed:  %s\n", display.FormatDate(e.AccessDate))
	if e.Deleted {
		s.WriteString(deletedStyle.Render("Deleted (tombstoned)") + "\n")
	}
	return s.String()
}

// Run starts the bubbletea program over entries and blocks until the
// user quits.
func Run(entries []fat.ScannedEntry, g fat.Geometry) error {
	p := tea.NewProgram(NewModel(entries, g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
