package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shubham030/fatrescue/internal/fat"
)

func TestDetailViewIncludesGeometryAndTimestamps(t *testing.T) {
	e := fat.ScannedEntry{
		Name:         "FILE.TXT",
		FileSize:     1024,
		StartCluster: 5,
		CreateDate:   uint16(44)<<9 | uint16(3)<<5 | uint16(17),
	}
	g := fat.Geometry{FATType: 16, SectorSize: 512}

	out := detailView(e, g)
	for _, want := range []string{"FILE.TXT", "1024 bytes", "Cluster:   5", "FAT16", "512-byte", "03-17-2024"} {
		if !strings.Contains(out, want) {
			t.Errorf("detailView() missing %q; got:\n%s", want, out)
		}
	}
}

func TestDetailViewDecodesOEMHighByteNames(t *testing.T) {
	raw := string([]byte{0x81}) + "BER.TXT"
	out := detailView(fat.ScannedEntry{Name: raw}, fat.Geometry{})
	if !strings.Contains(out, "üBER.TXT") {
		t.Errorf("detailView() = %q, want it to contain the CP437-decoded name üBER.TXT", out)
	}
}

func TestEntryItemDecodesOEMHighByteNames(t *testing.T) {
	// 0x81 is "ü" in CP437; the list item must render it decoded.
	raw := string([]byte{0x81}) + "BER.TXT"
	item := entryItem{entry: fat.ScannedEntry{Name: raw}}
	if got := item.Title(); got != "üBER.TXT" {
		t.Errorf("Title() = %q, want üBER.TXT", got)
	}
	if got := item.FilterValue(); got != "üBER.TXT" {
		t.Errorf("FilterValue() = %q, want üBER.TXT", got)
	}
}

func TestDetailViewFlagsDeletedEntries(t *testing.T) {
	e := fat.ScannedEntry{Name: "GONE.TXT", Deleted: true}
	out := detailView(e, fat.Geometry{})
	if !strings.Contains(out, "Deleted") {
		t.Errorf("detailView() for a deleted entry should mention it's deleted; got:\n%s", out)
	}
}

func TestUpdateTogglesDetailOnEnter(t *testing.T) {
	entries := []fat.ScannedEntry{{Name: "A.TXT"}, {Name: "B.TXT"}}
	m := NewModel(entries, fat.Geometry{}).(model)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	mm := updated.(model)
	if !mm.showDetail {
		t.Errorf("Update(enter) should toggle showDetail on")
	}

	updated, _ = mm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	mm = updated.(model)
	if mm.showDetail {
		t.Errorf("Update(enter) twice should toggle showDetail back off")
	}
}

func TestUpdateQuitsOnQ(t *testing.T) {
	entries := []fat.ScannedEntry{{Name: "A.TXT"}}
	m := NewModel(entries, fat.Geometry{}).(model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("Update(q) should return a command")
	}
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Errorf("Update(q) command = %T, want tea.QuitMsg", msg)
	}
}
