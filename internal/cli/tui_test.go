package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/hexboard/pkg/board"
)

func testModel(t *testing.T) boardModel {
	t.Helper()
	rules := defaultRules()
	layout, err := rules.layoutOptions()
	if err != nil {
		t.Fatalf("layoutOptions: %v", err)
	}
	return newBoardModel(resolved{
		variant: board.VariantStandard,
		layout:  layout,
		rules:   rules,
	})
}

func TestBoardModel_View(t *testing.T) {
	m := testModel(t)
	if m.err != nil {
		t.Fatalf("initial layout: %v", m.err)
	}

	view := m.View()
	if !strings.Contains(view, "Hexboard") {
		t.Error("view is missing the title")
	}
	if !strings.Contains(view, "reshuffle") {
		t.Error("view is missing the key help")
	}
	if !strings.Contains(view, "_____") {
		t.Error("view is missing the board art")
	}
}

func TestBoardModel_Reroll(t *testing.T) {
	m := testModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd != nil {
		t.Error("reroll should not schedule a command")
	}
	next := updated.(boardModel)
	if next.count != m.count+1 {
		t.Errorf("count = %d, want %d", next.count, m.count+1)
	}
	if next.err != nil {
		t.Errorf("reroll failed: %v", next.err)
	}
}

func TestBoardModel_Quit(t *testing.T) {
	m := testModel(t)

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch key {
		case "q":
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		if _, cmd := m.Update(msg); cmd == nil {
			t.Errorf("%s should quit", key)
		}
	}
}
