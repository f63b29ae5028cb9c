package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m ConfirmModel, keys ...tea.KeyMsg) (ConfirmModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(ConfirmModel)
	}
	return m, cmd
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		wantYes  bool
		wantDone bool
	}{
		{name: "y answers yes", keys: []tea.KeyMsg{runes("y")}, wantYes: true, wantDone: true},
		{name: "Y answers yes", keys: []tea.KeyMsg{runes("Y")}, wantYes: true, wantDone: true},
		{name: "n answers no", keys: []tea.KeyMsg{runes("n")}, wantYes: false, wantDone: true},
		{name: "esc answers no", keys: []tea.KeyMsg{{Type: tea.KeyEsc}}, wantYes: false, wantDone: true},
		{name: "enter accepts default no", keys: []tea.KeyMsg{{Type: tea.KeyEnter}}, wantYes: false, wantDone: true},
		{name: "toggle then enter", keys: []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEnter}}, wantYes: true, wantDone: true},
		{name: "toggle only", keys: []tea.KeyMsg{{Type: tea.KeyTab}}, wantYes: true, wantDone: false},
		{name: "other keys ignored", keys: []tea.KeyMsg{runes("x")}, wantYes: false, wantDone: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(NewConfirmModel("Delete?"), tt.keys...)
			if m.Yes != tt.wantYes {
				t.Errorf("Yes = %v, want %v", m.Yes, tt.wantYes)
			}
			if m.Answered != tt.wantDone {
				t.Errorf("Answered = %v, want %v", m.Answered, tt.wantDone)
			}
			if (cmd != nil) != tt.wantDone {
				t.Errorf("quit command returned = %v, want %v", cmd != nil, tt.wantDone)
			}
		})
	}
}

func TestConfirmModelView(t *testing.T) {
	m := NewConfirmModel("Delete the original atlas?")
	if view := m.View(); !strings.Contains(view, "Delete the original atlas?") || !strings.Contains(view, "(y/n)") {
		t.Errorf("View() = %q, want prompt and key hint", view)
	}

	m, _ = press(m, runes("y"))
	if view := m.View(); !strings.Contains(view, "yes") || strings.Contains(view, "(y/n)") {
		t.Errorf("answered View() = %q, want the answer without key hint", view)
	}
}

func TestConfirmerFor(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		yes, keep bool
		want      bool
	}{
		{name: "yes", yes: true, want: true},
		{name: "keep", keep: true, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := confirmerFor(tt.yes, tt.keep).Confirm(ctx, "Delete?")
			if err != nil {
				t.Fatalf("Confirm() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}
