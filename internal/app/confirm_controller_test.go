package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func confirmKey(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmControllerChoices(t *testing.T) {
	cases := []struct {
		key  string
		want confirmChoice
	}{
		{"y", confirmChoiceConfirm},
		{"n", confirmChoiceCancel},
		{"esc", confirmChoiceCancel},
		{"q", confirmChoiceCancel},
		{"enter", confirmChoiceConfirm},
	}
	for _, tc := range cases {
		c := NewConfirmController()
		c.Open("Delete note", "sure?", "Delete", "Cancel")
		handled, choice := c.HandleKey(confirmKey(tc.key))
		if !handled {
			t.Fatalf("key %q not handled", tc.key)
		}
		if choice != tc.want {
			t.Fatalf("key %q: got choice %d, want %d", tc.key, choice, tc.want)
		}
	}
}

func TestConfirmControllerEnterFollowsSelection(t *testing.T) {
	c := NewConfirmController()
	c.Open("Delete note", "sure?", "Delete", "Cancel")

	c.HandleKey(confirmKey("tab"))
	_, choice := c.HandleKey(confirmKey("enter"))
	if choice != confirmChoiceCancel {
		t.Fatalf("enter after tab should cancel, got %d", choice)
	}

	c.Open("Delete note", "sure?", "Delete", "Cancel")
	c.HandleKey(confirmKey("right"))
	c.HandleKey(confirmKey("left"))
	_, choice = c.HandleKey(confirmKey("enter"))
	if choice != confirmChoiceConfirm {
		t.Fatalf("enter on confirm button should confirm, got %d", choice)
	}
}

func TestConfirmControllerSwallowsOtherKeys(t *testing.T) {
	c := NewConfirmController()
	c.Open("Delete note", "sure?", "", "")
	handled, choice := c.HandleKey(confirmKey("x"))
	if !handled || choice != confirmChoiceNone {
		t.Fatalf("open dialog should swallow unrelated keys")
	}
}

func TestConfirmControllerClosedIgnoresKeys(t *testing.T) {
	c := NewConfirmController()
	handled, _ := c.HandleKey(confirmKey("y"))
	if handled {
		t.Fatalf("closed dialog should not handle keys")
	}
}

func TestConfirmControllerViewShowsLabels(t *testing.T) {
	c := NewConfirmController()
	c.Open("Delete note", "Delete \"Groceries\"?", "Delete", "Cancel")
	view := c.View(80)
	for _, want := range []string{"Delete note", "Groceries", "[Delete]", "[Cancel]"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
