package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestView_String(t *testing.T) {
	if ViewChat.String() != "Chat Simulator" {
		t.Errorf("ViewChat = %q", ViewChat.String())
	}
	if ViewSettings.String() != "Settings" {
		t.Errorf("ViewSettings = %q", ViewSettings.String())
	}
}

func TestHeader_View(t *testing.T) {
	h := NewHeader()
	h.SetWidth(100)
	h.SetView(ViewSettings)

	out := ansi.Strip(h.View())
	for _, want := range []string{AppTitle, "Chat Simulator", "Settings"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q: %q", want, out)
		}
	}
	if w := ansi.StringWidth(out); w != 100 {
		t.Errorf("header width = %d, want 100", w)
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#833AB4")
	if r != 0x83 || g != 0x3A || b != 0xB4 {
		t.Errorf("parseHexColor = %d,%d,%d", r, g, b)
	}
	r, g, b = parseHexColor("bad")
	if r != 0 || g != 0 || b != 0 {
		t.Error("invalid input should parse to black")
	}
}
