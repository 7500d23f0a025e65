package cli

import (
	"testing"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2024-01-01" {
		t.Errorf("date = %q, want %q", date, "2024-01-01")
	}
}

func TestRingListModelNavigation(t *testing.T) {
	m := NewRingListModel([]string{"gates", "hexagrams", "lines"})
	if m.Cursor != 0 {
		t.Fatalf("initial cursor = %d", m.Cursor)
	}

	m.Cursor = 2
	if m.Rings[m.Cursor] != "lines" {
		t.Errorf("cursor points at %q", m.Rings[m.Cursor])
	}
}

func TestDescribeRing(t *testing.T) {
	if d := describeRing("gates"); d == "" {
		t.Error("built-in rings should have descriptions")
	}
	if d := describeRing("zodiac"); d != "Custom ring generator" {
		t.Errorf("unknown ring description = %q", d)
	}
}
