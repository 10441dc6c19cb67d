package board_test

import (
	"testing"

	"jobportal/board-service/internal/board"
)

// ── ParseJobType ───────────────────────────────────────────────────────────

func TestParseJobType_ValidValues(t *testing.T) {
	valid := []string{"full_time", "part_time", "contract", "internship"}
	for _, s := range valid {
		got, err := board.ParseJobType(s)
		if err != nil {
			t.Errorf("ParseJobType(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseJobType(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseJobType_InvalidValue(t *testing.T) {
	for _, s := range []string{"freelance", "FULL_TIME", "full-time", ""} {
		if _, err := board.ParseJobType(s); err == nil {
			t.Errorf("ParseJobType(%q) expected error, got nil", s)
		}
	}
}

// ── ParseApplicationStatus ─────────────────────────────────────────────────

func TestParseApplicationStatus_ValidValues(t *testing.T) {
	valid := []string{"pending", "accepted", "rejected"}
	for _, s := range valid {
		got, err := board.ParseApplicationStatus(s)
		if err != nil {
			t.Errorf("ParseApplicationStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseApplicationStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseApplicationStatus_InvalidValue(t *testing.T) {
	for _, s := range []string{"withdrawn", "PENDING", ""} {
		if _, err := board.ParseApplicationStatus(s); err == nil {
			t.Errorf("ParseApplicationStatus(%q) expected error, got nil", s)
		}
	}
}
