package identity_test

import (
	"testing"

	"jobportal/board-service/internal/identity"
)

func TestParseRole_ValidValues(t *testing.T) {
	valid := []string{"job_seeker", "employer"}
	for _, s := range valid {
		got, err := identity.ParseRole(s)
		if err != nil {
			t.Errorf("ParseRole(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseRole(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseRole_InvalidValue(t *testing.T) {
	for _, s := range []string{"admin", "Employer", "JOB_SEEKER", ""} {
		if _, err := identity.ParseRole(s); err == nil {
			t.Errorf("ParseRole(%q) expected error, got nil", s)
		}
	}
}
