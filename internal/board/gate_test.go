package board_test

import (
	"testing"

	"jobportal/board-service/internal/board"
	"jobportal/board-service/internal/identity"
)

func seeker(id string) *identity.Identity {
	return &identity.Identity{ID: id, Role: identity.RoleJobSeeker}
}

func employer(id string) *identity.Identity {
	return &identity.Identity{ID: id, Role: identity.RoleEmployer}
}

// ── Rule 1: unauthenticated callers are denied everything ──────────────────

func TestCheck_NilActor(t *testing.T) {
	ops := []board.Operation{
		board.OpPostJob, board.OpEditJob, board.OpDeleteJob,
		board.OpViewApplications, board.OpListOwnJobs,
		board.OpApply, board.OpListOwnApps,
	}
	for _, op := range ops {
		d := board.Check(nil, op, "")
		if d.Allowed {
			t.Errorf("Check(nil, %s) should deny", op)
		}
		if d.Reason != board.ReasonAuthRequired {
			t.Errorf("Check(nil, %s) reason = %s, want %s", op, d.Reason, board.ReasonAuthRequired)
		}
	}
}

// ── Rule 2: role mismatches ────────────────────────────────────────────────

func TestCheck_WrongRole(t *testing.T) {
	cases := []struct {
		name  string
		actor *identity.Identity
		op    board.Operation
	}{
		{"seeker posting a job", seeker("s1"), board.OpPostJob},
		{"seeker editing a job", seeker("s1"), board.OpEditJob},
		{"seeker deleting a job", seeker("s1"), board.OpDeleteJob},
		{"seeker viewing applicants", seeker("s1"), board.OpViewApplications},
		{"seeker listing own jobs", seeker("s1"), board.OpListOwnJobs},
		{"employer applying", employer("e1"), board.OpApply},
		{"employer listing own applications", employer("e1"), board.OpListOwnApps},
	}
	for _, c := range cases {
		d := board.Check(c.actor, c.op, "")
		if d.Allowed {
			t.Errorf("%s: should deny", c.name)
		}
		if d.Reason != board.ReasonWrongRole {
			t.Errorf("%s: reason = %s, want %s", c.name, d.Reason, board.ReasonWrongRole)
		}
	}
}

// ── Rule 3: ownership mismatches ───────────────────────────────────────────

func TestCheck_NotOwner(t *testing.T) {
	ops := []board.Operation{board.OpEditJob, board.OpDeleteJob, board.OpViewApplications}
	for _, op := range ops {
		d := board.Check(employer("e2"), op, "e1")
		if d.Allowed {
			t.Errorf("Check(e2, %s, owner e1) should deny", op)
		}
		if d.Reason != board.ReasonNotOwner {
			t.Errorf("Check(e2, %s, owner e1) reason = %s, want %s", op, d.Reason, board.ReasonNotOwner)
		}
	}
}

// ── Allowed paths ──────────────────────────────────────────────────────────

func TestCheck_Allowed(t *testing.T) {
	cases := []struct {
		name    string
		actor   *identity.Identity
		op      board.Operation
		ownerID string
	}{
		{"employer posting", employer("e1"), board.OpPostJob, ""},
		{"owner editing", employer("e1"), board.OpEditJob, "e1"},
		{"owner deleting", employer("e1"), board.OpDeleteJob, "e1"},
		{"owner viewing applicants", employer("e1"), board.OpViewApplications, "e1"},
		{"employer listing own jobs", employer("e1"), board.OpListOwnJobs, ""},
		{"seeker applying", seeker("s1"), board.OpApply, ""},
		{"seeker listing own applications", seeker("s1"), board.OpListOwnApps, ""},
	}
	for _, c := range cases {
		d := board.Check(c.actor, c.op, c.ownerID)
		if !d.Allowed {
			t.Errorf("%s: should allow, denied with %s", c.name, d.Reason)
		}
	}
}
