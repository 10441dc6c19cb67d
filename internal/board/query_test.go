package board

import (
	"strings"
	"testing"
)

func TestBuildListQuery_NoFilter(t *testing.T) {
	sql, args := buildListQuery(JobFilter{})
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
	if !strings.Contains(sql, "WHERE j.is_active") {
		t.Error("query must restrict to active postings")
	}
	if !strings.Contains(sql, "ORDER BY j.created_at DESC") {
		t.Error("query must order newest first")
	}
	if strings.Contains(sql, "ILIKE") {
		t.Error("unfiltered query must not contain ILIKE predicates")
	}
}

func TestBuildListQuery_AllFilters(t *testing.T) {
	sql, args := buildListQuery(JobFilter{
		Text:     "engineer",
		Location: "berlin",
		JobType:  "full_time",
	})
	want := []any{"%engineer%", "%berlin%", "full_time"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %v, want %v", i, args[i], want[i])
		}
	}
	for _, frag := range []string{
		"(j.title ILIKE $1 OR j.description ILIKE $1)",
		"j.location ILIKE $2",
		"j.job_type = $3",
	} {
		if !strings.Contains(sql, frag) {
			t.Errorf("query missing %q:\n%s", frag, sql)
		}
	}
}

// Placeholder numbering must stay dense when only later filters are set.
func TestBuildListQuery_PartialFilters(t *testing.T) {
	sql, args := buildListQuery(JobFilter{JobType: "contract"})
	if len(args) != 1 || args[0] != "contract" {
		t.Fatalf("args = %v, want [contract]", args)
	}
	if !strings.Contains(sql, "j.job_type = $1") {
		t.Errorf("job type filter should bind $1:\n%s", sql)
	}

	sql, args = buildListQuery(JobFilter{Location: "remote", JobType: "internship"})
	if len(args) != 2 {
		t.Fatalf("args = %v, want two", args)
	}
	if !strings.Contains(sql, "j.location ILIKE $1") || !strings.Contains(sql, "j.job_type = $2") {
		t.Errorf("unexpected placeholder numbering:\n%s", sql)
	}
}
