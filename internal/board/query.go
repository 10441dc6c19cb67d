package board

import (
	"fmt"
	"strings"
)

// jobColumns is the SELECT list shared by all job reads. The company name
// comes from the owner's employer profile; COALESCE guards against rows
// predating the profile constraint.
const jobColumns = `j.id, j.employer_id, COALESCE(ep.company_name, ''),
	       j.title, j.description, j.requirements, j.location, j.job_type,
	       j.salary_min, j.salary_max, j.is_active, j.created_at`

// buildListQuery returns the SQL and arguments for the public listing:
// active postings only, narrowed by the filter, newest first.
func buildListQuery(f JobFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + jobColumns + `
		FROM jobs j
		LEFT JOIN employer_profiles ep ON ep.identity_id = j.employer_id
		WHERE j.is_active`)

	args := make([]any, 0, 3)
	if f.Text != "" {
		args = append(args, "%"+f.Text+"%")
		n := len(args)
		fmt.Fprintf(&sb, ` AND (j.title ILIKE $%d OR j.description ILIKE $%d)`, n, n)
	}
	if f.Location != "" {
		args = append(args, "%"+f.Location+"%")
		fmt.Fprintf(&sb, ` AND j.location ILIKE $%d`, len(args))
	}
	if f.JobType != "" {
		args = append(args, f.JobType)
		fmt.Fprintf(&sb, ` AND j.job_type = $%d`, len(args))
	}

	sb.WriteString(` ORDER BY j.created_at DESC`)
	return sb.String(), args
}
