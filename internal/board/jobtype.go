package board

import "fmt"

// JobType values mirror the job_type column constraint in PostgreSQL.
// The set is closed; postings with any other value are rejected.
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// ParseJobType converts a raw string to a JobType, returning an error for
// unknown values.
func ParseJobType(s string) (JobType, error) {
	jt := JobType(s)
	switch jt {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return jt, nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}
