package board

import "strings"

// ValidateJobFields checks posting fields for both create and update.
// Salary bounds are optional, must be non-negative, and min must not
// exceed max when both are present.
func ValidateJobFields(f JobFields) error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", Msg: "is required"}
	}
	if strings.TrimSpace(f.Description) == "" {
		return &ValidationError{Field: "description", Msg: "is required"}
	}
	if strings.TrimSpace(f.Location) == "" {
		return &ValidationError{Field: "location", Msg: "is required"}
	}
	if _, err := ParseJobType(f.JobType); err != nil {
		return &ValidationError{Field: "jobType", Msg: err.Error()}
	}
	if f.SalaryMin != nil && *f.SalaryMin < 0 {
		return &ValidationError{Field: "salaryMin", Msg: "must not be negative"}
	}
	if f.SalaryMax != nil && *f.SalaryMax < 0 {
		return &ValidationError{Field: "salaryMax", Msg: "must not be negative"}
	}
	if f.SalaryMin != nil && f.SalaryMax != nil && *f.SalaryMin > *f.SalaryMax {
		return &ValidationError{Field: "salaryMin", Msg: "must not exceed salaryMax"}
	}
	return nil
}
