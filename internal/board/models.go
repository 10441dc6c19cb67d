package board

import "time"

// Job is a posting owned by exactly one employer identity. CompanyName is
// joined in from the owner's employer profile on reads.
type Job struct {
	ID           string    `json:"id"`
	EmployerID   string    `json:"employerId"`
	CompanyName  string    `json:"companyName"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Location     string    `json:"location"`
	JobType      JobType   `json:"jobType"`
	SalaryMin    *int64    `json:"salaryMin"`
	SalaryMax    *int64    `json:"salaryMax"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// OwnedJob is a job in the owner's own listing, application tally included.
type OwnedJob struct {
	Job
	ApplicationCount int `json:"applicationCount"`
}

// JobFields carries the caller-supplied posting fields for create and update.
type JobFields struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	JobType      string `json:"jobType"`
	SalaryMin    *int64 `json:"salaryMin"`
	SalaryMax    *int64 `json:"salaryMax"`
}

// JobFilter narrows the public job listing. Zero values mean "no filter".
type JobFilter struct {
	Text     string // case-insensitive substring on title or description
	Location string // case-insensitive substring on location
	JobType  string // exact match
}

// Application is a seeker's submission as seen by the seeker: the job and
// its employer are resolved eagerly.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	CoverLetter string            `json:"coverLetter"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"appliedAt"`
	JobTitle    string            `json:"jobTitle"`
	JobLocation string            `json:"jobLocation"`
	CompanyName string            `json:"companyName"`
}

// JobApplication is a submission as seen by the job's owner: the applicant
// and their seeker profile are resolved eagerly.
type JobApplication struct {
	ID              string            `json:"id"`
	ApplicantID     string            `json:"applicantId"`
	Username        string            `json:"username"`
	Email           string            `json:"email"`
	CoverLetter     string            `json:"coverLetter"`
	Status          ApplicationStatus `json:"status"`
	AppliedAt       time.Time         `json:"appliedAt"`
	Skills          string            `json:"skills"`
	ExperienceYears int               `json:"experienceYears"`
	Education       string            `json:"education"`
	ResumeURL       string            `json:"resumeUrl"`
}
