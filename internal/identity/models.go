package identity

import "time"

// Identity is an authenticated actor, either a job seeker or an employer.
type Identity struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	passwordHash string
}

// SeekerProfile is the 1:1 extension of a job-seeker identity.
type SeekerProfile struct {
	ResumeURL       string `json:"resumeUrl"`
	Skills          string `json:"skills"`
	ExperienceYears int    `json:"experienceYears"`
	Education       string `json:"education"`
}

// Company is the 1:1 extension of an employer identity.
type Company struct {
	Name        string `json:"companyName"`
	Description string `json:"description"`
	Website     string `json:"website"`
}
