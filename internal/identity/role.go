// Package identity holds accounts for the job portal: who an actor is,
// which role they carry, and their role-specific profile.
//
// A role is fixed at registration and never changes; it decides which
// profile extension exists and which board operations the authorization
// gate will allow.
package identity

import "fmt"

// Role values mirror the role column constraint in PostgreSQL.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

// ParseRole converts a raw string to a Role, returning an error for
// unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleJobSeeker, RoleEmployer:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
