package identity

import (
	"net/mail"
	"net/url"
	"strings"
)

const minPasswordLen = 8

func validateEmail(s string) error {
	if _, err := mail.ParseAddress(s); err != nil {
		return &ValidationError{Field: "email", Msg: "is not a valid email address"}
	}
	return nil
}

func validateRegisterInput(in RegisterInput) error {
	if strings.TrimSpace(in.Username) == "" {
		return &ValidationError{Field: "username", Msg: "is required"}
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if len(in.Password) < minPasswordLen {
		return &ValidationError{Field: "password", Msg: "must be at least 8 characters"}
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return &ValidationError{Field: "firstName", Msg: "is required"}
	}
	if strings.TrimSpace(in.LastName) == "" {
		return &ValidationError{Field: "lastName", Msg: "is required"}
	}
	return nil
}

// validateWebsite accepts an empty string; a non-empty value must be an
// absolute http(s) URL.
func validateWebsite(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &ValidationError{Field: "website", Msg: "must be an http(s) URL"}
	}
	return nil
}

func validateExperienceYears(n int) error {
	if n < 0 {
		return &ValidationError{Field: "experienceYears", Msg: "must not be negative"}
	}
	return nil
}
