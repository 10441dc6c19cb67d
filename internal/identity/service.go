package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobportal/board-service/internal/auth"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// Service encapsulates account registration, authentication and profile
// access. It has no dependency on net/http.
type Service struct {
	pool *pgxpool.Pool
}

// NewService returns a configured Service.
func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// RegisterInput carries the fields shared by both registration flows.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// RegisterEmployerInput adds the company fields collected at employer signup.
type RegisterEmployerInput struct {
	RegisterInput
	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription"`
	Website            string `json:"website"`
}

// RegisterSeeker creates a job-seeker identity together with its empty
// profile in a single transaction. A profile-less identity can never exist.
func (s *Service) RegisterSeeker(ctx context.Context, in RegisterInput) (*Identity, error) {
	if err := validateRegisterInput(in); err != nil {
		return nil, err
	}

	return s.register(ctx, in, RoleJobSeeker, func(tx pgx.Tx, id string) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO seeker_profiles (identity_id) VALUES ($1)`, id)
		return err
	})
}

// RegisterEmployer creates an employer identity together with its company
// profile in a single transaction.
func (s *Service) RegisterEmployer(ctx context.Context, in RegisterEmployerInput) (*Identity, error) {
	if err := validateRegisterInput(in.RegisterInput); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return nil, &ValidationError{Field: "companyName", Msg: "is required"}
	}
	if err := validateWebsite(in.Website); err != nil {
		return nil, err
	}

	return s.register(ctx, in.RegisterInput, RoleEmployer, func(tx pgx.Tx, id string) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO employer_profiles (identity_id, company_name, description, website)
			 VALUES ($1, $2, $3, $4)`,
			id, in.CompanyName, in.CompanyDescription, in.Website)
		return err
	})
}

// register inserts the identity row and the role-specific profile row
// inside one transaction.
func (s *Service) register(ctx context.Context, in RegisterInput, role Role, insertProfile func(pgx.Tx, string) error) (*Identity, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin register tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	ident := Identity{
		Username:  in.Username,
		Email:     in.Email,
		Role:      role,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO identities (username, email, password_hash, role, first_name, last_name, phone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		in.Username, in.Email, hash, string(role), in.FirstName, in.LastName, in.Phone,
	).Scan(&ident.ID, &ident.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, &ValidationError{Field: "username", Msg: "is already taken"}
		}
		return nil, fmt.Errorf("insert identity: %w", err)
	}

	if err := insertProfile(tx, ident.ID); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit register tx: %w", err)
	}
	committed = true

	return &ident, nil
}

// Authenticate checks username/password and returns the matching identity.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	ident, err := s.byColumn(ctx, "username", username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(ident.passwordHash, password) {
		return nil, ErrBadCredentials
	}
	return ident, nil
}

// ByID returns the identity with the given id, or ErrNotFound.
func (s *Service) ByID(ctx context.Context, id string) (*Identity, error) {
	return s.byColumn(ctx, "id", id)
}

func (s *Service) byColumn(ctx context.Context, column, value string) (*Identity, error) {
	var (
		ident Identity
		role  string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, role, first_name, last_name, phone, created_at
		 FROM identities WHERE `+column+` = $1`,
		value,
	).Scan(
		&ident.ID, &ident.Username, &ident.Email, &ident.passwordHash,
		&role, &ident.FirstName, &ident.LastName, &ident.Phone, &ident.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select identity: %w", err)
	}
	ident.Role, _ = ParseRole(role)
	return &ident, nil
}

// SeekerProfileOf returns the profile of a job-seeker identity.
// Registration guarantees the row exists; a missing row is a storage fault.
func (s *Service) SeekerProfileOf(ctx context.Context, actor *Identity) (*SeekerProfile, error) {
	if actor.Role != RoleJobSeeker {
		return nil, ErrNotFound
	}
	var p SeekerProfile
	err := s.pool.QueryRow(ctx,
		`SELECT resume_url, skills, experience_years, education
		 FROM seeker_profiles WHERE identity_id = $1`,
		actor.ID,
	).Scan(&p.ResumeURL, &p.Skills, &p.ExperienceYears, &p.Education)
	if err != nil {
		return nil, fmt.Errorf("seeker profile for %s: %w", actor.ID, err)
	}
	return &p, nil
}

// CompanyOf returns the company profile of an employer identity.
func (s *Service) CompanyOf(ctx context.Context, actor *Identity) (*Company, error) {
	if actor.Role != RoleEmployer {
		return nil, ErrNotFound
	}
	var c Company
	err := s.pool.QueryRow(ctx,
		`SELECT company_name, description, website
		 FROM employer_profiles WHERE identity_id = $1`,
		actor.ID,
	).Scan(&c.Name, &c.Description, &c.Website)
	if err != nil {
		return nil, fmt.Errorf("company profile for %s: %w", actor.ID, err)
	}
	return &c, nil
}

// SeekerProfileUpdate carries the editable fields of a seeker profile,
// contact fields included (the edit surface covers both).
type SeekerProfileUpdate struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ResumeURL       string `json:"resumeUrl"`
	Skills          string `json:"skills"`
	ExperienceYears int    `json:"experienceYears"`
	Education       string `json:"education"`
}

// UpdateSeekerProfile updates contact and profile fields in one transaction.
func (s *Service) UpdateSeekerProfile(ctx context.Context, actor *Identity, in SeekerProfileUpdate) error {
	if actor.Role != RoleJobSeeker {
		return ErrNotFound
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if err := validateExperienceYears(in.ExperienceYears); err != nil {
		return err
	}

	return s.updateContactAndProfile(ctx, actor.ID, in.FirstName, in.LastName, in.Email, in.Phone,
		`UPDATE seeker_profiles
		 SET resume_url = $2, skills = $3, experience_years = $4, education = $5
		 WHERE identity_id = $1`,
		in.ResumeURL, in.Skills, in.ExperienceYears, in.Education)
}

// CompanyUpdate carries the editable fields of an employer profile.
type CompanyUpdate struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Name        string `json:"companyName"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

// UpdateCompany updates contact and company fields in one transaction.
func (s *Service) UpdateCompany(ctx context.Context, actor *Identity, in CompanyUpdate) error {
	if actor.Role != RoleEmployer {
		return ErrNotFound
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "companyName", Msg: "is required"}
	}
	if err := validateWebsite(in.Website); err != nil {
		return err
	}

	return s.updateContactAndProfile(ctx, actor.ID, in.FirstName, in.LastName, in.Email, in.Phone,
		`UPDATE employer_profiles
		 SET company_name = $2, description = $3, website = $4
		 WHERE identity_id = $1`,
		in.Name, in.Description, in.Website)
}

func (s *Service) updateContactAndProfile(ctx context.Context, id, firstName, lastName, email, phone, profileSQL string, profileArgs ...any) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin profile tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err := tx.Exec(ctx,
		`UPDATE identities SET first_name = $2, last_name = $3, email = $4, phone = $5 WHERE id = $1`,
		id, firstName, lastName, email, phone); err != nil {
		return fmt.Errorf("update identity: %w", err)
	}

	args := append([]any{id}, profileArgs...)
	if _, err := tx.Exec(ctx, profileSQL, args...); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit profile tx: %w", err)
	}
	committed = true
	return nil
}
