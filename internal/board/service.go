package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"jobportal/board-service/internal/identity"
)

// Service encapsulates the registry and ledger business logic. Every
// mutating method runs the same sequence: gate check, validate, mutate,
// notify. It has no dependency on net/http.
type Service struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

// NewService returns a configured Service.
func NewService(pool *pgxpool.Pool, rdb *redis.Client) *Service {
	return &Service{pool: pool, rdb: rdb}
}

func forbidden(d Decision) error {
	return &ForbiddenError{Reason: d.Reason}
}

// ─── Job registry ────────────────────────────────────────────────────────────

// ListActive returns active postings narrowed by the filter, newest first.
func (s *Service) ListActive(ctx context.Context, f JobFilter) ([]Job, error) {
	if f.JobType != "" {
		if _, err := ParseJobType(f.JobType); err != nil {
			return nil, &ValidationError{Field: "jobType", Msg: err.Error()}
		}
	}

	sql, args := buildListQuery(f)
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("listActive query: %w", err)
	}
	defer rows.Close()

	jobs := make([]Job, 0)
	for rows.Next() {
		var j Job
		if err := scanJob(rows, &j); err != nil {
			return nil, fmt.Errorf("listActive scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// GetActive returns one active posting, or ErrNotFound. Inactive postings
// are hidden from the public surface, not deleted.
func (s *Service) GetActive(ctx context.Context, id string) (*Job, error) {
	return s.jobByID(ctx, id, true)
}

// Create validates and inserts a new posting for the acting employer.
// Postings are always born active.
func (s *Service) Create(ctx context.Context, actor *identity.Identity, f JobFields) (*Job, error) {
	if d := Check(actor, OpPostJob, ""); !d.Allowed {
		return nil, forbidden(d)
	}
	if err := ValidateJobFields(f); err != nil {
		return nil, err
	}

	var id string
	err := s.pool.QueryRow(ctx,
		`INSERT INTO jobs (employer_id, title, description, requirements, location, job_type, salary_min, salary_max)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		actor.ID, f.Title, f.Description, f.Requirements, f.Location, f.JobType, f.SalaryMin, f.SalaryMax,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	job, err := s.jobByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "EVENT_JOB_POSTED", map[string]string{
		"jobId":      job.ID,
		"employerId": job.EmployerID,
		"title":      job.Title,
	})
	return job, nil
}

// Update re-validates and rewrites a posting owned by the acting employer.
func (s *Service) Update(ctx context.Context, actor *identity.Identity, id string, f JobFields) (*Job, error) {
	if d := Check(actor, OpEditJob, ""); !d.Allowed {
		return nil, forbidden(d)
	}

	job, err := s.jobByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if d := Check(actor, OpEditJob, job.EmployerID); !d.Allowed {
		return nil, forbidden(d)
	}

	if err := ValidateJobFields(f); err != nil {
		return nil, err
	}

	_, err = s.pool.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, requirements = $4, location = $5,
		     job_type = $6, salary_min = $7, salary_max = $8
		 WHERE id = $1`,
		id, f.Title, f.Description, f.Requirements, f.Location, f.JobType, f.SalaryMin, f.SalaryMax)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	return s.jobByID(ctx, id, false)
}

// Delete removes a posting owned by the acting employer. The foreign key
// cascade removes every application against it in the same statement.
func (s *Service) Delete(ctx context.Context, actor *identity.Identity, id string) error {
	if d := Check(actor, OpDeleteJob, ""); !d.Allowed {
		return forbidden(d)
	}

	job, err := s.jobByID(ctx, id, false)
	if err != nil {
		return err
	}
	if d := Check(actor, OpDeleteJob, job.EmployerID); !d.Allowed {
		return forbidden(d)
	}

	if _, err := s.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	s.notify(ctx, "EVENT_JOB_DELETED", map[string]string{
		"jobId":      id,
		"employerId": job.EmployerID,
	})
	return nil
}

// ListMine returns the acting employer's own postings, active and inactive,
// newest first, with application tallies.
func (s *Service) ListMine(ctx context.Context, actor *identity.Identity) ([]OwnedJob, error) {
	if d := Check(actor, OpListOwnJobs, ""); !d.Allowed {
		return nil, forbidden(d)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+jobColumns+`, COUNT(a.id)
		 FROM jobs j
		 LEFT JOIN employer_profiles ep ON ep.identity_id = j.employer_id
		 LEFT JOIN applications a ON a.job_id = j.id
		 WHERE j.employer_id = $1
		 GROUP BY j.id, ep.company_name
		 ORDER BY j.created_at DESC`,
		actor.ID)
	if err != nil {
		return nil, fmt.Errorf("listMine query: %w", err)
	}
	defer rows.Close()

	jobs := make([]OwnedJob, 0)
	for rows.Next() {
		var (
			j       Job
			jobType string
			count   int
		)
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.CompanyName,
			&j.Title, &j.Description, &j.Requirements, &j.Location, &jobType,
			&j.SalaryMin, &j.SalaryMax, &j.IsActive, &j.CreatedAt,
			&count,
		); err != nil {
			return nil, fmt.Errorf("listMine scan: %w", err)
		}
		j.JobType, _ = ParseJobType(jobType)
		jobs = append(jobs, OwnedJob{Job: j, ApplicationCount: count})
	}
	return jobs, rows.Err()
}

// ─── Application ledger ──────────────────────────────────────────────────────

// Apply records a seeker's submission against an active posting.
//
// The (job_id, applicant_id) unique constraint makes the duplicate check
// race-free: a concurrent second apply loses at the database, not at an
// existence check, and comes back as ErrDuplicate.
func (s *Service) Apply(ctx context.Context, actor *identity.Identity, jobID, coverLetter string) (*Application, error) {
	job, err := s.jobByID(ctx, jobID, true)
	if err != nil {
		return nil, err
	}

	if d := Check(actor, OpApply, ""); !d.Allowed {
		return nil, forbidden(d)
	}

	app := Application{
		JobID:       job.ID,
		JobTitle:    job.Title,
		JobLocation: job.Location,
		CompanyName: job.CompanyName,
	}
	var status string
	err = s.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, applicant_id, cover_letter)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (job_id, applicant_id) DO NOTHING
		 RETURNING id, cover_letter, status, applied_at`,
		job.ID, actor.ID, coverLetter,
	).Scan(&app.ID, &app.CoverLetter, &status, &app.AppliedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("apply insert: %w", err)
	}
	app.Status, _ = ParseApplicationStatus(status)

	s.notify(ctx, "EVENT_APPLICATION_RECEIVED", map[string]string{
		"applicationId": app.ID,
		"jobId":         job.ID,
		"employerId":    job.EmployerID,
		"applicantId":   actor.ID,
	})
	return &app, nil
}

// ListForApplicant returns the acting seeker's applications, newest first,
// with the job and its employer resolved eagerly.
func (s *Service) ListForApplicant(ctx context.Context, actor *identity.Identity) ([]Application, error) {
	if d := Check(actor, OpListOwnApps, ""); !d.Allowed {
		return nil, forbidden(d)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.job_id, a.cover_letter, a.status, a.applied_at,
		        j.title, j.location, COALESCE(ep.company_name, '')
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 LEFT JOIN employer_profiles ep ON ep.identity_id = j.employer_id
		 WHERE a.applicant_id = $1
		 ORDER BY a.applied_at DESC`,
		actor.ID)
	if err != nil {
		return nil, fmt.Errorf("listForApplicant query: %w", err)
	}
	defer rows.Close()

	apps := make([]Application, 0)
	for rows.Next() {
		var (
			a      Application
			status string
		)
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.CoverLetter, &status, &a.AppliedAt,
			&a.JobTitle, &a.JobLocation, &a.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("listForApplicant scan: %w", err)
		}
		a.Status, _ = ParseApplicationStatus(status)
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ListForJob returns every submission against a posting owned by the
// acting employer, newest first, with applicant profiles resolved eagerly.
func (s *Service) ListForJob(ctx context.Context, actor *identity.Identity, jobID string) ([]JobApplication, error) {
	if d := Check(actor, OpViewApplications, ""); !d.Allowed {
		return nil, forbidden(d)
	}

	job, err := s.jobByID(ctx, jobID, false)
	if err != nil {
		return nil, err
	}
	if d := Check(actor, OpViewApplications, job.EmployerID); !d.Allowed {
		return nil, forbidden(d)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.applicant_id, i.username, i.email,
		        a.cover_letter, a.status, a.applied_at,
		        COALESCE(sp.skills, ''), COALESCE(sp.experience_years, 0),
		        COALESCE(sp.education, ''), COALESCE(sp.resume_url, '')
		 FROM applications a
		 JOIN identities i ON i.id = a.applicant_id
		 LEFT JOIN seeker_profiles sp ON sp.identity_id = i.id
		 WHERE a.job_id = $1
		 ORDER BY a.applied_at DESC`,
		job.ID)
	if err != nil {
		return nil, fmt.Errorf("listForJob query: %w", err)
	}
	defer rows.Close()

	apps := make([]JobApplication, 0)
	for rows.Next() {
		var (
			a      JobApplication
			status string
		)
		if err := rows.Scan(
			&a.ID, &a.ApplicantID, &a.Username, &a.Email,
			&a.CoverLetter, &status, &a.AppliedAt,
			&a.Skills, &a.ExperienceYears, &a.Education, &a.ResumeURL,
		); err != nil {
			return nil, fmt.Errorf("listForJob scan: %w", err)
		}
		a.Status, _ = ParseApplicationStatus(status)
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// jobByID fetches one posting. With activeOnly, inactive postings are
// indistinguishable from missing ones.
func (s *Service) jobByID(ctx context.Context, id string, activeOnly bool) (*Job, error) {
	sql := `SELECT ` + jobColumns + `
		FROM jobs j
		LEFT JOIN employer_profiles ep ON ep.identity_id = j.employer_id
		WHERE j.id = $1`
	if activeOnly {
		sql += ` AND j.is_active`
	}

	var j Job
	row := s.pool.QueryRow(ctx, sql, id)
	if err := scanJob(row, &j); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select job: %w", err)
	}
	return &j, nil
}

func scanJob(row pgx.Row, j *Job) error {
	var jobType string
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.CompanyName,
		&j.Title, &j.Description, &j.Requirements, &j.Location, &jobType,
		&j.SalaryMin, &j.SalaryMax, &j.IsActive, &j.CreatedAt,
	)
	if err != nil {
		return err
	}
	j.JobType, _ = ParseJobType(jobType)
	return nil
}

// notify publishes a workflow event for downstream consumers (non-fatal).
func (s *Service) notify(ctx context.Context, channel string, payload map[string]string) {
	event, _ := json.Marshal(payload)
	if err := s.rdb.Publish(ctx, channel, event).Err(); err != nil {
		slog.Warn("publish "+channel+" failed", "err", err)
	}
}
