package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied at startup. Statements are idempotent so restarts are safe.
//
// The UNIQUE(job_id, applicant_id) constraint on applications is load-bearing:
// duplicate applications are rejected by the database, not by a
// read-then-write check, so concurrent applies cannot slip a second row in.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS identities (
		id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		username      text NOT NULL UNIQUE,
		email         text NOT NULL,
		password_hash text NOT NULL,
		role          text NOT NULL CHECK (role IN ('job_seeker', 'employer')),
		first_name    text NOT NULL DEFAULT '',
		last_name     text NOT NULL DEFAULT '',
		phone         text NOT NULL DEFAULT '',
		created_at    timestamptz NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS seeker_profiles (
		identity_id      uuid PRIMARY KEY REFERENCES identities(id) ON DELETE CASCADE,
		resume_url       text NOT NULL DEFAULT '',
		skills           text NOT NULL DEFAULT '',
		experience_years int  NOT NULL DEFAULT 0 CHECK (experience_years >= 0),
		education        text NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS employer_profiles (
		identity_id  uuid PRIMARY KEY REFERENCES identities(id) ON DELETE CASCADE,
		company_name text NOT NULL,
		description  text NOT NULL DEFAULT '',
		website      text NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS jobs (
		id           uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		employer_id  uuid NOT NULL REFERENCES identities(id) ON DELETE CASCADE,
		title        text NOT NULL,
		description  text NOT NULL,
		requirements text NOT NULL DEFAULT '',
		location     text NOT NULL,
		job_type     text NOT NULL CHECK (job_type IN ('full_time', 'part_time', 'contract', 'internship')),
		salary_min   bigint CHECK (salary_min >= 0),
		salary_max   bigint CHECK (salary_max >= 0),
		is_active    boolean NOT NULL DEFAULT true,
		created_at   timestamptz NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS jobs_active_created_idx ON jobs (is_active, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS applications (
		id           uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		job_id       uuid NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		applicant_id uuid NOT NULL REFERENCES identities(id) ON DELETE CASCADE,
		cover_letter text NOT NULL DEFAULT '',
		status       text NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'rejected')),
		applied_at   timestamptz NOT NULL DEFAULT NOW(),
		UNIQUE (job_id, applicant_id)
	)`,
}

// Bootstrap creates all tables and indexes if they do not exist yet.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}
	return nil
}
