package board_test

// Database-backed tests for the two constraints the schema enforces on the
// application ledger: one application per (job, applicant), and no
// applications surviving their job. Set DATABASE_URL to run them.

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"jobportal/board-service/internal/board"
	"jobportal/board-service/internal/db"
	"jobportal/board-service/internal/identity"
)

func newDBServices(t *testing.T) (*pgxpool.Pool, *identity.Service, *board.Service) {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Bootstrap(ctx, pool); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	// Publish failures are logged and ignored by the service, so the
	// notifier does not need a reachable redis here.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
	if url := os.Getenv("REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			t.Fatalf("parse REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opt)
	}

	return pool, identity.NewService(pool), board.NewService(pool, rdb)
}

func registerTestEmployer(t *testing.T, svc *identity.Service) *identity.Identity {
	t.Helper()
	ident, err := svc.RegisterEmployer(context.Background(), identity.RegisterEmployerInput{
		RegisterInput: identity.RegisterInput{
			Username: "emp-" + uuid.NewString(),
			Email:    "employer@example.com",
			Password: "orange-crate-77",
		},
		CompanyName: "Crate & Fiddle",
	})
	if err != nil {
		t.Fatalf("register employer: %v", err)
	}
	return ident
}

func registerTestSeeker(t *testing.T, svc *identity.Service) *identity.Identity {
	t.Helper()
	ident, err := svc.RegisterSeeker(context.Background(), identity.RegisterInput{
		Username: "seeker-" + uuid.NewString(),
		Email:    "seeker@example.com",
		Password: "orange-crate-77",
	})
	if err != nil {
		t.Fatalf("register seeker: %v", err)
	}
	return ident
}

func postTestJob(t *testing.T, svc *board.Service, employer *identity.Identity) *board.Job {
	t.Helper()
	job, err := svc.Create(context.Background(), employer, board.JobFields{
		Title:       "Luthier",
		Description: "Carves and assembles instrument bodies.",
		Location:    "Porto",
		JobType:     "full_time",
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	return job
}

func countApplications(t *testing.T, pool *pgxpool.Pool, jobID string) int {
	t.Helper()
	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID).Scan(&n)
	if err != nil {
		t.Fatalf("count applications: %v", err)
	}
	return n
}

func TestApply_SecondSubmissionConflicts(t *testing.T) {
	pool, idSvc, boardSvc := newDBServices(t)
	ctx := context.Background()

	employer := registerTestEmployer(t, idSvc)
	seeker := registerTestSeeker(t, idSvc)
	job := postTestJob(t, boardSvc, employer)
	defer func() { _ = boardSvc.Delete(ctx, employer, job.ID) }()

	app, err := boardSvc.Apply(ctx, seeker, job.ID, "First and only.")
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if app.Status != board.StatusPending {
		t.Errorf("status = %q, want %q", app.Status, board.StatusPending)
	}

	if _, err := boardSvc.Apply(ctx, seeker, job.ID, "Trying again."); !errors.Is(err, board.ErrDuplicate) {
		t.Fatalf("second apply err = %v, want ErrDuplicate", err)
	}

	// The losing insert must not leave a second row behind.
	if n := countApplications(t, pool, job.ID); n != 1 {
		t.Errorf("ledger rows for job = %d, want 1", n)
	}
}

func TestDelete_RemovesApplicationsWithJob(t *testing.T) {
	pool, idSvc, boardSvc := newDBServices(t)
	ctx := context.Background()

	employer := registerTestEmployer(t, idSvc)
	job := postTestJob(t, boardSvc, employer)

	for range 2 {
		seeker := registerTestSeeker(t, idSvc)
		if _, err := boardSvc.Apply(ctx, seeker, job.ID, ""); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	if n := countApplications(t, pool, job.ID); n != 2 {
		t.Fatalf("ledger rows before delete = %d, want 2", n)
	}

	if err := boardSvc.Delete(ctx, employer, job.ID); err != nil {
		t.Fatalf("delete job: %v", err)
	}

	if _, err := boardSvc.GetActive(ctx, job.ID); !errors.Is(err, board.ErrNotFound) {
		t.Errorf("GetActive after delete err = %v, want ErrNotFound", err)
	}
	if n := countApplications(t, pool, job.ID); n != 0 {
		t.Errorf("ledger rows after delete = %d, want 0", n)
	}
}
