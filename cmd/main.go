// board-service — job portal backend
//
// Job seekers register, browse and apply to postings; employers register,
// post jobs and review applicants. Exposes a JSON API used by the web and
// mobile clients:
//   - public job listing with search/location/type filters
//   - posting lifecycle (post, edit, delete) guarded by the authorization gate
//   - application ledger (apply, my-applications, per-job applications)
//
// Publishes workflow events (EVENT_JOB_POSTED, EVENT_APPLICATION_RECEIVED,
// EVENT_JOB_DELETED) to Redis for downstream consumers.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobportal/board-service/internal/auth"
	"jobportal/board-service/internal/board"
	"jobportal/board-service/internal/config"
	"jobportal/board-service/internal/db"
	"jobportal/board-service/internal/identity"
	"jobportal/board-service/internal/scheduler"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[board-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[board-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[board-service] PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := db.Bootstrap(ctx, pool); err != nil {
		log.Fatalf("[board-service] Schema: %v", err)
	}
	log.Println("[board-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[board-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[board-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[board-service] Redis connected ✓")

	// ── Services ─────────────────────────────────────────────────────────────
	tokens := auth.NewTokens(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	identitySvc := identity.NewService(pool)
	boardSvc := board.NewService(pool, rdb)

	// ── Expiry sweep ─────────────────────────────────────────────────────────
	if cfg.JobExpiryDays > 0 {
		sweep := scheduler.New(pool, cfg.JobExpiryDays)
		if err := sweep.Start(ctx); err != nil {
			log.Fatalf("[board-service] Scheduler: %v", err)
		}
		defer sweep.Stop()
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	identity.NewHandler(identitySvc, tokens).RegisterRoutes(mux)
	board.NewHandler(boardSvc).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      identity.Middleware(tokens, identitySvc)(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[board-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[board-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[board-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[board-service] Shutdown error: %v", err)
	}
	log.Println("[board-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "board-service",
		"version": version,
	})
}
