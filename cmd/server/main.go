package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"casense/internal/config"
	"casense/internal/handlers/backup"
	"casense/internal/handlers/clients"
	"casense/internal/handlers/compliance"
	"casense/internal/handlers/dashboard"
	"casense/internal/handlers/insights"
	"casense/internal/handlers/invoices"
	"casense/internal/handlers/reports"
	"casense/internal/handlers/tax"
	"casense/internal/handlers/transactions"
	"casense/internal/services/storage"
	"casense/internal/services/store"
	"casense/internal/version"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	log.Printf("Starting CAsense (%s)", version.Get())
	log.Printf("Data directory: %s", cfg.DataDirectory)

	st, err := storage.New(cfg.DataDirectory)
	if err != nil {
		log.Fatalf("Storage error: %v", err)
	}

	if st.IsEncrypted() && !st.IsUnlocked() {
		if err := unlockInteractive(st); err != nil {
			log.Fatalf("Unlock failed: %v", err)
		}
	}

	records := store.New(st, cfg.DataFile())
	setupDependencies(cfg, st, records)

	r := setupRouter(cfg)

	log.Printf("Server starting on %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}

// unlockInteractive prompts for the encryption password on the terminal.
// Non-interactive deployments can supply CASENSE_PASSWORD instead.
func unlockInteractive(st *storage.Storage) error {
	if pw := os.Getenv("CASENSE_PASSWORD"); pw != "" {
		return st.Unlock(pw)
	}

	for attempts := 0; attempts < 3; attempts++ {
		fmt.Fprint(os.Stderr, "Data directory is encrypted. Password: ")
		pw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		if err := st.Unlock(string(pw)); err != nil {
			log.Printf("Unlock attempt failed: %v", err)
			continue
		}
		return nil
	}
	return fmt.Errorf("too many failed attempts")
}

// setupDependencies wires the handler packages. Split out from main so
// tests can stand up the full API against a temporary directory.
func setupDependencies(cfg *config.Config, st *storage.Storage, records *store.Store) {
	clients.Initialize(records)
	transactions.Initialize(records)
	invoices.Initialize(records)
	dashboard.Initialize(records)
	reports.Initialize(records)
	insights.Initialize(records)
	backup.Initialize(cfg, st)
}

func setupRouter(cfg *config.Config) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))

	// Routes
	clients.RegisterRoutes(r)
	transactions.RegisterRoutes(r)
	invoices.RegisterRoutes(r)
	dashboard.RegisterRoutes(r)
	reports.RegisterRoutes(r)
	tax.RegisterRoutes(r)
	insights.RegisterRoutes(r)
	compliance.RegisterRoutes(r)
	backup.RegisterRoutes(r)

	return r
}
