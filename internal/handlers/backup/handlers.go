// Package backup serves the health check, plaintext backup download, and
// the encryption management endpoints.
package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"casense/internal/config"
	api "casense/internal/http"
	"casense/internal/services/storage"
	"casense/internal/version"
)

var (
	cfg   *config.Config
	store *storage.Storage
)

// Initialize sets up the backup package with required dependencies
func Initialize(c *config.Config, s *storage.Storage) {
	cfg = c
	store = s
}

// RegisterRoutes registers the health, backup and encryption routes
func RegisterRoutes(r chi.Router) {
	r.Get("/api/health", HandleHealth)
	r.Get("/api/backup", HandleBackup)
	r.Post("/api/encryption/enable", handleEnableEncryption)
	r.Post("/api/encryption/disable", handleDisableEncryption)
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"version":   version.Version,
		"encrypted": store.IsEncrypted(),
	})
}

// HandleBackup streams a zip of the data directory. Files are read through
// the storage layer so the archive is always plaintext.
func HandleBackup(w http.ResponseWriter, r *http.Request) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("casense_backup_%s.zip", timestamp)

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	zw := zip.NewWriter(w)
	defer zw.Close()

	dataDir := cfg.DataDirectory
	err := filepath.Walk(dataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		// Skip encryption marker and verify files
		base := filepath.Base(path)
		if base == ".encrypted" || base == ".encryption-verify" {
			return nil
		}

		relPath, err := filepath.Rel(dataDir, path)
		if err != nil {
			return err
		}

		f, err := zw.Create(relPath)
		if err != nil {
			return err
		}

		file, err := store.OpenFile(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(f, file)
		return err
	})

	if err != nil {
		// Headers are already written; all we can do is log.
		log.Printf("Error creating backup: %v", err)
	}
}

type encryptionRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

func handleEnableEncryption(w http.ResponseWriter, r *http.Request) {
	var req encryptionRequest
	if err := api.DecodeValid(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if store.IsEncrypted() {
		api.Fail(w, http.StatusConflict, "encryption is already enabled")
		return
	}

	if err := store.EnableEncryption(req.Password); err != nil {
		log.Printf("Error enabling encryption: %v", err)
		api.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Println("Encryption enabled for data directory")
	api.Success(w, http.StatusOK, map[string]any{"message": "encryption enabled"})
}

func handleDisableEncryption(w http.ResponseWriter, r *http.Request) {
	var req encryptionRequest
	if err := api.DecodeValid(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if !store.IsEncrypted() {
		api.Fail(w, http.StatusConflict, "encryption is not enabled")
		return
	}

	if err := store.DisableEncryption(req.Password); err != nil {
		log.Printf("Error disabling encryption: %v", err)
		api.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Println("Encryption disabled for data directory")
	api.Success(w, http.StatusOK, map[string]any{"message": "encryption disabled"})
}
