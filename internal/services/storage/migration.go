package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnableEncryption seals every JSON document in the data directory with a key
// derived from password. The verification file is written first so Unlock can
// validate passwords; if any document fails to seal, the ones already done
// are restored and the verification file removed.
func (s *Storage) EnableEncryption(password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.encrypted {
		return fmt.Errorf("encryption is already enabled")
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	keys, err := deriveKeyPair(password)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}

	sealed, err := keys.seal([]byte(verifyMagic))
	if err != nil {
		return fmt.Errorf("seal verification file: %w", err)
	}
	verifyPath := s.metaPath(verifyFile)
	if err := os.WriteFile(verifyPath, sealed, 0644); err != nil {
		return fmt.Errorf("write verification file: %w", err)
	}

	docs, err := s.collectFiles(func(path string, data []byte) bool {
		return strings.EqualFold(filepath.Ext(path), ".json") && !isAgeEncrypted(data)
	})
	if err != nil {
		os.Remove(verifyPath)
		return fmt.Errorf("scan data directory: %w", err)
	}

	for i, path := range docs {
		if err := recryptFile(path, keys.seal); err != nil {
			// Restore the documents sealed so far, best effort.
			for _, done := range docs[:i] {
				recryptFile(done, keys.unseal)
			}
			os.Remove(verifyPath)
			return fmt.Errorf("encrypt %s: %w", filepath.Base(path), err)
		}
	}

	if err := os.WriteFile(s.metaPath(markerFile), []byte("encrypted"), 0644); err != nil {
		return fmt.Errorf("write marker file: %w", err)
	}

	s.encrypted = true
	s.keys = keys
	return nil
}

// DisableEncryption opens every sealed file back to plaintext and removes the
// bookkeeping files. The current password is required even when the storage
// is already unlocked.
func (s *Storage) DisableEncryption(password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.encrypted {
		return fmt.Errorf("encryption is not enabled")
	}

	keys, err := s.checkPassword(password)
	if err != nil {
		return err
	}

	sealedFiles, err := s.collectFiles(func(path string, data []byte) bool {
		return isAgeEncrypted(data)
	})
	if err != nil {
		return fmt.Errorf("scan data directory: %w", err)
	}

	for _, path := range sealedFiles {
		if err := recryptFile(path, keys.unseal); err != nil {
			return fmt.Errorf("decrypt %s: %w", filepath.Base(path), err)
		}
	}

	os.Remove(s.metaPath(markerFile))
	os.Remove(s.metaPath(verifyFile))

	s.encrypted = false
	s.keys = nil
	return nil
}

// collectFiles walks the data directory and returns the regular files whose
// path and contents satisfy keep. Bookkeeping files and unreadable files are
// skipped.
func (s *Storage) collectFiles(keep func(path string, data []byte) bool) ([]string, error) {
	var files []string
	err := filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || isMetaFile(path) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		if keep(path, data) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// recryptFile rewrites a file in place through transform, atomically.
func recryptFile(path string, transform func([]byte) ([]byte, error)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := transform(data)
	if err != nil {
		return err
	}
	return writeAtomic(path, out, 0644)
}
