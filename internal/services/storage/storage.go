// Package storage provides transparent encrypted-at-rest access to the data
// directory. Encryption is optional: a marker file switches it on, and a
// password-derived age identity decrypts documents on read.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	// markerFile flags the directory as encrypted.
	markerFile = ".encrypted"

	// verifyFile holds a sealed known plaintext so a password can be
	// checked without touching any document.
	verifyFile = ".encryption-verify"

	// verifyMagic is that known plaintext.
	verifyMagic = `{"magic":"casense-encryption-verify","version":1}`
)

// ErrLocked is returned when an encrypted document is read before Unlock.
var ErrLocked = errors.New("storage is locked")

// Storage reads and writes files under a base directory. When the directory
// carries the encryption marker, documents are sealed on write and opened on
// read with the key derived from the unlock password.
type Storage struct {
	mu        sync.RWMutex
	baseDir   string
	encrypted bool
	keys      *keyPair
}

// New creates a Storage rooted at baseDir and probes for the marker file.
func New(baseDir string) (*Storage, error) {
	s := &Storage{baseDir: baseDir}
	if _, err := os.Stat(s.metaPath(markerFile)); err == nil {
		s.encrypted = true
	}
	return s, nil
}

func (s *Storage) metaPath(name string) string {
	return filepath.Join(s.baseDir, name)
}

// BaseDir returns the directory the storage is rooted at.
func (s *Storage) BaseDir() string {
	return s.baseDir
}

// IsEncrypted reports whether the directory carries the encryption marker.
func (s *Storage) IsEncrypted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.encrypted
}

// IsUnlocked reports whether documents can be read right now, either because
// the directory is plaintext or because Unlock succeeded.
func (s *Storage) IsUnlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.encrypted || s.keys != nil
}

// Unlock checks the password against the verification file and, on success,
// keeps the derived key in memory for later reads and writes.
func (s *Storage) Unlock(password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.encrypted {
		return nil
	}

	keys, err := s.checkPassword(password)
	if err != nil {
		return err
	}
	s.keys = keys
	return nil
}

// checkPassword derives a key from password and proves it against the
// verification file. Callers hold the write lock.
func (s *Storage) checkPassword(password string) (*keyPair, error) {
	keys, err := deriveKeyPair(password)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	sealed, err := os.ReadFile(s.metaPath(verifyFile))
	if err != nil {
		return nil, fmt.Errorf("read verification file: %w", err)
	}
	plain, err := keys.unseal(sealed)
	if err != nil || string(plain) != verifyMagic {
		return nil, errors.New("incorrect password")
	}
	return keys, nil
}

// Lock drops the key from memory.
func (s *Storage) Lock() {
	s.mu.Lock()
	s.keys = nil
	s.mu.Unlock()
}

// ReadFile reads a file, opening the age envelope when there is one.
func (s *Storage) ReadFile(path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !isAgeEncrypted(data) {
		return data, nil
	}
	if s.keys == nil {
		return nil, ErrLocked
	}
	return s.keys.unseal(data)
}

// OpenFile returns a reader over the decrypted contents of a file.
func (s *Storage) OpenFile(path string) (io.ReadCloser, error) {
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// WriteFile writes a file atomically, sealing it first when the directory is
// encrypted and unlocked. The encryption bookkeeping files are always written
// as-is.
func (s *Storage) WriteFile(path string, data []byte, perm os.FileMode) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.encrypted && s.keys != nil && !isMetaFile(path) {
		sealed, err := s.keys.seal(data)
		if err != nil {
			return fmt.Errorf("seal %s: %w", filepath.Base(path), err)
		}
		data = sealed
	}
	return writeAtomic(path, data, perm)
}

// Stat returns file info, useful for checking existence.
func (s *Storage) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Remove removes a file.
func (s *Storage) Remove(path string) error {
	return os.Remove(path)
}

func isMetaFile(path string) bool {
	base := filepath.Base(path)
	return base == markerFile || base == verifyFile
}

// writeAtomic goes through a temp file and a rename so a crash mid-write
// never leaves a truncated document behind.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
