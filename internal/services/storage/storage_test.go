package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir)
	if err != nil {
		t.Fatalf("storage.New failed: %v", err)
	}

	// Write unencrypted file
	testFile := filepath.Join(dir, "data.json")
	original := []byte(`{"clients":[],"transactions":[],"invoices":[]}`)

	if err := st.WriteFile(testFile, original, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	read, err := st.ReadFile(testFile)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(read) != string(original) {
		t.Errorf("Content mismatch before encryption")
	}

	// Enable encryption
	password := "testpassword123"
	if err := st.EnableEncryption(password); err != nil {
		t.Fatalf("EnableEncryption failed: %v", err)
	}
	if !st.IsEncrypted() {
		t.Error("Expected IsEncrypted() to return true")
	}

	// Verify file is encrypted on disk
	rawData, _ := os.ReadFile(testFile)
	if !isAgeEncrypted(rawData) {
		t.Error("File should be encrypted on disk")
	}

	// Read should still return original content (decrypted)
	read, err = st.ReadFile(testFile)
	if err != nil {
		t.Fatalf("ReadFile after enable failed: %v", err)
	}
	if string(read) != string(original) {
		t.Errorf("Content mismatch after encryption: got %q, want %q", string(read), string(original))
	}

	// Lock and unlock
	st.Lock()
	if err := st.Unlock(password); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}

	read, err = st.ReadFile(testFile)
	if err != nil {
		t.Fatalf("ReadFile after unlock failed: %v", err)
	}
	if string(read) != string(original) {
		t.Errorf("Content mismatch after unlock")
	}

	// Disable encryption
	if err := st.DisableEncryption(password); err != nil {
		t.Fatalf("DisableEncryption failed: %v", err)
	}
	if st.IsEncrypted() {
		t.Error("Expected IsEncrypted() to return false after disable")
	}

	rawData, _ = os.ReadFile(testFile)
	if isAgeEncrypted(rawData) {
		t.Error("File should be decrypted on disk")
	}
	if string(rawData) != string(original) {
		t.Errorf("Raw content mismatch after decryption")
	}
}

func TestWrongPassword(t *testing.T) {
	dir := t.TempDir()
	st, _ := New(dir)

	testFile := filepath.Join(dir, "data.json")
	if err := st.WriteFile(testFile, []byte(`{"clients":[]}`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := st.EnableEncryption("correcthorse"); err != nil {
		t.Fatalf("EnableEncryption failed: %v", err)
	}

	st.Lock()
	if err := st.Unlock("wrongpassword"); err == nil {
		t.Error("Expected unlock with wrong password to fail")
	}
	if st.IsUnlocked() {
		t.Error("Storage should remain locked after a failed unlock")
	}

	// The right password still works afterwards
	if err := st.Unlock("correcthorse"); err != nil {
		t.Fatalf("Unlock with correct password failed: %v", err)
	}
}

func TestEnableEncryptionShortPassword(t *testing.T) {
	dir := t.TempDir()
	st, _ := New(dir)

	if err := st.EnableEncryption("short"); err == nil {
		t.Error("Expected short password to be rejected")
	}
	if st.IsEncrypted() {
		t.Error("Storage should not be marked encrypted after rejection")
	}
}

func TestLockedReadFails(t *testing.T) {
	dir := t.TempDir()
	st, _ := New(dir)

	testFile := filepath.Join(dir, "data.json")
	if err := st.WriteFile(testFile, []byte(`{}`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := st.EnableEncryption("testpassword123"); err != nil {
		t.Fatalf("EnableEncryption failed: %v", err)
	}

	st.Lock()
	if _, err := st.ReadFile(testFile); err == nil {
		t.Error("Expected reading an encrypted file while locked to fail")
	}
}

func TestOnlyJSONFilesEncrypted(t *testing.T) {
	dir := t.TempDir()
	st, _ := New(dir)

	jsonFile := filepath.Join(dir, "data.json")
	noteFile := filepath.Join(dir, "notes.txt")
	if err := st.WriteFile(jsonFile, []byte(`{}`), 0644); err != nil {
		t.Fatalf("writing json file failed: %v", err)
	}
	if err := os.WriteFile(noteFile, []byte("plain notes"), 0644); err != nil {
		t.Fatalf("writing note file failed: %v", err)
	}

	if err := st.EnableEncryption("testpassword123"); err != nil {
		t.Fatalf("EnableEncryption failed: %v", err)
	}

	jsonRaw, _ := os.ReadFile(jsonFile)
	if !isAgeEncrypted(jsonRaw) {
		t.Error("json file should be encrypted")
	}
	noteRaw, _ := os.ReadFile(noteFile)
	if isAgeEncrypted(noteRaw) {
		t.Error("non-json file should stay plaintext")
	}
}
