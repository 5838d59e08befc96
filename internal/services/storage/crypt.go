package storage

import (
	"bytes"
	"io"

	"filippo.io/age"
)

// ageHeader is the prefix every age envelope starts with.
const ageHeader = "age-encryption.org"

// keyPair holds both directions of a password-derived scrypt key.
type keyPair struct {
	identity  *age.ScryptIdentity
	recipient *age.ScryptRecipient
}

func deriveKeyPair(password string) (*keyPair, error) {
	identity, err := age.NewScryptIdentity(password)
	if err != nil {
		return nil, err
	}
	recipient, err := age.NewScryptRecipient(password)
	if err != nil {
		return nil, err
	}
	return &keyPair{identity: identity, recipient: recipient}, nil
}

// seal wraps plaintext in an age envelope for the pair's recipient.
func (k *keyPair) seal(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, k.recipient)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(plaintext); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unseal reverses seal. It fails when the password behind the pair does
// not match the envelope.
func (k *keyPair) unseal(envelope []byte) ([]byte, error) {
	r, err := age.Decrypt(bytes.NewReader(envelope), k.identity)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

func isAgeEncrypted(data []byte) bool {
	return len(data) > len(ageHeader) && string(data[:len(ageHeader)]) == ageHeader
}
