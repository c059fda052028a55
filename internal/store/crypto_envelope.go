package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"sementinha/internal/domain"
	"sementinha/internal/util/memzero"
)

// sealedArtifactVersion is the layout version written by Seal.
const sealedArtifactVersion = 1

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect, the
	// artifact was renamed, or its content was modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or tampered artifact")
)

// kdfParams are the scrypt cost parameters recorded with each artifact.
type kdfParams struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// sealedArtifact is the JSON layout of a sealed export file. The artifact
// name is authenticated as additional data but not stored.
type sealedArtifact struct {
	Version int       `json:"version"`
	KDF     kdfParams `json:"kdf"`
	Salt    []byte    `json:"salt"`
	Nonce   []byte    `json:"nonce"`
	Body    []byte    `json:"body"`
}

// Envelope seals export artifacts with ChaCha20-Poly1305 under a key derived
// from a passphrase with scrypt.
type Envelope struct {
	kdf kdfParams
}

// NewEnvelope returns an Envelope with the default scrypt parameters.
func NewEnvelope() Envelope {
	return Envelope{kdf: kdfParams{N: 1 << 15, R: 8, P: 1}}
}

// Seal encrypts raw for the artifact called name.
func (e Envelope) Seal(passphrase, name string, raw []byte) ([]byte, error) {
	kdf := e.kdf
	if kdf.N == 0 {
		kdf = NewEnvelope().kdf
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	aead, err := artifactCipher(passphrase, salt, kdf)
	if err != nil {
		return nil, fmt.Errorf("seal %s: %w", name, err)
	}
	return json.Marshal(sealedArtifact{
		Version: sealedArtifactVersion,
		KDF:     kdf,
		Salt:    salt,
		Nonce:   nonce,
		Body:    aead.Seal(nil, nonce, raw, []byte(name)),
	})
}

// Open reverses Seal. name must be the name the artifact was sealed for.
func (Envelope) Open(passphrase, name string, sealed []byte) ([]byte, error) {
	var sa sealedArtifact
	if err := json.Unmarshal(sealed, &sa); err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	if sa.Version != sealedArtifactVersion {
		return nil, fmt.Errorf("open %s: unsupported version %d", name, sa.Version)
	}
	if len(sa.Nonce) != chacha20poly1305.NonceSize {
		return nil, ErrWrongPassphrase
	}

	aead, err := artifactCipher(passphrase, sa.Salt, sa.KDF)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	pt, err := aead.Open(nil, sa.Nonce, sa.Body, []byte(name))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// artifactCipher derives the artifact key and wipes it, together with the
// passphrase copy, once the AEAD holds its own.
func artifactCipher(passphrase string, salt []byte, kdf kdfParams) (cipher.AEAD, error) {
	pw := []byte(passphrase)
	key, err := scrypt.Key(pw, salt, kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	defer memzero.Zero(pw, key)
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.New(key)
}

// Compile-time assertion that Envelope implements domain.Sealer.
var _ domain.Sealer = Envelope{}
