package cryptoutil

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrIntegrityViolation is returned when a stored archive's MAC does not
// match its ciphertext — a fatal, surfaced-as-409 condition per §4.4.7.
var ErrIntegrityViolation = errors.New("history archive integrity violation")

const historyMACInfo = "duel-server/game-history/mac-v1"

// HistoryCipher seals and opens game-history archive snapshots with
// AES-256-GCM, and separately tags the ciphertext with an HMAC-SHA256 key
// derived from the same master key by domain-separated HKDF, matching
// §4.4.7's "key derived by domain-separated hashing of the same master key".
type HistoryCipher struct {
	aead   cipher.AEAD
	macKey []byte
}

// NewHistoryCipher builds a HistoryCipher from a 32-byte master key (as
// configured via GAME_HISTORY_KEY).
func NewHistoryCipher(masterKey []byte) (*HistoryCipher, error) {
	if len(masterKey) != 32 {
		return nil, fmt.Errorf("history master key must be 32 bytes, got %d", len(masterKey))
	}
	block, err := aes.NewCipher(masterKey)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	macKey := make([]byte, 32)
	kdf := hkdf.New(sha256.New, masterKey, nil, []byte(historyMACInfo))
	if _, err := io.ReadFull(kdf, macKey); err != nil {
		return nil, err
	}

	return &HistoryCipher{aead: aead, macKey: macKey}, nil
}

// DecodeMasterKey decodes a url-safe base64 32-byte key, as GAME_HISTORY_KEY
// is configured per §6.4.
func DecodeMasterKey(encoded string) ([]byte, error) {
	return base64.URLEncoding.DecodeString(encoded)
}

// Sealed is a ciphertext + integrity tag pair ready for storage.
type Sealed struct {
	Ciphertext []byte
	Tag        []byte
}

// Seal encrypts plaintext and computes its integrity tag.
func (h *HistoryCipher) Seal(plaintext []byte) (Sealed, error) {
	nonce := make([]byte, h.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return Sealed{}, err
	}
	ciphertext := h.aead.Seal(nonce, nonce, plaintext, nil)
	tag := h.tag(ciphertext)
	return Sealed{Ciphertext: ciphertext, Tag: tag}, nil
}

// Open verifies the MAC over ciphertext, then decrypts it. A MAC mismatch
// returns ErrIntegrityViolation without touching the ciphertext further —
// callers must never return the suspected plaintext on mismatch.
func (h *HistoryCipher) Open(sealed Sealed) ([]byte, error) {
	expected := h.tag(sealed.Ciphertext)
	if !hmac.Equal(expected, sealed.Tag) {
		return nil, ErrIntegrityViolation
	}

	nonceSize := h.aead.NonceSize()
	if len(sealed.Ciphertext) < nonceSize {
		return nil, ErrIntegrityViolation
	}
	nonce, ciphertext := sealed.Ciphertext[:nonceSize], sealed.Ciphertext[nonceSize:]
	plaintext, err := h.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrIntegrityViolation
	}
	return plaintext, nil
}

func (h *HistoryCipher) tag(ciphertext []byte) []byte {
	mac := hmac.New(sha256.New, h.macKey)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}
