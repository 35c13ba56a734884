package secrets

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
	eerrors "github.com/kowhai-dev/envage/internal/errors"
)

// Envelope syntax for encrypted values stored in env files.
const (
	envelopePrefix = "ENC[AGE:b64:"
	envelopeSuffix = "]"
)

// Manager owns a single age X25519 identity and encrypts or decrypts
// individual string values against it. The identity is immutable after
// construction, so a Manager is safe for concurrent use.
type Manager struct {
	identity *age.X25519Identity
}

// Generate creates a Manager with a fresh identity drawn from the system's
// cryptographically secure random source.
func Generate() (*Manager, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating identity: %w", err)
	}
	return &Manager{identity: identity}, nil
}

// FromIdentityString parses a textual age secret identity
// (AGE-SECRET-KEY-1...) and derives its public key. Returns
// ErrInvalidIdentity when the prefix, checksum, or length is wrong.
func FromIdentityString(s string) (*Manager, error) {
	identity, err := age.ParseX25519Identity(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", eerrors.ErrInvalidIdentity, err)
	}
	return &Manager{identity: identity}, nil
}

// IdentityString returns the textual secret identity (AGE-SECRET-KEY-1...).
// Callers decide whether and where to persist it.
func (m *Manager) IdentityString() string {
	return m.identity.String()
}

// PublicKeyString returns the recipient encoding of the public key (age1...).
func (m *Manager) PublicKeyString() string {
	return m.identity.Recipient().String()
}

// EncryptValue encrypts a plaintext value to the manager's own recipient and
// wraps the ciphertext as ENC[AGE:b64:<payload>]. The age format handles the
// ephemeral keypair, ECDH, key derivation bound to both public keys, and the
// AEAD seal; the payload is the standard-base64 encoding of the whole
// self-contained ciphertext. Any string encrypts, including the empty string
// and non-ASCII content.
func (m *Manager) EncryptValue(plaintext string) (string, error) {
	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, m.identity.Recipient())
	if err != nil {
		return "", fmt.Errorf("%w: %v", eerrors.ErrEncryptFailed, err)
	}
	if _, err := io.WriteString(w, plaintext); err != nil {
		return "", fmt.Errorf("%w: %v", eerrors.ErrEncryptFailed, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", eerrors.ErrEncryptFailed, err)
	}
	return envelopePrefix + base64.StdEncoding.EncodeToString(buf.Bytes()) + envelopeSuffix, nil
}

// DecryptValue decrypts an enveloped value with the manager's secret key.
// Values that do not match the envelope syntax are returned unchanged:
// plaintext is the expected common case, not an error. Returns
// ErrDecryptFailed on malformed base64, malformed framing, or authentication
// failure (wrong key or tampered ciphertext).
func (m *Manager) DecryptValue(value string) (string, error) {
	payload, ok := envelopePayload(value)
	if !ok {
		return value, nil
	}
	ciphertext, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64: %v", eerrors.ErrDecryptFailed, err)
	}
	r, err := age.Decrypt(bytes.NewReader(ciphertext), m.identity)
	if err != nil {
		return "", fmt.Errorf("%w: %v", eerrors.ErrDecryptFailed, err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", eerrors.ErrDecryptFailed, err)
	}
	return string(plaintext), nil
}

// IsEncrypted reports whether a value is syntactically an encryption
// envelope: exact ENC[AGE:b64: prefix and ] suffix with a non-empty, valid
// standard-base64 payload in between. It never attempts decryption, so it
// needs no Manager.
func IsEncrypted(value string) bool {
	payload, ok := envelopePayload(value)
	if !ok || payload == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(payload)
	return err == nil
}

// envelopePayload extracts the base64 payload when value matches the
// envelope syntax. Anything else is plaintext by definition; no other
// envelope schemes are recognized.
func envelopePayload(value string) (string, bool) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(value), envelopePrefix)
	if !ok {
		return "", false
	}
	return strings.CutSuffix(inner, envelopeSuffix)
}
