package errors

import "errors"

// Key errors indicate problems with age identities and their storage.
var (
	// ErrInvalidIdentity indicates an identity string is not a valid age secret key.
	ErrInvalidIdentity = errors.New("invalid age identity")

	// ErrKeyNotFound indicates no encryption key could be located.
	ErrKeyNotFound = errors.New("encryption key not found")

	// ErrKeyExists indicates a key file already exists at the target path.
	ErrKeyExists = errors.New("key file already exists")
)

// Cryptographic errors indicate failures during encryption or decryption.
var (
	// ErrEncryptFailed indicates a value could not be encrypted.
	ErrEncryptFailed = errors.New("failed to encrypt value")

	// ErrDecryptFailed indicates an encrypted value could not be decrypted.
	// This covers malformed base64, malformed framing, and authentication
	// failure (wrong key or tampered ciphertext).
	ErrDecryptFailed = errors.New("failed to decrypt value")
)

// File errors indicate issues reading or locating environment files.
var (
	// ErrEnvFileRead indicates an environment file could not be read.
	ErrEnvFileRead = errors.New("failed to read env file")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrVarNotFound indicates the requested variable is not present.
	ErrVarNotFound = errors.New("variable not found")
)
