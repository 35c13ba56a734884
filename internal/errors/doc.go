// Package errors provides typed error values for the envage application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Key errors: Identity parsing and key storage issues (ErrInvalidIdentity, ErrKeyNotFound)
//   - Crypto errors: Encryption/decryption failures (ErrDecryptFailed)
//   - File errors: File system issues (ErrEnvFileRead, ErrNoFilesFound)
//
// There is deliberately no parse error for env file content: malformed lines
// are tolerated by design, matching dotenv conventions.
//
// # Usage
//
// Return errors from internal packages:
//
//	if payload == "" {
//	    return "", fmt.Errorf("%w: empty payload", errors.ErrDecryptFailed)
//	}
//
// Handle errors in the CLI layer:
//
//	vars, err := loader.GetAllVariablesFromDir(dir)
//	if errors.Is(err, eerrors.ErrDecryptFailed) {
//	    // Show user-friendly message
//	}
package errors
