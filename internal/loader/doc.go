// Package loader loads directories of dotenv files with transparent
// decryption of enveloped values.
//
// # File Precedence
//
// Files merge in a fixed order, later files overriding earlier ones per key:
//
//  1. .env — base configuration
//  2. .env.<ENV> — environment-specific (.env.local by default)
//  3. .env.<ENV>-<ARCH> — architecture-specific, when <ARCH> resolves
//  4. .env.<ENV>.<USER> and .env.<ENV>-<ARCH>.<USER> — per-user overrides
//  5. .env.pr-<N> — pull-request-specific, in GitHub Actions PR runs
//
// Separators between placeholder parts may be '.' or '-', and filename
// matching is case-insensitive. Placeholders resolve from the process
// environment; see ResolveEnv, ResolveArch, ResolveUser, and
// ResolvePRNumber.
//
// # Decryption
//
// After merging, every value is passed through the bound secret manager.
// Plaintext values pass through untouched; enveloped values are decrypted.
// A value that fails to decrypt aborts the load with an error naming the
// key and the file it came from — corrupted or mis-keyed secrets are never
// silently dropped.
package loader
