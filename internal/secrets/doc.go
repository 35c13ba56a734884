// Package secrets provides value-level encryption for envage.
//
// This package wraps age X25519 asymmetric encryption in a compact textual
// envelope so individual values inside dotenv files can be committed
// encrypted and consumed as plain strings at runtime.
//
// # Encryption Architecture
//
// Each value is encrypted independently:
//
//  1. An ephemeral X25519 keypair is generated per value
//  2. ECDH with the recipient's public key plus HKDF (bound to both public
//     keys) derives a ChaCha20-Poly1305 key
//  3. The sealed age ciphertext is base64-encoded and wrapped as
//     ENC[AGE:b64:<payload>]
//
// All of this is the standard age format, via filippo.io/age. Encryption is
// non-deterministic: encrypting the same value twice yields different
// envelopes.
//
// # Envelope Recognition
//
// A value is an envelope if and only if it carries the exact ENC[AGE:b64:
// prefix and ] suffix with valid base64 between. Everything else is
// plaintext; DecryptValue passes such values through unchanged rather than
// treating them as errors.
//
// # Key Management
//
// A Manager holds exactly one identity and never mutates it. Construction is
// explicit — Generate or FromIdentityString — so independent managers can
// coexist in one process and tests get trivial isolation. Key persistence is
// the caller's concern; LoadManager and SaveKey implement the CLI's policy
// (environment variables, AGE_KEY_NAME discovery, XDG key files) on top of
// the core.
//
// Key files are written 0600. The public recipient (age1...) may be shared
// freely; anyone holding it can encrypt values only the identity holder can
// read.
package secrets
