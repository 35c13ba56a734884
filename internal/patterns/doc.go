// Package patterns flags environment variable names that likely hold secrets.
//
// It is a pure heuristic over variable names, used by the CLI's encrypt and
// set commands to decide which values to encrypt automatically. The loader
// never consults it: at load time encrypted values are recognized by their
// envelope syntax, not by their key names.
package patterns
