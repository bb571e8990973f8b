// Package audit provides a best-effort local trail of credential operations.
//
// Entries are appended as JSON lines to audit.jsonl in the Movey home
// directory. The trail records who ran which operation and when, plus a
// SHA-256 fingerprint of the token involved so rotations can be correlated
// without ever writing the token itself. Logging failures never fail the
// operation being audited.
package audit
