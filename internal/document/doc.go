// Package document transforms flat JSON documents between plaintext and
// encrypted forms for sealbox.
//
// A document is a JSON object whose top-level values are the confidential
// payload; the keys stay visible in both forms, and their order is
// preserved exactly, so an encrypted settings file diffs cleanly in
// version control.
//
// EncryptDocument replaces every value with a self-contained envelope
// string produced by the crypto package; DecryptDocument reverses it.
// Values are serialized to canonical JSON text before encryption — a null
// value encrypts as the four characters "null", a string keeps its quotes —
// so the decrypted text always re-parses to a value of the original type.
// Entries are processed in key order and the first failure aborts the
// whole operation, annotated with the key that caused it.
package document
