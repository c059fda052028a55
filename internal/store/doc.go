// Package store provides the registry's storage and the export file writer.
//
// Registry is the in-memory arena behind every service: four collections
// keyed by identifier, guarded by one lock so multi-collection updates are
// atomic. ArtifactFileStore writes export files via a temp file and rename.
// Envelope seals export bodies with a passphrase (scrypt + ChaCha20-Poly1305).
//
// Nothing here reads an export back; the registry starts empty on every run.
package store
