// Package digest computes content digests for local model files.
//
// Digests are the lookup key for the registry: Civitai indexes model versions
// by the SHA-256 of the uploaded weight file, so the local file is streamed
// through an incremental hash and never held in memory.
package digest
