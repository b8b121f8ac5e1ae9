package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// ModelPayload is the content of every test model file. ModelPayloadDigest is
// its SHA-256 digest, precomputed so tests can assert registry lookup paths.
const (
	ModelPayload       = "hello world"
	ModelPayloadDigest = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
)

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteModelFile creates a model file with the shared payload in a fresh temp
// directory and returns its path.
func WriteModelFile(t testing.TB, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	WriteFile(t, path, []byte(ModelPayload))
	return path
}
