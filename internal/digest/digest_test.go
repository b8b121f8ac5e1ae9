package digest_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modelmeta/internal/digest"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestSHA256FileKnownVector(t *testing.T) {
	path := writeFile(t, "model.safetensors", []byte("hello world"))

	got, err := digest.SHA256File(path)
	if err != nil {
		t.Fatalf("SHA256File returned error: %v", err)
	}
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if got != want {
		t.Fatalf("unexpected digest: got %s want %s", got, want)
	}
}

func TestSHA256FileEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.safetensors", nil)

	got, err := digest.SHA256File(path)
	if err != nil {
		t.Fatalf("SHA256File returned error: %v", err)
	}
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Fatalf("unexpected digest: got %s want %s", got, want)
	}
}

func TestSHA256FileSpansChunks(t *testing.T) {
	// Payload larger than one read chunk exercises incremental hashing.
	payload := bytes.Repeat([]byte{0xAB}, 4096*3+17)
	path := writeFile(t, "large.safetensors", payload)

	got, err := digest.SHA256File(path)
	if err != nil {
		t.Fatalf("SHA256File returned error: %v", err)
	}
	if len(got) != 64 || strings.ToLower(got) != got {
		t.Fatalf("expected lowercase 64-char hex digest, got %q", got)
	}

	again, err := digest.SHA256File(path)
	if err != nil {
		t.Fatalf("SHA256File returned error: %v", err)
	}
	if again != got {
		t.Fatalf("digest not deterministic: %s vs %s", got, again)
	}
}

func TestSHA256FileMissingFile(t *testing.T) {
	if _, err := digest.SHA256File(filepath.Join(t.TempDir(), "absent.safetensors")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
