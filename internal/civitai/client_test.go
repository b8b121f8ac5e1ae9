package civitai_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"modelmeta/internal/civitai"
)

const testDigest = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := civitai.New("", 0); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestVersionByHashSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/model-versions/by-hash/"+testDigest {
			t.Fatalf("unexpected request path: %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":128713,"modelId":101055,"name":"v1.0"}`))
	}))
	t.Cleanup(server.Close)

	client, err := civitai.New(server.URL+"/", 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	record, err := client.VersionByHash(context.Background(), testDigest)
	if err != nil {
		t.Fatalf("VersionByHash returned error: %v", err)
	}
	if !strings.Contains(string(record), `"modelId":101055`) {
		t.Fatalf("expected raw record to carry modelId, got %s", record)
	}
}

func TestVersionByHashNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Model not found"}`))
	}))
	t.Cleanup(server.Close)

	client, err := civitai.New(server.URL, 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.VersionByHash(context.Background(), testDigest)
	if !errors.Is(err, civitai.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status code in error, got %v", err)
	}
}

func TestVersionByHashTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client, err := civitai.New(serverURL, 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.VersionByHash(context.Background(), testDigest)
	if !errors.Is(err, civitai.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestVersionByHashMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	}))
	t.Cleanup(server.Close)

	client, err := civitai.New(server.URL, 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.VersionByHash(context.Background(), testDigest)
	if !errors.Is(err, civitai.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestVersionByHashEmptyDigest(t *testing.T) {
	client, err := civitai.New("https://example.com", 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.VersionByHash(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty digest")
	}
}

func TestModelByIDSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/101055" {
			t.Fatalf("unexpected request path: %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":101055,"name":"Detail Tweaker","type":"LORA"}`))
	}))
	t.Cleanup(server.Close)

	client, err := civitai.New(server.URL, 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	record, err := client.ModelByID(context.Background(), 101055)
	if err != nil {
		t.Fatalf("ModelByID returned error: %v", err)
	}
	if !strings.Contains(string(record), `"name":"Detail Tweaker"`) {
		t.Fatalf("unexpected record: %s", record)
	}
}

func TestModelByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client, err := civitai.New(server.URL, 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.ModelByID(context.Background(), 7)
	if !errors.Is(err, civitai.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-200 status, got %v", err)
	}
}

func TestModelByIDRequiresPositiveID(t *testing.T) {
	client, err := civitai.New("https://example.com", 0)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.ModelByID(context.Background(), 0); err == nil {
		t.Fatal("expected error for non-positive id")
	}
}
