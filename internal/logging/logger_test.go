package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modelmeta/internal/logging"
)

func TestNewMirrorsOutputToEveryPath(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "modelmeta.log")
	secondary := filepath.Join(dir, "errors", "modelmeta.log")

	logger, err := logging.New(logging.Options{
		Format:           "console",
		Level:            "info",
		OutputPaths:      []string{primary},
		ErrorOutputPaths: []string{secondary},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("startup complete")

	for _, path := range []string{primary, secondary} {
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read log file %s: %v", path, err)
		}
		if !strings.Contains(string(content), "startup complete") {
			t.Fatalf("expected %s to contain message, got %q", path, content)
		}
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, err := logging.New(logging.Options{
		Format:           "console",
		Level:            "info",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")

	logger, err := logging.New(logging.Options{
		Format:           "console",
		Level:            "debug",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerPrefixesComponent(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "component.log")

	logger, err := logging.New(logging.Options{
		Format:           "console",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "fetcher").Info("processing model file")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "fetcher: processing model file") {
		t.Fatalf("expected component prefix in output, got %q", content)
	}
}

func TestJSONLoggerEmitsStructuredFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")

	logger, err := logging.New(logging.Options{
		Format:           "json",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("saved model metadata", logging.String(logging.FieldSidecar, "/tmp/out.json"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	for _, want := range []string{`"level":"info"`, `"msg":"saved model metadata"`, `"sidecar":"/tmp/out.json"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in output, got %q", want, line)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsCorrelationID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "correlation.log")

	logger, err := logging.New(logging.Options{
		Format:           "console",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithCorrelationID(context.Background(), "run-1234")
	logging.WithContext(ctx, logger).Info("computed content digest")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "correlation_id=run-1234") {
		t.Fatalf("expected correlation id attribute, got %q", content)
	}
}

func TestWithContextWithoutIDReturnsLogger(t *testing.T) {
	logger := logging.NewNop()
	if got := logging.WithContext(context.Background(), logger); got != logger {
		t.Fatal("expected original logger when context carries no fields")
	}
}
