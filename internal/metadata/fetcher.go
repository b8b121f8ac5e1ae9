package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"modelmeta/internal/civitai"
	"modelmeta/internal/config"
	"modelmeta/internal/digest"
	"modelmeta/internal/logging"
	"modelmeta/internal/sidecar"
)

// Outcome classifies how a fetch invocation ended.
type Outcome string

const (
	// OutcomeSaved means a sidecar was written.
	OutcomeSaved Outcome = "saved"
	// OutcomeSkipped means the file does not carry the model extension.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeNoMatch means the registry has no version for the digest.
	OutcomeNoMatch Outcome = "no-match"
	// OutcomeWriteFailed means records were fetched but the sidecar could not be written.
	OutcomeWriteFailed Outcome = "write-failed"
)

// Result reports what a fetch did for one model file.
type Result struct {
	Path        string  `json:"path"`
	Digest      string  `json:"digest,omitempty"`
	SidecarPath string  `json:"sidecar_path,omitempty"`
	Outcome     Outcome `json:"outcome"`
	Bundle      *Bundle `json:"-"`
}

// Registry defines the lookup operations the fetcher needs.
type Registry interface {
	VersionByHash(ctx context.Context, fileDigest string) (json.RawMessage, error)
	ModelByID(ctx context.Context, modelID int64) (json.RawMessage, error)
}

var _ Registry = (*civitai.Client)(nil)

// Fetcher runs the hash, lookup, and persist pipeline for single model files.
// It holds no state between invocations.
type Fetcher struct {
	cfg      *config.Config
	registry Registry
	logger   *slog.Logger
}

// NewFetcher wires a fetcher from its dependencies. A nil logger is replaced
// with a no-op logger.
func NewFetcher(cfg *config.Config, registry Registry, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		cfg:      cfg,
		registry: registry,
		logger:   logging.NewComponentLogger(logger, "fetcher"),
	}
}

// FetchFile hashes the file at path, resolves its registry records, and
// persists them as a sidecar under outputDir. Registry misses and sidecar
// write failures degrade the outcome instead of failing the invocation;
// unreadable input and transport failures are returned as errors.
func (f *Fetcher) FetchFile(ctx context.Context, path, outputDir string) (*Result, error) {
	log := logging.WithContext(ctx, f.logger)
	result := &Result{Path: path, Outcome: OutcomeSkipped}

	if !strings.HasSuffix(path, f.cfg.Files.Extension) {
		log.Debug("skipping file without model extension",
			logging.String(logging.FieldPath, path),
			logging.String("extension", f.cfg.Files.Extension),
		)
		return result, nil
	}

	log.Info("processing model file", logging.String(logging.FieldPath, path))

	fileDigest, err := digest.SHA256File(path)
	if err != nil {
		return nil, fmt.Errorf("hash model file: %w", err)
	}
	result.Digest = fileDigest
	log.Info("computed content digest",
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldDigest, fileDigest),
	)

	version, err := f.registry.VersionByHash(ctx, fileDigest)
	if err != nil {
		if errors.Is(err, civitai.ErrNotFound) {
			result.Outcome = OutcomeNoMatch
			return result, nil
		}
		return nil, err
	}

	bundle := &Bundle{ModelVersion: version}
	if modelID := ReferenceModelID(version); modelID > 0 {
		model, err := f.registry.ModelByID(ctx, modelID)
		switch {
		case err == nil:
			bundle.Model = model
		case errors.Is(err, civitai.ErrNotFound):
			// Sidecar keeps the version record alone.
		default:
			return nil, err
		}
	} else {
		log.Debug("version record has no model reference",
			logging.String(logging.FieldDigest, fileDigest),
		)
	}
	result.Bundle = bundle

	target := sidecar.Path(path, outputDir)
	result.SidecarPath = target
	if err := sidecar.WriteJSON(target, bundle); err != nil {
		log.Error("failed to save model metadata",
			logging.String(logging.FieldPath, path),
			logging.Error(err),
		)
		result.Outcome = OutcomeWriteFailed
		return result, nil
	}

	result.Outcome = OutcomeSaved
	log.Info("saved model metadata", logging.String(logging.FieldSidecar, target))
	return result, nil
}
