package metadata

import (
	"encoding/json"
)

// Bundle pairs the registry records persisted in a sidecar. ModelVersion is
// always present; Model is omitted when the version record carries no usable
// model reference or the model lookup missed.
type Bundle struct {
	ModelVersion json.RawMessage `json:"modelVersion"`
	Model        json.RawMessage `json:"model,omitempty"`
}

// ReferenceModelID extracts the registry model identifier from a version
// record. It returns 0 when the reference is absent or not a positive integer.
func ReferenceModelID(version json.RawMessage) int64 {
	var probe struct {
		ModelID int64 `json:"modelId"`
	}
	if err := json.Unmarshal(version, &probe); err != nil {
		return 0
	}
	if probe.ModelID <= 0 {
		return 0
	}
	return probe.ModelID
}

// Summary carries the display fields probed out of a bundle's records.
type Summary struct {
	VersionID   int64    `json:"version_id,omitempty"`
	VersionName string   `json:"version_name,omitempty"`
	ModelID     int64    `json:"model_id,omitempty"`
	ModelName   string   `json:"model_name,omitempty"`
	Type        string   `json:"type,omitempty"`
	BaseModel   string   `json:"base_model,omitempty"`
	Creator     string   `json:"creator,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type versionProbe struct {
	ID        int64  `json:"id"`
	ModelID   int64  `json:"modelId"`
	Name      string `json:"name"`
	BaseModel string `json:"baseModel"`
	Model     struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"model"`
}

type modelProbe struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Creator struct {
		Username string `json:"username"`
	} `json:"creator"`
	Tags []string `json:"tags"`
}

// Summarize probes the opaque records for the fields worth showing to humans.
// The full model record wins over the abbreviated copy embedded in the
// version record when both are present.
func Summarize(b Bundle) Summary {
	var summary Summary

	var version versionProbe
	if err := json.Unmarshal(b.ModelVersion, &version); err == nil {
		summary.VersionID = version.ID
		summary.VersionName = version.Name
		summary.BaseModel = version.BaseModel
		summary.ModelID = version.ModelID
		summary.ModelName = version.Model.Name
		summary.Type = version.Model.Type
	}

	if len(b.Model) > 0 {
		var model modelProbe
		if err := json.Unmarshal(b.Model, &model); err == nil {
			if model.ID > 0 {
				summary.ModelID = model.ID
			}
			if model.Name != "" {
				summary.ModelName = model.Name
			}
			if model.Type != "" {
				summary.Type = model.Type
			}
			summary.Creator = model.Creator.Username
			summary.Tags = model.Tags
		}
	}

	return summary
}
