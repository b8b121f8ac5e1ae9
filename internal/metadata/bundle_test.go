package metadata_test

import (
	"encoding/json"
	"testing"

	"modelmeta/internal/metadata"
)

func TestReferenceModelID(t *testing.T) {
	cases := []struct {
		name    string
		version string
		want    int64
	}{
		{"present", `{"id":128713,"modelId":101055}`, 101055},
		{"zero", `{"modelId":0}`, 0},
		{"negative", `{"modelId":-3}`, 0},
		{"absent", `{"id":128713}`, 0},
		{"null", `{"modelId":null}`, 0},
		{"wrong type", `{"modelId":"101055"}`, 0},
		{"invalid json", `{`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := metadata.ReferenceModelID(json.RawMessage(tc.version)); got != tc.want {
				t.Fatalf("ReferenceModelID(%s) = %d, want %d", tc.version, got, tc.want)
			}
		})
	}
}

func TestSummarizePrefersModelRecord(t *testing.T) {
	bundle := metadata.Bundle{
		ModelVersion: json.RawMessage(`{
			"id": 128713,
			"modelId": 101055,
			"name": "v1.0",
			"baseModel": "SDXL 1.0",
			"model": {"name": "Embedded Name", "type": "Checkpoint"}
		}`),
		Model: json.RawMessage(`{
			"id": 101055,
			"name": "Detail Tweaker",
			"type": "LORA",
			"creator": {"username": "artist"},
			"tags": ["detail", "slider"]
		}`),
	}

	summary := metadata.Summarize(bundle)
	if summary.VersionID != 128713 || summary.VersionName != "v1.0" {
		t.Fatalf("unexpected version fields: %+v", summary)
	}
	if summary.ModelID != 101055 {
		t.Fatalf("unexpected model id: %d", summary.ModelID)
	}
	if summary.ModelName != "Detail Tweaker" {
		t.Fatalf("expected model record name to win, got %q", summary.ModelName)
	}
	if summary.Type != "LORA" {
		t.Fatalf("expected model record type to win, got %q", summary.Type)
	}
	if summary.BaseModel != "SDXL 1.0" {
		t.Fatalf("unexpected base model: %q", summary.BaseModel)
	}
	if summary.Creator != "artist" {
		t.Fatalf("unexpected creator: %q", summary.Creator)
	}
	if len(summary.Tags) != 2 {
		t.Fatalf("unexpected tags: %v", summary.Tags)
	}
}

func TestSummarizeFallsBackToEmbeddedModel(t *testing.T) {
	bundle := metadata.Bundle{
		ModelVersion: json.RawMessage(`{
			"id": 1,
			"name": "v2.0",
			"model": {"name": "Embedded Name", "type": "LORA"}
		}`),
	}

	summary := metadata.Summarize(bundle)
	if summary.ModelName != "Embedded Name" {
		t.Fatalf("expected embedded model name, got %q", summary.ModelName)
	}
	if summary.Type != "LORA" {
		t.Fatalf("expected embedded model type, got %q", summary.Type)
	}
	if summary.Creator != "" {
		t.Fatalf("expected no creator without model record, got %q", summary.Creator)
	}
}

func TestBundleMarshalOmitsAbsentModel(t *testing.T) {
	data, err := json.Marshal(metadata.Bundle{ModelVersion: json.RawMessage(`{"id":1}`)})
	if err != nil {
		t.Fatalf("marshal bundle: %v", err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("unmarshal bundle: %v", err)
	}
	if _, ok := keys["modelVersion"]; !ok {
		t.Fatal("expected modelVersion key")
	}
	if _, ok := keys["model"]; ok {
		t.Fatal("expected model key to be omitted")
	}
}
