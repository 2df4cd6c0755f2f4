// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"time"
)

// ParseResult is the JSON value returned by the parsing service, kept as the
// raw bytes so key order and number formatting are preserved.
type ParseResult = json.RawMessage

// RunStatus records how a submission run ended.
type RunStatus string

const (
	RunSucceeded       RunStatus = "succeeded"
	RunNotFound        RunStatus = "not_found"
	RunTransportFailed RunStatus = "transport_failed"
	RunFailed          RunStatus = "failed"
)

// RunRecord is one row of the submission ledger.
type RunRecord struct {
	// ID is a UUID assigned when the run starts.
	ID string `json:"id" yaml:"id"`

	// DocumentPath is the local path that was submitted.
	DocumentPath string `json:"document_path" yaml:"document_path"`

	// OutputPath is where the result was (or would have been) written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	Status RunStatus `json:"status" yaml:"status"`

	// Error holds the error text for runs that did not succeed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// ResultBytes is the size of the raw response body.
	ResultBytes int `json:"result_bytes" yaml:"result_bytes"`

	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// ResultMetadata describes a saved parse result. It is written as a YAML
// sidecar next to the JSON output when enabled.
type ResultMetadata struct {
	RunID          string    `json:"run_id" yaml:"run_id"`
	SourceDocument string    `json:"source_document" yaml:"source_document"`
	DocumentBytes  int64     `json:"document_bytes" yaml:"document_bytes"`
	Endpoint       string    `json:"endpoint" yaml:"endpoint"`
	ResultBytes    int       `json:"result_bytes" yaml:"result_bytes"`
	SavedAt        time.Time `json:"saved_at" yaml:"saved_at"`
}
