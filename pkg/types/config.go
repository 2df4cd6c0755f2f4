// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultEndpoint is the LlamaParse upload URL.
const DefaultEndpoint = "https://api.llamaindex.ai/parse"

// HTTPConfig holds HTTP settings for the outbound parse request.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client-side timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with the upload (e.g. "docparse/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SubmitConfig holds everything the document submitter needs at construction.
type SubmitConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the URL the multipart upload is POSTed to.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Credential is the bearer token sent in the Authorization header.
	Credential string `json:"-" yaml:"-"`
}

// WorkspaceConfig names the input and output locations of a run.
type WorkspaceConfig struct {
	// DocumentsDir holds the documents to upload (default "documents").
	DocumentsDir string `json:"documents_dir" yaml:"documents_dir"`

	// OutputDir receives parse results (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Document is the file name inside DocumentsDir to upload.
	Document string `json:"document" yaml:"document"`

	// OutputFile is the file name inside OutputDir for the JSON result.
	OutputFile string `json:"output_file" yaml:"output_file"`

	// WriteMetadata enables the YAML sidecar next to OutputFile.
	WriteMetadata bool `json:"write_metadata" yaml:"write_metadata"`
}

// ArchiveConfig configures the optional object-storage mirror of saved results.
// An empty Bucket disables archiving.
type ArchiveConfig struct {
	Bucket    string `json:"bucket" yaml:"bucket"`
	Region    string `json:"region" yaml:"region"`
	Prefix    string `json:"prefix" yaml:"prefix"`
	Endpoint  string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	AccessKey string `json:"-" yaml:"-"`
	SecretKey string `json:"-" yaml:"-"`
}

// Enabled reports whether a bucket is configured.
func (c ArchiveConfig) Enabled() bool {
	return c.Bucket != ""
}

// HistoryConfig locates the run ledger database. An empty Path disables it.
type HistoryConfig struct {
	Path string `json:"path" yaml:"path"`
}

// Config groups all settings for one docparse invocation.
type Config struct {
	Submit    SubmitConfig    `json:"submit" yaml:"submit"`
	Workspace WorkspaceConfig `json:"workspace" yaml:"workspace"`
	Archive   ArchiveConfig   `json:"archive" yaml:"archive"`
	History   HistoryConfig   `json:"history" yaml:"history"`
}
