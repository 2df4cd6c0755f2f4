// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive mirrors saved parse results into object storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docparse/pkg/types"
)

const jsonContentType = "application/json"

// UploadInput encapsulates the parameters needed to upload an object.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput contains the result of a successful upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage abstracts the object store the archiver writes to.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
}

// Archiver stores results under <prefix>/<document>/<run-id>.json.
type Archiver struct {
	store  ObjectStorage
	bucket string
	prefix string
}

// New returns an Archiver writing to cfg.Bucket through store.
func New(store ObjectStorage, cfg types.ArchiveConfig) *Archiver {
	return &Archiver{
		store:  store,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}
}

// Key returns the object key for a result of documentPath produced by runID.
func (a *Archiver) Key(documentPath, runID string) string {
	base := strings.TrimSuffix(filepath.Base(documentPath), filepath.Ext(documentPath))
	if a.prefix == "" {
		return path.Join(base, runID+".json")
	}
	return path.Join(a.prefix, base, runID+".json")
}

// Put uploads data, the formatted result, and returns its location.
func (a *Archiver) Put(ctx context.Context, documentPath, runID string, data []byte) (*UploadOutput, error) {
	key := a.Key(documentPath, runID)
	out, err := a.store.Upload(ctx, UploadInput{
		Bucket:      a.bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: jsonContentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return nil, fmt.Errorf("archiving %s to %s/%s: %w", documentPath, a.bucket, key, err)
	}
	return out, nil
}
