// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package submit uploads a local document to the parsing service and returns
// the JSON it answers with.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/docparse/internal/httputil"
	"github.com/pdiddy/docparse/pkg/types"
)

// formField is the multipart field name the service reads the upload from.
const formField = "file"

// errMalformedBody is the cause inside a TransportError for a non-JSON response.
var errMalformedBody = errors.New("response body is not valid JSON")

// Submitter sends one document per call to a parsing endpoint.
type Submitter struct {
	client *http.Client
	cfg    types.SubmitConfig
}

// New returns a Submitter for cfg. A nil client gets a fresh http.Client
// using cfg.Timeout.
func New(cfg types.SubmitConfig, client *http.Client) *Submitter {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = types.DefaultEndpoint
	}
	return &Submitter{client: client, cfg: cfg}
}

// Endpoint returns the URL uploads are sent to.
func (s *Submitter) Endpoint() string {
	return s.cfg.Endpoint
}

// Submit reads the file at path, uploads it as the multipart field "file"
// under its base name, and returns the response body. The file is read
// before any request is made, so a missing file never reaches the network.
func (s *Submitter) Submit(ctx context.Context, path string) (types.ParseResult, error) {
	data, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	body, contentType, err := buildForm(filepath.Base(path), data)
	if err != nil {
		return nil, fmt.Errorf("building multipart body for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, body)
	if err != nil {
		return nil, &TransportError{Endpoint: s.cfg.Endpoint, Err: err}
	}
	httputil.SetBearer(req, s.cfg.Credential)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}

	respBody, err := httputil.Do(s.client, req)
	if err != nil {
		return nil, &TransportError{Endpoint: s.cfg.Endpoint, Err: err}
	}

	respBody = bytes.TrimSpace(respBody)
	if !json.Valid(respBody) {
		return nil, &TransportError{Endpoint: s.cfg.Endpoint, Err: errMalformedBody}
	}
	return types.ParseResult(respBody), nil
}

func readDocument(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &NotFoundError{Path: path, Err: errors.New("is a directory")}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	return data, nil
}

// buildForm encodes data as a single-part multipart/form-data body and
// returns it with its Content-Type header value.
func buildForm(fileName string, data []byte) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(formField, fileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}
