// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP helpers used by the submitter.
package httputil

import (
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

// maxErrorBody caps how much of a failed response body is kept in a StatusError.
const maxErrorBody = 512

// StatusError reports a response whose status code is outside 2xx.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// Do sends req with client and returns the full response body. A non-2xx
// status yields a *StatusError carrying a truncated copy of the body.
// Transport and read failures are returned unwrapped.
func Do(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        req.URL.Redacted(),
			Body:       truncate(string(body), maxErrorBody),
		}
	}
	return body, nil
}

// SetBearer sets the Authorization header to "Bearer <token>".
func SetBearer(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
