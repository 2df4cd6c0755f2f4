// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package submit

import "fmt"

// NotFoundError reports a source document that does not exist or cannot be read.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// TransportError reports an upload that did not complete: the request could
// not be sent, the service answered with a non-2xx status, or the response
// body was not JSON. Err is the underlying failure, unchanged.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("uploading to %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
