package fetcher

import (
	"errors"
	"fmt"
)

// ErrEmptyContent is returned when HTML extraction yields no visible text.
var ErrEmptyContent = errors.New("could not extract meaningful text")

// ErrInvalidURL is returned when the caller supplied a URL that is not a
// well-formed absolute http(s) URL.
var ErrInvalidURL = errors.New("url must be a well-formed absolute URL")

// RemoteAccessError means the remote server answered with an error status.
// The status code is kept so the API layer can pass it through.
type RemoteAccessError struct {
	URL        string
	StatusCode int
}

func (e *RemoteAccessError) Error() string {
	return fmt.Sprintf("failed to access URL %q: the remote server returned status code %d", e.URL, e.StatusCode)
}

// UnsupportedContentTypeError means the remote resource declared a media
// type this service does not handle.
type UnsupportedContentTypeError struct {
	ContentType string
}

func (e *UnsupportedContentTypeError) Error() string {
	return fmt.Sprintf("unsupported content type %q", e.ContentType)
}

// OversizeError means the remote resource declared a size above the
// configured ceiling. It is raised before any full-body download.
type OversizeError struct {
	DeclaredSize int64
	Limit        int64
}

func (e *OversizeError) Error() string {
	return fmt.Sprintf("remote file is too large: declared %d bytes, limit is %.2f MB",
		e.DeclaredSize, float64(e.Limit)/(1024*1024))
}

// FetchFailedError wraps a transport-level failure (DNS, connection,
// timeout) reaching the remote resource.
type FetchFailedError struct {
	URL string
	Err error
}

func (e *FetchFailedError) Error() string {
	return fmt.Sprintf("could not fetch or process the URL %q: %v", e.URL, e.Err)
}

func (e *FetchFailedError) Unwrap() error { return e.Err }
