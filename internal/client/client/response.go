package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/chromestatus/csclient/internal/xssi"
)

// TransportError classifies an error from http.Client.Do. Cancellation is
// passed through; any other failure means the backend is unavailable.
func TransportError(resource, method string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", method, resource, err)
	}
	return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, resource, err)
}

// DecodeResponse turns a non-2xx response into *HTTPError and otherwise
// decodes the body into out after the XSSI prefix is removed. out may be
// nil. The body is consumed but not closed.
func DecodeResponse(resp *http.Response, resource, method string, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return newHTTPError(resource, method, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, resource, err)
	}
	if err := xssi.Decode(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, resource, err)
	}
	return nil
}
