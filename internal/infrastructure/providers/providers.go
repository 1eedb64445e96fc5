// Package providers implements the external product-data sources consulted
// on a cache miss. Every provider maps its HTTP and decoding failures into
// the tri-state outcome; none of them returns an error to the caller.
//
// Shared mapping rules:
//   - missing credentials/config: the provider is disabled and answers
//     NotFound immediately, so the chain degrades instead of failing
//   - HTTP 400/404: NotFound
//   - any other non-2xx status, network failure, or unparsable body: Error
//   - HTTP success with an empty product name: NotFound
package providers

import (
	"net/http"
	"time"
)

// outer bound only; each call is further capped by the lookup budget
const clientTimeout = 30 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: clientTimeout}
}

// isNotFoundStatus reports whether an HTTP status means "this barcode is
// unknown" rather than "the provider failed". Providers answer 400 for
// identifiers they consider malformed, which for our purposes is the same
// confirmed negative.
func isNotFoundStatus(code int) bool {
	return code == http.StatusNotFound || code == http.StatusBadRequest
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}
