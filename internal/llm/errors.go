package llm

import "fmt"

// APIError is a non-2xx reply from the completion API, carrying the status
// code and a truncated copy of the response body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("completion API error (HTTP %d): %s", e.StatusCode, e.Body)
}

// IsAuthError reports whether the upstream rejected the credential.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
