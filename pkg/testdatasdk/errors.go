package testdatasdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error codes returned by the service.
const (
	ErrorCodeInvalidRequest          = "invalid_request"
	ErrorCodeUnknownRole             = "unknown_role"
	ErrorCodeNoOrganizationFound     = "no_organization_found"
	ErrorCodeNoResponsiblePartyFound = "no_responsible_party_found"
	ErrorCodeRegistryUnavailable     = "registry_unavailable"
	ErrorCodeRegistryAuth            = "registry_auth_failed"
	ErrorCodeRegistryRequest         = "registry_request_failed"
	ErrorCodeTokenExchange           = "token_exchange_failed"
	ErrorCodeKeyMaterial             = "key_material_invalid"
	ErrorCodeTimeout                 = "timeout"
	ErrorCodeRateLimited             = "rate_limit_exceeded"
	ErrorCodeServerError             = "server_error"
)

// APIError is a non-2xx answer from the service.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int `json:"-"`

	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s (status %d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Description, e.StatusCode)
}

// Temporary reports whether retrying later could succeed.
func (e *APIError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// parseErrorResponse builds an *APIError from a failed response. Bodies that
// are not the service's JSON error shape still yield an error with a code
// derived from the status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = fallbackCode(resp.StatusCode)
		apiErr.Description = strings.TrimSpace(string(body))
	}
	return apiErr
}

func fallbackCode(status int) string {
	switch {
	case status == http.StatusTooManyRequests:
		return ErrorCodeRateLimited
	case status >= 400 && status < 500:
		return ErrorCodeInvalidRequest
	default:
		return ErrorCodeServerError
	}
}
