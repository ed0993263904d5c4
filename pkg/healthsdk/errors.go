package healthsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes used in ErrorResponse.Error.
const (
	ErrorCodeUnauthorized      = "unauthorized"
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeClientNotFound    = "client_not_found"
	ErrorCodeProgramNotFound   = "program_not_found"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	// StatusCode is the HTTP status of the response
	StatusCode int `json:"-"`

	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Description)
}

// parseErrorResponse turns a failed response into an *APIError, falling back
// to the status text when the body is not an error envelope.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
