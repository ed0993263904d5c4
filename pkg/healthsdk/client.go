package healthsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Health Information System API. Every call
// except the health probes sends the configured Basic credentials.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	Username string
	Password string
}

// NewSDKClient creates a client for the API at baseURL.
func NewSDKClient(baseURL, username, password string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Username: username,
		Password: password,
	}
}
