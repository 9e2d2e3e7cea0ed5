package testdatasdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to the test data service. The service holds the registry
// credentials, so no authentication is needed here.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL. The timeout
// leaves room for a dashboard request, which runs every role's pipeline.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}
