package healthinfo_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/stretchr/testify/require"
)

// TestRejectsBadCredentials verifies protected routes answer 401 for wrong
// or missing credentials.
func TestRejectsBadCredentials(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	t.Run("wrong password", func(t *testing.T) {
		client := healthsdk.NewSDKClient(baseURL, apiUsername, "wrong-password")
		_, err := client.ListPrograms(t.Context())
		apiErr := assertAPIError(t, err, http.StatusUnauthorized, healthsdk.ErrorCodeUnauthorized)
		require.NotContains(t, apiErr.Description, "wrong-password")
	})

	t.Run("no credentials", func(t *testing.T) {
		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, baseURL+"/clients", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, `Basic realm="Health Information System", charset="UTF-8"`, resp.Header.Get("WWW-Authenticate"))
	})
}

// TestRateLimitWrites verifies creates are throttled per user under the
// default limits.
func TestRateLimitWrites(t *testing.T) {
	baseURL, cleanup := setupContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := newClient(baseURL)

	// Default write limit allows a burst of 60.
	var lastErr error
	for i := range 61 {
		_, err := client.CreateProgram(t.Context(), healthsdk.CreateProgramRequest{
			ID:   "p" + strings.Repeat("x", i+1),
			Name: "Program",
		})
		if i < 60 {
			require.NoError(t, err, "request %d should not be rate limited", i+1)
			continue
		}
		lastErr = err
	}

	assertAPIError(t, lastErr, http.StatusTooManyRequests, healthsdk.ErrorCodeRateLimitExceeded)
	t.Logf("Successfully rate limited after 60 writes")
}
