package httpx

import (
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

// CredentialVerifier decides whether a username/password pair is accepted.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// BasicAuth rejects any request that does not carry credentials accepted by v.
//
// Rejected credentials are never reflected back to the caller; only the
// username is logged server side. When failures is non-nil every rejected
// pair counts against the caller's IP, and an IP with no failures left gets
// 429 without its credentials being checked.
func BasicAuth(realm string, v CredentialVerifier, failures *FailureLimiter) Middleware {
	challenge := fmt.Sprintf(`Basic realm=%q, charset="UTF-8"`, realm)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			username, password, ok := r.BasicAuth()
			if !ok {
				writeBasicChallenge(w, challenge, "No credentials provided")
				return
			}

			ip := IPKeyExtractor(r)
			if failures != nil {
				if retryAfter, blocked := failures.Blocked(ip); blocked {
					log.Warn("basic auth throttled", "username", username, "ip", ip, "retry_after", retryAfter)
					writeRateLimited(w, failures.config, retryAfter)
					return
				}
			}

			if !v.Verify(username, password) {
				if failures != nil {
					failures.Fail(ip)
				}
				log.Warn("basic auth rejected", "username", username, "ip", ip)
				writeBasicChallenge(w, challenge, "Credentials rejected")
				return
			}

			ctx := contextWithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 7617 challenge with the standard error envelope as the body.
func writeBasicChallenge(w http.ResponseWriter, challenge, desc string) {
	w.Header().Set("WWW-Authenticate", challenge)
	WriteError(w, http.StatusUnauthorized, "unauthorized", desc)
}
