package cryptox

import "crypto/subtle"

// StaticCredentials is a single username/password pair fixed at startup.
// When PasswordHash is set it is checked with VerifyPassword and Password is
// ignored.
type StaticCredentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// Verify reports whether the supplied pair matches. Both halves are always
// compared so the outcome does not leak which one was wrong.
func (c StaticCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1

	var passOK bool
	if c.PasswordHash != "" {
		passOK = VerifyPassword(password, c.PasswordHash) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	}

	return userOK && passOK && c.Username != ""
}
