package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsPreview is an UNVERIFIED decode of a session token, intended only
// for display purposes on the client side (showing who appears to be
// logged in before the server has been consulted).  It is deliberately a
// distinct type from Claims: nothing that gates access to a resource
// accepts a ClaimsPreview, so an attacker editing a stored token can at
// most change what their own UI shows.
type ClaimsPreview struct {
	UserID uint64
	Email  string
	Role   string
}

// PreviewClaims decodes a token payload without checking its signature or
// expiry.  It fails on structurally malformed tokens but succeeds on
// tampered ones; the result is cosmetic and must never feed an
// authorization decision.
func PreviewClaims(raw string) (ClaimsPreview, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, mc); err != nil {
		return ClaimsPreview{}, ErrInvalidToken
	}
	c, ok := claimsFromMap(mc)
	if !ok {
		return ClaimsPreview{}, ErrInvalidToken
	}
	return ClaimsPreview{UserID: c.UserID, Email: c.Email, Role: c.Role}, nil
}
