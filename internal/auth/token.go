package auth // package auth provides session token issuing and verification

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrInvalidToken is returned by VerifySessionToken for any token that
// cannot be trusted: bad signature, wrong algorithm, malformed payload or
// past expiry.  Callers must treat all of these identically; none of the
// embedded claims may be used.
var ErrInvalidToken = errors.New("invalid token")

// SessionToken is a signed session credential together with its expiry.
// The Token field contains the serialized JWT string.  Tokens are
// stateless: nothing is stored server-side and they simply stop verifying
// once Exp has passed.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Claims is the verified identity extracted from a session token.  A
// Claims value only ever exists after the token signature and expiry have
// been checked, so it is safe to use for authorization decisions.
type Claims struct {
	UserID uint64 // subject of the token (users.id)
	Email  string // email embedded at issue time
	Role   string // role embedded at issue time
}

// NewSessionToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user's ID, email and role, and a TTL in minutes.
// The JWT carries the standard claims sub, exp and iat plus email and
// role.
func NewSessionToken(secret string, userID uint64, email, role string, ttlMin int) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// VerifySessionToken checks the signature and expiry of a raw token string
// and returns the verified claims.  Tokens signed with any algorithm other
// than HMAC are rejected so that an attacker cannot downgrade to "none" or
// swap in an asymmetric key.  Any failure is reported as ErrInvalidToken.
func VerifySessionToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	c, ok := claimsFromMap(mc)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	return c, nil
}

// claimsFromMap pulls the identity fields out of decoded claims.  The sub
// claim arrives as float64 for JSON numbers and occasionally as a numeric
// string depending on the issuer; both are accepted.
func claimsFromMap(mc jwt.MapClaims) (Claims, bool) {
	var c Claims
	switch sub := mc["sub"].(type) {
	case float64:
		c.UserID = uint64(sub)
	case string:
		n, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			return Claims{}, false
		}
		c.UserID = n
	default:
		return Claims{}, false
	}
	if c.UserID == 0 {
		return Claims{}, false
	}
	c.Email, _ = mc["email"].(string)
	role, ok := mc["role"].(string)
	if !ok || role == "" {
		return Claims{}, false
	}
	c.Role = role
	return c, true
}
