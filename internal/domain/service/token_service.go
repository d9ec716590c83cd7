package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"authgate/internal/domain/entity"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AccountID returns the numeric account id encoded in the subject claim.
func (c *Claims) AccountID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenService defines the interface for issuing and validating session
// tokens. The token is the full session record; there is no server-side
// session state behind it.
type TokenService interface {
	// Issue builds a signed token for the account: issuer, issued-at,
	// expires-at (issued-at + the fixed TTL), subject = account id,
	// username claim. Also returns the expiry for cookie shaping.
	Issue(account *entity.Account) (token string, expiresAt time.Time, err error)

	// Validate checks signature, issuer and the [issued-at, expires-at)
	// window. Any failure means "not authenticated", reported as an error.
	Validate(token string) (*Claims, error)

	// AccessTokenTTL returns the fixed token lifetime.
	AccessTokenTTL() time.Duration
}
