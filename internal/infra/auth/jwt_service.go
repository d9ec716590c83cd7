package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"authgate/config"
	"authgate/internal/domain/entity"
	"authgate/internal/domain/service"
	"authgate/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. The signing secret is shared, symmetric and immutable for
// the process lifetime.
type jwtService struct {
	secret    string
	issuer    string
	accessTTL time.Duration
	now       func() time.Time // injectable clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		issuer:    cfg.ServiceName(),
		accessTTL: cfg.TokenTTL(),
		now:       time.Now,
	}, nil
}

// Issue creates a signed session token for the account. The token carries
// the full session: issuer, issued-at, expiry, subject (account id) and the
// username claim. Nothing is stored server-side.
func (s *jwtService) Issue(account *entity.Account) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.accessTTL)

	claims := &service.Claims{
		Username: account.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(account.ID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}

	return token, expiresAt, nil
}

// Validate checks the signature, issuer and time window of a token string.
// Any failure means "not authenticated" and surfaces as an error, never a panic.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			// Reject anything but the HMAC family before touching the key.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(s.secret), nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	return claims, nil
}

// AccessTokenTTL returns the fixed session token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
