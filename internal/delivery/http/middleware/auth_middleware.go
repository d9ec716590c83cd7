package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"authgate/internal/delivery/http/session"
	"authgate/internal/domain/service"
)

// AuthMiddleware validates session tokens on protected routes. Any
// verification failure means "not authenticated"; it never surfaces as a crash.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token from the Authorization header or
// the session cookie and exposes the identity claims to handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			if cookie, err := c.Cookie(session.TokenCookieName); err == nil {
				tokenString = cookie.Value
			}
		}
		if tokenString == "" {
			return c.String(http.StatusUnauthorized, "missing session token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return c.String(http.StatusUnauthorized, "invalid or expired token")
		}

		accountID, err := claims.AccountID()
		if err != nil {
			return c.String(http.StatusUnauthorized, "invalid subject in token")
		}

		c.Set("accountID", accountID)
		c.Set("username", claims.Username)

		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return tokenString
}
