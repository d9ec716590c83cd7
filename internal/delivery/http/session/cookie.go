// Package session shapes the cookies the login flow issues. The cookie names
// and attributes are a compatibility contract with the frontend: the token
// cookie stays HttpOnly, the marker cookie is deliberately JS-readable so the
// UI can answer "am I logged in" without touching the token.
package session

import (
	"net/http"
	"time"
)

const (
	// TokenCookieName carries the session token. HttpOnly keeps it away
	// from page scripts.
	TokenCookieName = "ACCESS_TOKEN"

	// MarkerCookieName is the plain login marker read by the frontend.
	MarkerCookieName = "APP_AUTH"
)

// SetLoginCookies issues the token cookie and the login marker. Both carry
// Max-Age and Expires matching the token lifetime so stale "logged in" UI
// state cannot outlive the session.
func SetLoginCookies(w http.ResponseWriter, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Round(time.Second).Seconds())

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     MarkerCookieName,
		Value:    "1",
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expiresAt,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearLoginCookies removes both cookies by re-setting them with immediate expiry.
func ClearLoginCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     MarkerCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}
