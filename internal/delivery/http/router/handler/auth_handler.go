// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"authgate/internal/delivery/http/session"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"
)

// loginResponse echoes the issued token alongside the identity, matching the
// contract the frontend consumes.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	UserName    string `json:"user_name"`
	Role        string `json:"role"`
}

// defaultRole is the role claim echoed to the client. Role enforcement is a
// caller concern; this service only carries the claim.
const defaultRole = "ADMIN"

// AuthHandler holds dependencies for the credential/session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request. Signup persists the
// account but never issues a token.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("malformed registration body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("missing registration fields")
	}

	if _, err := h.uc.SignUp(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "account created"})
}

// Login handles the authentication request. On success it sets the HttpOnly
// token cookie plus the JS-readable login marker and echoes the token in the
// body.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("malformed login body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("missing login fields")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	session.SetLoginCookies(c.Response(), output.AccessToken, output.ExpiresAt)

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: output.AccessToken,
		UserName:    output.Account.Username,
		Role:        defaultRole,
	})
}

// Logout clears the session cookies and sends the client back to the login
// page. The token itself simply ages out; there is no server-side state to drop.
func (h *AuthHandler) Logout(c echo.Context) error {
	session.ClearLoginCookies(c.Response())

	return c.Redirect(http.StatusFound, "/login")
}

// Me returns the identity established by the auth middleware. It exists so
// collaborating services have a reference for consuming the token contract.
func (h *AuthHandler) Me(c echo.Context) error {
	accountID, ok := c.Get("accountID").(int64)
	if !ok {
		return c.String(http.StatusUnauthorized, "invalid session")
	}
	username, _ := c.Get("username").(string)

	return c.JSON(http.StatusOK, map[string]any{
		"account_id": accountID,
		"user_name":  username,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
