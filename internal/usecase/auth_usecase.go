// Package usecase defines the application's business operations and their
// input/output contracts.
package usecase

import (
	"context"
	"time"

	"authgate/internal/domain/entity"
)

// SignUpInput carries the credentials for account creation. The "email"
// field is the username; AuthCode is accepted for forward compatibility and
// currently unused.
type SignUpInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	AuthCode string `json:"auth_code,omitempty"`
}

// LoginInput carries the credentials for authentication.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignUpOutput reports the created account. No token is issued by signup.
type SignUpOutput struct {
	Account *entity.Account
}

// LoginOutput carries the established identity and its session token.
type LoginOutput struct {
	Account     *entity.Account
	AccessToken string
	ExpiresAt   time.Time
}

// AuthUsecase orchestrates signup and login over the account store, the
// credential hasher and the token issuer. It holds no persistent state.
type AuthUsecase interface {
	// SignUp creates an account for fresh credentials. Fails with
	// ErrInvalidInput on blank fields and ErrDuplicateAccount when the
	// username is taken, including the race with a concurrent signup.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// Login authenticates credentials and issues a session token. Unknown
	// username and wrong password are both ErrInvalidCredentials and are
	// externally indistinguishable.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
