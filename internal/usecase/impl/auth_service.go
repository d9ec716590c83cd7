// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/errors"
	"authgate/internal/usecase"
)

// dummyPassword feeds the precomputed hash used to equalize login timing for
// unknown usernames. Its value never matters; only the cost of verifying it does.
const dummyPassword = "authgate-dummy-credential"

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	dummyHash    string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. The dummy hash is
// computed once here so the unknown-username login path pays the same bcrypt
// cost as a real verification.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	dummyHash, err := params.Hasher.Hash(dummyPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to precompute dummy hash")
	}

	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		dummyHash:    dummyHash,
		logger:       params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates an account: uniqueness fast-path, hash, persist. The store's
// Create is the authoritative uniqueness guarantee; the lookup only saves a
// bcrypt run in the common duplicate case. Either the account is fully
// created or nothing is.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	if isBlank(input.Email) || isBlank(input.Password) {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("signup rejected")
	}

	srv.log(ctx).Debug("Starting signup", slog.String("username", input.Email))

	_, err := srv.accountRepo.FindByUsername(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Signup for existing username", slog.String("username", input.Email))

		return nil, domainerrors.ErrDuplicateAccount.WrapMessage("signup rejected")
	case !errors.Is(err, repository.ErrAccountNotFound):
		return nil, errors.Wrap(err, "failed to check existing username")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	account := &entity.Account{
		Username:     input.Email,
		PasswordHash: hash,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		// A concurrent signup may win between the lookup above and this
		// insert; the store reports that as ErrDuplicateAccount and it
		// propagates unchanged.
		if errors.Is(err, domainerrors.ErrDuplicateAccount) {
			srv.log(ctx).Warn("Lost signup race", slog.String("username", input.Email))

			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create account during signup")
	}

	srv.log(ctx).Info("Account created", slog.Int64("accountID", account.ID))

	return &usecase.SignUpOutput{Account: account}, nil
}

// Login authenticates credentials and issues a session token. The
// unknown-username path runs a verification against the precomputed dummy
// hash so its timing and its error are indistinguishable from a wrong
// password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if isBlank(input.Email) || isBlank(input.Password) {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("login rejected")
	}

	srv.log(ctx).Debug("Starting login", slog.String("username", input.Email))

	account, err := srv.accountRepo.FindByUsername(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Burn a bcrypt verification and discard the result; returning
			// early here would expose which usernames exist.
			srv.hasher.Check(input.Password, srv.dummyHash)
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, expiresAt, err := srv.tokenService.Issue(account)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{
		Account:     account,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
