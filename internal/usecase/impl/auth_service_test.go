package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"authgate/config"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/errors"
	"authgate/internal/infra/auth"
	"authgate/internal/infra/persistence/memory"
	"authgate/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthService(t *testing.T) usecase.AuthUsecase {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-signing-secret"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	service, err := NewAuthService(AuthServiceParams{
		AccountRepo:  memory.NewAccountStore(),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	return service
}

func TestAuthService_SignUpThenLogin(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	signUpOut, err := service.SignUp(ctx, &usecase.SignUpInput{
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, signUpOut.Account)
	assert.NotZero(t, signUpOut.Account.ID)
	// Only the hash is persisted, never the raw password.
	assert.NotEqual(t, "secret1", signUpOut.Account.PasswordHash)
	assert.NotEmpty(t, signUpOut.Account.PasswordHash)

	loginOut, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loginOut.AccessToken)
	assert.Equal(t, "a@x.com", loginOut.Account.Username)
	assert.Equal(t, signUpOut.Account.ID, loginOut.Account.ID)
}

func TestAuthService_LoginTokenSubjectMatchesAccount(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-signing-secret"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	service, err := NewAuthService(AuthServiceParams{
		AccountRepo:  memory.NewAccountStore(),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	ctx := context.Background()
	signUpOut, err := service.SignUp(ctx, &usecase.SignUpInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	loginOut, err := service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	claims, err := tokenService.Validate(loginOut.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(signUpOut.Account.ID, 10), claims.Subject)
	assert.Equal(t, "a@x.com", claims.Username)
}

func TestAuthService_SignUpRejectsBlankInput(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	cases := []usecase.SignUpInput{
		{Email: "", Password: "secret1"},
		{Email: "a@x.com", Password: ""},
		{Email: "   ", Password: "secret1"},
		{Email: "a@x.com", Password: "  \t"},
	}

	for _, input := range cases {
		_, err := service.SignUp(ctx, &input)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput),
			"expected ErrInvalidInput for %+v, got %v", input, err)
	}
}

func TestAuthService_DuplicateSignUp(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	_, err := service.SignUp(ctx, &usecase.SignUpInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = service.SignUp(ctx, &usecase.SignUpInput{Email: "a@x.com", Password: "other"})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount))

	// The original credentials still log in: the duplicate attempt left no
	// partial state behind.
	_, err = service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	service := newTestAuthService(t)
	ctx := context.Background()

	_, err := service.SignUp(ctx, &usecase.SignUpInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, unknownUserErr := service.Login(ctx, &usecase.LoginInput{Email: "ghost@x.com", Password: "secret1"})
	_, wrongPasswordErr := service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})

	// Unknown username and wrong password surface the same error kind and
	// the same text; nothing observable separates the two paths.
	assert.True(t, errors.Is(unknownUserErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongPasswordErr, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())
}

// countingHasher is a PasswordHasher fake that records how often each
// operation runs, so tests can observe the verification cost of a code path.
type countingHasher struct {
	hashCalls  int
	checkCalls int
}

func (h *countingHasher) Hash(password string) (string, error) {
	h.hashCalls++

	return "hashed:" + password, nil
}

func (h *countingHasher) Check(password, hash string) bool {
	h.checkCalls++

	return hash == "hashed:"+password
}

func TestAuthService_UnknownUserStillPaysOneVerification(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-signing-secret"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	hasher := &countingHasher{}
	service, err := NewAuthService(AuthServiceParams{
		AccountRepo:  memory.NewAccountStore(),
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	// The dummy hash is computed once, at construction.
	require.Equal(t, 1, hasher.hashCalls)

	ctx := context.Background()

	// The unknown-username path must burn exactly one verification against
	// the dummy hash; skipping it would make absent accounts observably
	// cheaper than wrong passwords.
	_, err = service.Login(ctx, &usecase.LoginInput{Email: "ghost@x.com", Password: "secret1"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, 1, hasher.checkCalls)

	// The wrong-password path pays the same single verification.
	_, err = service.SignUp(ctx, &usecase.SignUpInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	hasher.checkCalls = 0
	_, err = service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, 1, hasher.checkCalls)
}

func TestAuthService_LoginRejectsBlankInput(t *testing.T) {
	service := newTestAuthService(t)

	_, err := service.Login(context.Background(), &usecase.LoginInput{Email: "", Password: ""})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
