package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/todo-keeper/internal/config"
	"github.com/MKhiriev/todo-keeper/internal/logger"
	"github.com/MKhiriev/todo-keeper/internal/store"
	"github.com/MKhiriev/todo-keeper/internal/utils"
	"github.com/MKhiriev/todo-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential checks and the JWT token
// lifecycle using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	ids IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, ids IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		ids:            ids,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new account.
//
// The email is looked up first so the common conflict is reported without
// touching the unique constraint; a concurrent signup that slips past the
// lookup still ends with [store.ErrEmailAlreadyExists] from the insert.
func (a *authService) Signup(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		log.Debug().Str("email", user.Email).Msg("email is already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	user.ID = a.ids.Generate()
	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Signin authenticates an account and issues a token for it.
//
// An unknown email and a wrong password both yield [ErrWrongCredentials]
// so the response does not reveal which accounts exist.
func (a *authService) Signin(ctx context.Context, email, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("email", email).Msg("sign in with unknown email")
		return models.Token{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		log.Debug().Str("id", user.ID).Msg("sign in with wrong password")
		return models.Token{}, ErrWrongCredentials
	}

	return a.IssueToken(ctx, user.ID)
}

func (a *authService) ChangePassword(ctx context.Context, email, newPassword string) error {
	log := logger.FromContext(ctx)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		return ErrNoPrincipal
	}

	user, err := a.userRepository.FindUserByID(ctx, principal.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("id", principal.UserID).Msg("principal has no account")
		return ErrAccessDenied
	}
	if err != nil {
		log.Err(err).Str("id", principal.UserID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if user.Email != email {
		log.Debug().Str("id", user.ID).Msg("password change for a foreign email")
		return ErrEmailMismatch
	}

	err = a.userRepository.UpdatePassword(ctx, user.ID, newPassword)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrAccessDenied
	}
	if err != nil {
		log.Err(err).Str("id", user.ID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// IssueToken issues a signed JWT for the given user id.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) IssueToken(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", userID).Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies a raw JWT string and returns the principal it names.
//
// A token without a subject yields [ErrMalformedSubject]. Every other
// failure is [ErrInvalidCredential] wrapping the verification reason.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, utils.ErrEmptySubject) {
		logger.FromContext(ctx).Error().Msg("verified token carries no subject")
		return models.Principal{}, ErrMalformedSubject
	}
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	return models.Principal{UserID: token.UserID}, nil
}
