package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// tokenIssuer is the "iss" claim embedded in every issued JWT. Tokens whose
// issuer does not match are rejected during parsing.
const tokenIssuer = "go-note-keeper"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// accessTokenTTL controls how long a newly issued access token remains
	// valid.
	accessTokenTTL time.Duration

	// refreshTokenTTL controls how long a newly issued refresh token remains
	// valid.
	refreshTokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The token lifetimes are parsed from their configured duration expressions
// here, so a malformed JWT_EXPIRES_IN or REFRESH_TOKEN_EXPIRES_IN fails the
// process at startup rather than on the first login.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg *config.Config, logger *logger.Logger) (AuthService, error) {
	accessTokenTTL, err := cfg.AccessTokenTTL()
	if err != nil {
		return nil, fmt.Errorf("access token lifetime: %w", err)
	}

	refreshTokenTTL, err := cfg.RefreshTokenTTL()
	if err != nil {
		return nil, fmt.Errorf("refresh token lifetime: %w", err)
	}

	return &authService{
		userRepository:  userRepository,
		tokenSignKey:    cfg.JWTSecret,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		logger:          logger,
	}, nil
}

// RegisterUser creates a new user account.
//
// It validates that both Login and Password are non-empty, hashes the password
// with bcrypt, and delegates persistence to the UserRepository. The plain-text
// password never reaches the storage layer.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login already
//     taken — see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.Password = ""
	user.PasswordHash = string(passwordHash)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Login and Password are non-empty, looks up the
// account by login, and compares the supplied password against the stored
// bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("login", foundUser.Login).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateTokenPair issues a signed access/refresh token pair for the given
// user.
//
// Both tokens are signed with the configured sign key and carry the service
// issuer as the "iss" claim; they differ in lifetime and in the "token_use"
// claim, so a refresh token can never be replayed as an access token.
//
// Returns the pair on success or a wrapped ErrTokenCreationFailed.
func (a *authService) CreateTokenPair(ctx context.Context, userID int64) (models.TokenPair, error) {
	accessToken, err := utils.GenerateJWTToken(tokenIssuer, userID, models.TokenUseAccess, a.accessTokenTTL, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateJWTToken(tokenIssuer, userID, models.TokenUseRefresh, a.refreshTokenTTL, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.String(),
		RefreshToken: refreshToken.String(),
		TokenType:    "Bearer",
		ExpiresIn:    int64(a.accessTokenTTL.Seconds()),
	}, nil
}

// RefreshTokens exchanges a valid refresh token for a brand-new token pair.
//
// The presented token must verify against the sign key, carry the service
// issuer, be unexpired, and hold the "refresh" token use; any failure is
// normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, tokenIssuer, models.TokenUseRefresh)
	if err != nil {
		log.Err(err).Msg("refresh token rejected")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	return a.CreateTokenPair(ctx, token.UserID)
}

// ParseAccessToken validates and parses a raw access token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the "access" token use. Any validation failure
// (expired, wrong issuer, refresh token presented, malformed) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, tokenIssuer, models.TokenUseAccess)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
