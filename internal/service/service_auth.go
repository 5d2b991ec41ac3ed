package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// uuid issues identifiers for newly registered users.
	uuid *utils.UUIDGenerator

	// bcryptCost is the bcrypt work factor applied when hashing passwords at
	// registration time. Verification reads the cost back from the digest, so
	// changing it never invalidates existing accounts.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uuid:           utils.NewUUIDGenerator(),
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the signup payload, hashes the password with the configured
// bcrypt cost, assigns a server-generated user id and both timestamps, and
// delegates persistence to the UserRepository. The plaintext password never
// reaches the store.
//
// Returns the persisted user (password field holds the bcrypt digest) or:
//   - ErrInvalidDataProvided if name, email or password is empty, or the
//     email lacks an "@".
//   - store.ErrEmailAlreadyExists if the email is already registered, caught
//     either by the pre-check lookup or by the unique index on insert.
//   - A wrapped storage error if the backend is unreachable.
func (a *authService) RegisterUser(ctx context.Context, signup models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if signup.UserName == "" || signup.Password == "" || !isPlausibleEmail(signup.UserEmail) {
		log.Error().Str("email", signup.UserEmail).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	// cheap pre-check; the unique index still catches the race where two
	// signups for the same email pass this point concurrently
	_, err := a.userRepository.FindUserByEmail(ctx, signup.UserEmail)
	if err == nil {
		log.Error().Str("email", signup.UserEmail).Msg("signup for already registered email")
		return models.User{}, store.ErrEmailAlreadyExists
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", signup.UserEmail).Msg("user pre-check failed")
		return models.User{}, fmt.Errorf("user pre-check failed: %w", err)
	}

	digest, err := utils.HashPassword(signup.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		UserID:     a.uuid.Generate(),
		UserName:   signup.UserName,
		UserEmail:  signup.UserEmail,
		Password:   digest,
		CreatedOn:  now,
		LastUpdate: now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.UserEmail).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and verifies the supplied password against
// the stored bcrypt digest. An unknown email and a wrong password are
// deliberately indistinguishable to the caller: both yield ErrWrongCredentials
// so that the endpoint cannot be used to probe which emails are registered.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongCredentials if the email is unknown or the password does not match.
//   - A wrapped storage error if the backend is unreachable
//     (see store.ErrStoreUnavailable).
func (a *authService) Login(ctx context.Context, signin models.SigninRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if signin.UserEmail == "" || signin.Password == "" {
		log.Error().Str("email", signin.UserEmail).Msg("invalid signin data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, signin.UserEmail)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", signin.UserEmail).Msg("signin for unknown email")
			return models.User{}, ErrWrongCredentials
		}

		log.Err(err).Str("email", signin.UserEmail).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(signin.Password, foundUser.Password) {
		log.Error().Str("email", signin.UserEmail).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's email as the "sub" claim, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed if
// JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserEmail, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim and the expiry. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveToken turns a raw JWT string into the user record it was issued for.
//
// Validation is strictly ordered: the token is checked cryptographically
// before the store is touched, so a forged or expired token never causes a
// store round-trip. Only after the token passes is the subject email looked
// up.
//
// Returns the user or:
//   - ErrTokenIsExpiredOrInvalid if the token fails validation, or if it is
//     valid but its subject no longer resolves to an account.
//   - A wrapped storage error if the backend is unreachable at lookup time
//     (see store.ErrStoreUnavailable); an infrastructure outage must not be
//     reported as an authentication failure.
func (a *authService) ResolveToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, token.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", token.Email).Msg("valid token for unknown user")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}

		log.Err(err).Str("email", token.Email).Msg("token subject lookup failed")
		return models.User{}, fmt.Errorf("token subject lookup failed: %w", err)
	}

	return user, nil
}

// isPlausibleEmail applies the same minimal shape check the signup endpoint
// has always enforced: a non-empty local part and domain around one "@".
// Anything stricter belongs to an email-verification flow, not here.
func isPlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
