package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// userRepository is the implementation of [UserRepository] over whichever
// [Database] was bound at startup. It handles user account creation and
// lookup against the "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type userRepository struct {
	logger *logger.Logger
	users  Collection
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db Database, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  db.Collection(models.User{}.CollectionName()),
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it unchanged on success.
//
// Error handling:
//   - unique user_email violation → [ErrEmailAlreadyExists].
//   - backend unreachable → wrapped [ErrStoreUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := r.users.InsertOne(ctx, user); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")

		if errors.Is(err, ErrDuplicateKey) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose user_email equals email.
// Email comparison is case-sensitive exact equality.
//
// Error handling:
//   - no matching record → [ErrNoUserWasFound].
//   - backend unreachable → wrapped [ErrStoreUnavailable].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	if err := r.users.FindOne(ctx, Filter{"user_email": email}, &foundUser); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return foundUser, nil
}
