// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/scies/greenchem/internal/config"
	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/internal/store"
	"github.com/scies/greenchem/internal/utils"
	"github.com/scies/greenchem/models"
)

// userService is the concrete implementation of UserService. It owns the
// account-management rules: password hashing, the recoverable password copy,
// protection of the built-in administrator, and admin bootstrap at startup.
type userService struct {
	userRepository store.UserRepository

	// adminInitialPassword is assigned to the "admin" account when it is
	// created at first startup. Ignored once the account exists.
	adminInitialPassword string

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:       userRepository,
		adminInitialPassword: cfg.AdminInitialPassword,
		logger:               logger,
	}
}

// CreateUser registers a new account with the given password.
//
// The password is stored twice: as a bcrypt hash used for login checks, and
// verbatim so an administrator can read it back to a user who lost it.
//
// Returns the persisted user (with server-assigned fields) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUsernameAlreadyExists).
func (s *userService) CreateUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.PasswordHash = hash
	user.PlainPassword = password

	createdUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// DeleteUser removes an account. The built-in administrator cannot be
// deleted.
//
// Returns:
//   - ErrInvalidDataProvided if username is empty.
//   - ErrAdminProtected if username names the administrator account.
//   - A wrapped storage error otherwise (e.g. store.ErrNoUserWasFound).
func (s *userService) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	if username == "" {
		return ErrInvalidDataProvided
	}
	if username == models.AdminUsername {
		log.Warn().Msg("attempt to delete admin account rejected")
		return ErrAdminProtected
	}

	if err := s.userRepository.DeleteUser(ctx, username); err != nil {
		log.Err(err).Str("username", username).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

// ResetPassword replaces an account's password, updating both the bcrypt
// hash and the recoverable copy.
func (s *userService) ResetPassword(ctx context.Context, username, newPassword string) error {
	log := logger.FromContext(ctx)

	if username == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, username, hash, newPassword); err != nil {
		log.Err(err).Str("username", username).Msg("password reset ended with error")
		return fmt.Errorf("password reset ended with error: %w", err)
	}

	return nil
}

// ListUsers returns all registered accounts.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}

// EnsureAdmin creates the "admin" account with the configured initial
// password if it does not exist yet. An existing account is left untouched,
// including its password.
func (s *userService) EnsureAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := s.userRepository.FindUserByUsername(ctx, models.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("admin lookup ended with error: %w", err)
	}

	admin := models.User{
		Username: models.AdminUsername,
		Name:     "系统管理员",
	}
	if _, err := s.CreateUser(ctx, admin, s.adminInitialPassword); err != nil {
		// lost a race with another instance creating the same account
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return nil
		}
		return err
	}

	log.Info().Msg("admin account created")
	return nil
}
