// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/validators"
	"github.com/MKhiriev/go-session-auth/models"
)

// userService implements CRUD over a [store.UserDirectory]. Passwords are
// stored through the [PasswordScheme] of the directory; inputs are checked
// with a [validators.Validator] before any write.
type userService struct {
	users     store.UserDirectory
	scheme    PasswordScheme
	validator validators.Validator
	logger    *logger.Logger
}

func NewUserService(users store.UserDirectory, scheme PasswordScheme, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		users:     users,
		scheme:    scheme,
		validator: validator,
		logger:    logger,
	}
}

func (s *userService) List(ctx context.Context, query models.UserQuery) ([]models.User, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, query.ToFilter())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *userService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, newUser models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, newUser); err != nil {
		return models.User{}, err
	}

	user, err := s.toUser(0, newUser)
	if err != nil {
		return models.User{}, err
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		log.Err(err).Str("username", newUser.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	log.Info().Int64("user_id", created.ID).Msg("user created")

	return created, nil
}

// Replace overwrites every field of user id except the id itself.
func (s *userService) Replace(ctx context.Context, id int64, newUser models.NewUser) (models.User, error) {
	if err := s.validator.Validate(ctx, newUser); err != nil {
		return models.User{}, err
	}

	user, err := s.toUser(id, newUser)
	if err != nil {
		return models.User{}, err
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", id).Msg("user replacement ended with error")
		return models.User{}, fmt.Errorf("user replacement ended with error: %w", err)
	}

	return updated, nil
}

// Patch merges the non-empty fields of patch into user id. Only the
// changed fields are validated.
func (s *userService) Patch(ctx context.Context, id int64, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	var changed []string
	if patch.Username != "" {
		user.Username = patch.Username
		changed = append(changed, validators.FieldUsername)
	}
	if patch.DisplayName != "" {
		user.DisplayName = patch.DisplayName
		changed = append(changed, validators.FieldDisplayName)
	}
	if patch.Password != "" {
		changed = append(changed, validators.FieldPassword)
	}

	if len(changed) == 0 {
		return user, nil
	}

	candidate := models.NewUser{Username: user.Username, DisplayName: user.DisplayName, Password: patch.Password}
	if err = s.validator.Validate(ctx, candidate, changed...); err != nil {
		return models.User{}, err
	}

	if patch.Password != "" {
		if user.Password, err = s.scheme.Hash(patch.Password); err != nil {
			return models.User{}, err
		}
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", id).Msg("user patch ended with error")
		return models.User{}, fmt.Errorf("user patch ended with error: %w", err)
	}

	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Int64("user_id", id).Msg("user deletion ended with error")
		}
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

func (s *userService) Seed(ctx context.Context, users ...models.User) error {
	log := logger.FromContext(ctx)

	for _, u := range users {
		_, err := s.users.FindByUsername(ctx, u.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrUserNotFound) {
			return fmt.Errorf("failed to seed users: %w", err)
		}

		hashed, err := s.scheme.Hash(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashed

		if _, err = s.users.Insert(ctx, u); err != nil && !errors.Is(err, store.ErrUsernameTaken) {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		log.Debug().Str("username", u.Username).Msg("seeded user")
	}

	return nil
}

func (s *userService) toUser(id int64, newUser models.NewUser) (models.User, error) {
	hashed, err := s.scheme.Hash(newUser.Password)
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		ID:          id,
		Username:    newUser.Username,
		DisplayName: newUser.DisplayName,
		Password:    hashed,
	}, nil
}
