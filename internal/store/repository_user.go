// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

var userColumns = []string{"id", "username", "display_name", "password"}

// userFilterColumns maps listing filter fields onto users table columns.
var userFilterColumns = map[string]string{
	"username":    "username",
	"displayName": "display_name",
}

// userRepository is the SQL-backed implementation of [UserDirectory]
// working against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserDirectory] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserDirectory {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindByUsername", sq.Eq{"username": username})
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindByID", sq.Eq{"id": id})
}

func (r *userRepository) findOne(ctx context.Context, fn string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, fn, query, args...)
}

// List returns users whose filter column contains filter.Value ordered by id.
// Matching is case-sensitive on both dialects.
func (r *userRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id")

	if filter.Field != "" {
		column, ok := userFilterColumns[filter.Field]
		if !ok {
			return nil, ErrUnknownFilterField
		}
		builder = builder.Where(r.containsExpr(column, filter.Value))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if scanErr := rows.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Password); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.List").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, u)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

func (r *userRepository) Insert(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("username", "display_name", "password").
		Values(user.Username, user.DisplayName, user.Password).
		Suffix(returningUser()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Insert").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, "*userRepository.Insert", query, args...)
}

func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(user.TableName()).
		Set("username", user.Username).
		Set("display_name", user.DisplayName).
		Set("password", user.Password).
		Where(sq.Eq{"id": user.ID}).
		Suffix(returningUser()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, "*userRepository.Update", query, args...)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Int64("user_id", id).Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// scanOne runs a single-row user query and maps driver errors onto the
// directory sentinels.
func (r *userRepository) scanOne(ctx context.Context, fn, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var u models.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Username, &u.DisplayName, &u.Password)
	switch {
	case err == nil:
		return u, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case isUniqueViolation(err):
		log.Warn().Str("func", fn).Msg("username is already taken")
		return models.User{}, ErrUsernameTaken
	default:
		log.Err(err).Str("func", fn).Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// containsExpr builds a case-sensitive substring predicate. LIKE is avoided:
// it is case-insensitive in SQLite and treats % and _ in the value as wildcards.
func (r *userRepository) containsExpr(column, value string) sq.Sqlizer {
	if r.db.dialect == DialectPostgres {
		return sq.Expr("strpos("+column+", ?) > 0", value)
	}
	return sq.Expr("instr("+column+", ?) > 0", value)
}

func returningUser() string {
	return "RETURNING id, username, display_name, password"
}
