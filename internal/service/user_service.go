package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/reporting-service/internal/domain"
	"github.com/spec-kit/reporting-service/internal/repository"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

// UserService covers account administration outside the auth flow.
type UserService struct {
	users repository.UserRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Get returns one account by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

// List returns every registered account.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return users, nil
}

// UpdateRole changes an account's role. A student account is keyed by a
// student number and a staff account by an email; crossing that line would
// leave the account without a usable login identifier, so such transitions
// are rejected up front instead of surfacing as a storage failure.
func (s *UserService) UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if (user.Role == domain.RoleStudent) != (role == domain.RoleStudent) {
		return nil, apperrors.NewValidationError(
			"cannot change role between student and staff: the account's login identifier would no longer match its role",
			map[string]any{"current_role": user.Role, "requested_role": role},
		)
	}
	if user.Role == role {
		return user, nil
	}
	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return s.Get(ctx, id)
}
