package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/reporting-service/internal/auth"
	"github.com/spec-kit/reporting-service/internal/config"
	"github.com/spec-kit/reporting-service/internal/domain"
	"github.com/spec-kit/reporting-service/internal/events"
	"github.com/spec-kit/reporting-service/internal/repository"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

const (
	minPasswordLength = 6
	emailDomainSuffix = "@luct.co.ls"
)

var studentIDPattern = regexp.MustCompile(`^\d{9}$`)

// RegisterInput carries a registration request.
type RegisterInput struct {
	Name      string
	Email     string
	StudentID string
	Password  string
	Role      domain.Role
}

// AuthService coordinates registration, login, and logout flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	revoked    *auth.RevocationList
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAuthService builds the service. The token signing secret comes from
// config exactly once here.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, revoked *auth.RevocationList, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		revoked:    revoked,
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register validates role-dependent identifiers, rejects duplicates, and
// stores the account with a salted one-way hash of the password. The
// plaintext is never persisted or logged.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, apperrors.NewValidationError("invalid role", nil)
	}
	if in.Role == domain.RoleStudent {
		if in.StudentID == "" {
			return nil, apperrors.NewValidationError("student ID is required for student registration", nil)
		}
		if !studentIDPattern.MatchString(in.StudentID) {
			return nil, apperrors.NewValidationError("student ID must be 9 digits (e.g., 901019102)", nil)
		}
	} else {
		if in.Email == "" {
			return nil, apperrors.NewValidationError("email is required for lecturer/PRL/PL registration", nil)
		}
		if !strings.HasSuffix(in.Email, emailDomainSuffix) || in.Email == emailDomainSuffix {
			return nil, apperrors.NewValidationError("email must be a valid institutional address (e.g., example@luct.co.ls)", nil)
		}
	}
	if in.Name == "" || in.Password == "" {
		return nil, apperrors.NewValidationError("name and password are required", nil)
	}
	if len(in.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password must be at least 6 characters long", nil)
	}

	// Duplicate check covers both identifier columns so an email entered
	// under the wrong role is still caught.
	if in.StudentID != "" {
		if _, err := s.users.GetByStudentID(ctx, in.StudentID); err == nil {
			return nil, apperrors.NewConflict("student ID already registered", nil)
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.MapError(err)
		}
	}
	if in.Email != "" {
		if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
			return nil, apperrors.NewConflict("email already registered", nil)
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.MapError(err)
		}
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:         in.Name,
		Role:         in.Role,
		PasswordHash: hash,
	}
	if in.Role == domain.RoleStudent {
		studentID := in.StudentID
		user.StudentID = &studentID
	} else {
		email := in.Email
		user.Email = &email
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserRegistered,
			ActorRole: user.Role,
			Timestamp: time.Now(),
			Payload:   events.UserRegisteredPayload{UserID: user.ID, Role: user.Role},
		})
	}
	return user, nil
}

// Login resolves the identifier positionally by role (student number for
// students, email otherwise) and issues a 24-hour session token. Unknown
// accounts and wrong passwords return the same error so identifiers cannot
// be enumerated.
func (s *AuthService) Login(ctx context.Context, identifier, password string, role domain.Role) (*domain.User, string, time.Time, error) {
	if identifier == "" || password == "" || role == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("identifier, password, and role are required", nil)
	}

	user, err := s.users.GetByIdentifierAndRole(ctx, identifier, role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, expiresAt, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.revoked.Revoke(ctx, tokenID, expiresAt); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
