package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/reporting-service/internal/config"
	"github.com/spec-kit/reporting-service/internal/domain"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

type fakeUserRepo struct {
	nextID int64
	users  []*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByStudentID(_ context.Context, studentID string) (*domain.User, error) {
	for _, u := range f.users {
		if u.StudentID != nil && *u.StudentID == studentID {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByIdentifierAndRole(_ context.Context, identifier string, role domain.Role) (*domain.User, error) {
	for _, u := range f.users {
		if u.Role != role {
			continue
		}
		if u.StudentID != nil && *u.StudentID == identifier {
			return u, nil
		}
		if u.Email != nil && *u.Email == identifier {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	for _, u := range f.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return pgx.ErrNoRows
}

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	cfg := config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLHours: 24, BcryptCost: 4}
	return NewAuthService(cfg, repo, nil, nil)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected domain error, got %v", err)
	}
	return domainErr.HTTPStatus
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepo{})
	ctx := context.Background()

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"invalid role", RegisterInput{Name: "a", Password: "secret1", Role: "dean"}},
		{"student without id", RegisterInput{Name: "a", Password: "secret1", Role: domain.RoleStudent}},
		{"short student id", RegisterInput{Name: "a", Password: "secret1", Role: domain.RoleStudent, StudentID: "12345"}},
		{"non numeric student id", RegisterInput{Name: "a", Password: "secret1", Role: domain.RoleStudent, StudentID: "90101910a"}},
		{"staff without email", RegisterInput{Name: "a", Password: "secret1", Role: domain.RoleLecturer}},
		{"external email", RegisterInput{Name: "a", Password: "secret1", Role: domain.RoleLecturer, Email: "a@gmail.com"}},
		{"bare domain email", RegisterInput{Name: "a", Password: "secret1", Role: domain.RoleLecturer, Email: "@luct.co.ls"}},
		{"short password", RegisterInput{Name: "a", Password: "12345", Role: domain.RoleStudent, StudentID: "901019102"}},
		{"missing name", RegisterInput{Password: "secret1", Role: domain.RoleStudent, StudentID: "901019102"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.input)
			if status := statusOf(t, err); status != 400 {
				t.Fatalf("expected 400, got %d", status)
			}
		})
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:      "Lineo",
		StudentID: "901019102",
		Password:  "secret1",
		Role:      domain.RoleStudent,
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if user.Email != nil {
		t.Fatalf("student accounts must not carry an email")
	}
	if user.StudentID == nil || *user.StudentID != "901019102" {
		t.Fatalf("student id lost")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Lineo", StudentID: "901019102", Password: "secret1", Role: domain.RoleStudent}); err != nil {
		t.Fatalf("first register error: %v", err)
	}
	_, err := svc.Register(ctx, RegisterInput{Name: "Other", StudentID: "901019102", Password: "secret1", Role: domain.RoleStudent})
	if status := statusOf(t, err); status != 400 {
		t.Fatalf("duplicate student id: expected 400, got %d", status)
	}

	if _, err := svc.Register(ctx, RegisterInput{Name: "Thabo", Email: "thabo@luct.co.ls", Password: "secret1", Role: domain.RoleLecturer}); err != nil {
		t.Fatalf("staff register error: %v", err)
	}
	_, err = svc.Register(ctx, RegisterInput{Name: "Again", Email: "thabo@luct.co.ls", Password: "secret1", Role: domain.RolePrincipalLecturer})
	if status := statusOf(t, err); status != 400 {
		t.Fatalf("duplicate email: expected 400, got %d", status)
	}
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Thabo", Email: "thabo@luct.co.ls", Password: "secret1", Role: domain.RolePrincipalLecturer}); err != nil {
		t.Fatalf("register error: %v", err)
	}

	user, token, expiresAt, err := svc.Login(ctx, "thabo@luct.co.ls", "secret1", domain.RolePrincipalLecturer)
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if expiresAt.IsZero() {
		t.Fatalf("expected expiry")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.RolePrincipalLecturer || claims.Name != "Thabo" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "Lineo", StudentID: "901019102", Password: "secret1", Role: domain.RoleStudent}); err != nil {
		t.Fatalf("register error: %v", err)
	}

	_, _, _, unknownErr := svc.Login(ctx, "999999999", "secret1", domain.RoleStudent)
	_, _, _, wrongPassErr := svc.Login(ctx, "901019102", "not-it", domain.RoleStudent)
	_, _, _, wrongRoleErr := svc.Login(ctx, "901019102", "secret1", domain.RoleLecturer)

	for _, err := range []error{unknownErr, wrongPassErr, wrongRoleErr} {
		if status := statusOf(t, err); status != 401 {
			t.Fatalf("expected 401, got %d", status)
		}
	}
	if unknownErr.Error() != wrongPassErr.Error() || unknownErr.Error() != wrongRoleErr.Error() {
		t.Fatalf("login failures must be indistinguishable")
	}
}
