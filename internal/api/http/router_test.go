package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/reporting-service/internal/api/http/handlers"
	"github.com/spec-kit/reporting-service/internal/auth"
	"github.com/spec-kit/reporting-service/internal/config"
	"github.com/spec-kit/reporting-service/internal/domain"
	"github.com/spec-kit/reporting-service/internal/observability"
	"github.com/spec-kit/reporting-service/internal/repository"
	"github.com/spec-kit/reporting-service/internal/service"
)

type memoryUserRepo struct {
	nextID int64
	users  []*domain.User
}

func (m *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, user)
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memoryUserRepo) GetByStudentID(_ context.Context, studentID string) (*domain.User, error) {
	for _, u := range m.users {
		if u.StudentID != nil && *u.StudentID == studentID {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memoryUserRepo) GetByIdentifierAndRole(_ context.Context, identifier string, role domain.Role) (*domain.User, error) {
	for _, u := range m.users {
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

func (m *memoryUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memoryUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	for _, u := range m.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return pgx.ErrNoRows
}

var _ repository.UserRepository = (*memoryUserRepo)(nil)

func newTestApp(t *testing.T) (*fiber.App, *service.AuthService) {
	t.Helper()

	repo := &memoryUserRepo{}
	redisSrv := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: redisSrv.Addr()})
	t.Cleanup(func() { redisClient.Close() })
	revoked := auth.NewRevocationList(redisClient)
	authService := service.NewAuthService(config.AuthConfig{
		JWTSecret:           "test-secret",
		AccessTokenTTLHours: 24,
		BcryptCost:          4,
	}, repo, revoked, nil)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Auth:           handlers.NewAuthHandler(authService),
		Courses:        handlers.NewCoursesHandler(service.NewCourseService(nil)),
		Reports:        handlers.NewReportsHandler(service.NewReportService(nil, nil)),
		Monitoring:     handlers.NewMonitoringHandler(service.NewMonitoringService(nil, nil)),
		Ratings:        handlers.NewRatingsHandler(service.NewRatingService(nil, nil)),
		Export:         handlers.NewExportHandler(service.NewExportService(config.ExportConfig{}, nil, nil, nil, nil, nil)),
		Dashboard:      handlers.NewDashboardHandler(service.NewStatsService(nil, nil, 0, zap.NewNop()), observability.NewMetrics()),
		Users:          handlers.NewUsersHandler(service.NewUserService(repo)),
		Health:         handlers.NewHealthHandler("test", "dev", nil, nil),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), revoked),
	})
	return app, authService
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/register", "", map[string]any{
		"name":       "Lineo",
		"student_id": "901019102",
		"password":   "secret1",
		"role":       "student",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/login", "", map[string]any{
		"identifier": "901019102",
		"password":   "secret1",
		"role":       "student",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	login := decodeBody(t, resp)
	token, _ := login["token"].(string)
	if token == "" {
		t.Fatalf("login response missing token")
	}

	resp = doJSON(t, app, http.MethodGet, "/api/user/profile", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", resp.StatusCode)
	}
	profile := decodeBody(t, resp)
	user, _ := profile["user"].(map[string]any)
	if user == nil || user["name"] != "Lineo" || user["role"] != "student" {
		t.Fatalf("unexpected profile: %v", profile)
	}
}

func TestRegisterValidationErrorShape(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/register", "", map[string]any{
		"name":       "Lineo",
		"student_id": "12345",
		"password":   "secret1",
		"role":       "student",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	errObj, _ := body["error"].(map[string]any)
	if errObj == nil || errObj["code"] != "VALIDATION_FAILED" {
		t.Fatalf("unexpected error shape: %v", body)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/user/profile", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/user/profile", "not-a-token", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("garbage token: expected 403, got %d", resp.StatusCode)
	}

	other := auth.NewTokenManager("other-secret", time.Hour)
	forged, _, err := other.GenerateToken(&domain.User{ID: 9, Name: "x", Role: domain.RoleStudent})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	resp = doJSON(t, app, http.MethodGet, "/api/user/profile", forged, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("forged token: expected 403, got %d", resp.StatusCode)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/register", "", map[string]any{
		"name":       "Lineo",
		"student_id": "901019102",
		"password":   "secret1",
		"role":       "student",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/login", "", map[string]any{
		"identifier": "901019102",
		"password":   "secret1",
		"role":       "student",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	token, _ := decodeBody(t, resp)["token"].(string)
	if token == "" {
		t.Fatalf("login response missing token")
	}

	resp = doJSON(t, app, http.MethodGet, "/api/user/profile", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile before logout: expected 200, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/logout", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/user/profile", token, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("profile after logout: expected 403, got %d", resp.StatusCode)
	}
}

func TestRoleRestrictedRoutes(t *testing.T) {
	app, authService := newTestApp(t)

	student, err := authService.Register(context.Background(), service.RegisterInput{
		Name:      "Lineo",
		StudentID: "901019102",
		Password:  "secret1",
		Role:      domain.RoleStudent,
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	studentToken, _, err := authService.TokenManager().GenerateToken(student)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/users", studentToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("student listing users: expected 403, got %d", resp.StatusCode)
	}
	resp = doJSON(t, app, http.MethodGet, "/api/export/summary", studentToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("student export: expected 403, got %d", resp.StatusCode)
	}

	pl, err := authService.Register(context.Background(), service.RegisterInput{
		Name:     "Keketso",
		Email:    "keketso@luct.co.ls",
		Password: "secret1",
		Role:     domain.RoleProgramLeader,
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	plToken, _, err := authService.TokenManager().GenerateToken(pl)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/users", plToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pl listing users: expected 200, got %d", resp.StatusCode)
	}
}
