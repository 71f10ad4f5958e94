package http

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/reporting-service/internal/observability"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

func TestFailedRequestsRecordedWithMappedStatus(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("bad input", nil)
	})

	req, err := http.NewRequest(http.MethodGet, "/boom", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	requests, errors := metrics.Snapshot()
	if requests["/boom|GET|400"] != 1 {
		t.Fatalf("request counter must carry the mapped status, got %v", requests)
	}
	if requests["/boom|GET|200"] != 0 {
		t.Fatalf("failed request counted as 200: %v", requests)
	}
	if errors["/boom|GET|VALIDATION_FAILED"] != 1 {
		t.Fatalf("error counter missing, got %v", errors)
	}
}

func TestPanicsMapToInternalError(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	req, err := http.NewRequest(http.MethodGet, "/panic", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	requests, _ := metrics.Snapshot()
	if requests["/panic|GET|500"] != 1 {
		t.Fatalf("panic must surface as a 500 request, got %v", requests)
	}
}
