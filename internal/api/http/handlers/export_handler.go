package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/reporting-service/internal/service"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

// ExportHandler serves workbook downloads.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs handler.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{service: exportService}
}

// PRLReports GET /api/export/prl-reports.
func (h *ExportHandler) PRLReports(c *fiber.Ctx) error {
	return h.stream(c, h.service.PRLReports)
}

// ProgramReports GET /api/export/program-reports.
func (h *ExportHandler) ProgramReports(c *fiber.Ctx) error {
	return h.stream(c, h.service.ProgramReports)
}

// AllData GET /api/export/all-data.
func (h *ExportHandler) AllData(c *fiber.Ctx) error {
	return h.stream(c, h.service.AllData)
}

// Summary GET /api/export/summary.
func (h *ExportHandler) Summary(c *fiber.Ctx) error {
	return h.stream(c, h.service.Summary)
}

func (h *ExportHandler) stream(c *fiber.Ctx, build func(context.Context) (*excelize.File, string, error)) error {
	f, filename, err := build(c.Context())
	if err != nil {
		return err
	}
	defer f.Close()

	c.Set(fiber.HeaderContentType, service.ContentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Response().BodyWriter()); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}
