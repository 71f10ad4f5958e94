package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reporting-service/internal/api/http/handlers"
	"github.com/spec-kit/reporting-service/internal/auth"
	"github.com/spec-kit/reporting-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Courses        *handlers.CoursesHandler
	Reports        *handlers.ReportsHandler
	Monitoring     *handlers.MonitoringHandler
	Ratings        *handlers.RatingsHandler
	Export         *handlers.ExportHandler
	Dashboard      *handlers.DashboardHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/register", cfg.Auth.Register)
	api.Post("/login", cfg.Auth.Login)

	api.Post("/courses", cfg.Courses.Create)
	api.Get("/courses", cfg.Courses.List)
	api.Get("/courses/:id", cfg.Courses.Get)

	api.Post("/reports", cfg.Reports.CreateLecturerReport)
	api.Get("/reports", cfg.Reports.ListLecturerReports)
	api.Get("/reports/:id", cfg.Reports.GetLecturerReport)

	api.Post("/prl_reports", cfg.Reports.CreatePRLReport)
	api.Get("/prl_reports", cfg.Reports.ListPRLReports)
	api.Get("/prl_reports/:id", cfg.Reports.GetPRLReport)

	api.Post("/lecturer_monitoring", cfg.Monitoring.CreateLecturerMonitoring)
	api.Get("/lecturer_monitoring", cfg.Monitoring.ListLecturerMonitoring)
	api.Post("/student_monitoring", cfg.Monitoring.CreateStudentMonitoring)
	api.Get("/student_monitoring", cfg.Monitoring.ListStudentMonitoring)

	api.Post("/lecturer_rating", cfg.Ratings.CreateLecturerRating)
	api.Get("/lecturer_rating", cfg.Ratings.ListLecturerRatings)
	api.Post("/student_ratings", cfg.Ratings.CreateStudentRating)
	api.Get("/student_ratings", cfg.Ratings.ListStudentRatings)

	api.Get("/dashboard/stats", cfg.Dashboard.Stats)
	api.Get("/analytics/reports-by-faculty", cfg.Dashboard.ReportsByFaculty)
	api.Get("/analytics/summary", cfg.Dashboard.Summary)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/logout", cfg.Auth.Logout)
	protected.Get("/user/profile", cfg.Auth.Profile)
	protected.Get("/metrics", cfg.Dashboard.Metrics)

	plOnly := protected.Group("", auth.RequireRole(domain.RoleProgramLeader))
	plOnly.Post("/pl_reports", cfg.Reports.CreatePLReport)
	plOnly.Get("/pl_reports", cfg.Reports.ListPLReports)
	plOnly.Post("/pl_courses", cfg.Courses.CreateProgramCourse)
	plOnly.Post("/pl_monitoring", cfg.Monitoring.CreateProgramMonitoring)
	plOnly.Post("/pl_classes", cfg.Monitoring.CreateClassOversight)
	plOnly.Post("/pl_rating", cfg.Ratings.CreateProgramRating)

	staff := protected.Group("", auth.RequireRole(
		domain.RoleLecturer,
		domain.RolePrincipalLecturer,
		domain.RoleProgramLeader,
	))
	staff.Get("/export/prl-reports", cfg.Export.PRLReports)
	staff.Get("/export/program-reports", cfg.Export.ProgramReports)
	staff.Get("/export/all-data", cfg.Export.AllData)
	staff.Get("/export/summary", cfg.Export.Summary)

	admin := protected.Group("", auth.RequireRole(domain.RoleProgramLeader))
	admin.Get("/users", cfg.Users.List)
	admin.Get("/users/:id", cfg.Users.Get)
	admin.Put("/users/:id/role", cfg.Users.UpdateRole)
}
