package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/reporting-service/internal/config"
	"github.com/spec-kit/reporting-service/internal/domain"
	"github.com/spec-kit/reporting-service/internal/repository"
)

type fakeReportRepo struct {
	lecturerReports []domain.LecturerReport
	prlReports      []domain.PRLReport
	plReports       []domain.PLReport
}

func (f *fakeReportRepo) CreateLecturerReport(_ context.Context, r *domain.LecturerReport) error {
	r.ID = int64(len(f.lecturerReports) + 1)
	f.lecturerReports = append(f.lecturerReports, *r)
	return nil
}

func (f *fakeReportRepo) GetLecturerReport(_ context.Context, id int64) (*domain.LecturerReport, error) {
	for i := range f.lecturerReports {
		if f.lecturerReports[i].ID == id {
			return &f.lecturerReports[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeReportRepo) ListLecturerReports(_ context.Context) ([]domain.LecturerReport, error) {
	return f.lecturerReports, nil
}

func (f *fakeReportRepo) CreatePRLReport(_ context.Context, r *domain.PRLReport) error {
	r.ID = int64(len(f.prlReports) + 1)
	f.prlReports = append(f.prlReports, *r)
	return nil
}

func (f *fakeReportRepo) GetPRLReport(_ context.Context, id int64) (*domain.PRLReport, error) {
	for i := range f.prlReports {
		if f.prlReports[i].ID == id {
			return &f.prlReports[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeReportRepo) ListPRLReports(_ context.Context) ([]domain.PRLReport, error) {
	return f.prlReports, nil
}

func (f *fakeReportRepo) CreatePLReport(_ context.Context, r *domain.PLReport) error {
	r.ID = int64(len(f.plReports) + 1)
	f.plReports = append(f.plReports, *r)
	return nil
}

func (f *fakeReportRepo) ListPLReports(_ context.Context) ([]domain.PLReport, error) {
	return f.plReports, nil
}

type fakeCourseRepo struct {
	courses []domain.Course
}

func (f *fakeCourseRepo) Create(_ context.Context, c *domain.Course) error {
	c.ID = int64(len(f.courses) + 1)
	f.courses = append(f.courses, *c)
	return nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*domain.Course, error) {
	for i := range f.courses {
		if f.courses[i].ID == id {
			return &f.courses[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCourseRepo) List(_ context.Context) ([]domain.Course, error) {
	return f.courses, nil
}

func (f *fakeCourseRepo) CreateProgramCourse(_ context.Context, pc *domain.ProgramCourse) error {
	pc.ID = 1
	return nil
}

type fakeMonitoringRepo struct {
	student []domain.StudentMonitoring
}

func (f *fakeMonitoringRepo) CreateLecturerMonitoring(_ context.Context, m *domain.LecturerMonitoring) error {
	m.ID = 1
	return nil
}

func (f *fakeMonitoringRepo) ListLecturerMonitoring(_ context.Context) ([]domain.LecturerMonitoring, error) {
	return nil, nil
}

func (f *fakeMonitoringRepo) CreateStudentMonitoring(_ context.Context, m *domain.StudentMonitoring) error {
	m.ID = int64(len(f.student) + 1)
	f.student = append(f.student, *m)
	return nil
}

func (f *fakeMonitoringRepo) ListStudentMonitoring(_ context.Context) ([]domain.StudentMonitoring, error) {
	return f.student, nil
}

func (f *fakeMonitoringRepo) CreateProgramMonitoring(_ context.Context, m *domain.ProgramMonitoring) error {
	m.ID = 1
	return nil
}

func (f *fakeMonitoringRepo) CreateClassOversight(_ context.Context, o *domain.ClassOversight) error {
	o.ID = 1
	return nil
}

type fakeRatingRepo struct {
	student []domain.StudentRating
}

func (f *fakeRatingRepo) CreateLecturerRating(_ context.Context, r *domain.LecturerRating) error {
	r.ID = 1
	return nil
}

func (f *fakeRatingRepo) ListLecturerRatings(_ context.Context) ([]domain.LecturerRating, error) {
	return nil, nil
}

func (f *fakeRatingRepo) CreateStudentRating(_ context.Context, r *domain.StudentRating) error {
	r.ID = int64(len(f.student) + 1)
	f.student = append(f.student, *r)
	return nil
}

func (f *fakeRatingRepo) ListStudentRatings(_ context.Context) ([]domain.StudentRating, error) {
	return f.student, nil
}

func (f *fakeRatingRepo) CreateProgramRating(_ context.Context, r *domain.ProgramRating) error {
	r.ID = 1
	return nil
}

type fakeStatsRepo struct {
	summary repository.SummaryStats
}

func (f *fakeStatsRepo) DashboardStats(_ context.Context) (*repository.DashboardStats, error) {
	return &repository.DashboardStats{}, nil
}

func (f *fakeStatsRepo) SummaryStats(_ context.Context) (*repository.SummaryStats, error) {
	summary := f.summary
	return &summary, nil
}

func (f *fakeStatsRepo) ReportsByFaculty(_ context.Context) ([]repository.FacultyReportCount, error) {
	return nil, nil
}

func newTestExportService() *ExportService {
	lecturerName := "Thabo"
	courseName := "Web Application Development"
	courseCode := "DIWA2110"
	facultyName := "FICT"
	className := "BSCSM1"
	week := "Week 6"
	lectureDate := "2025-03-10"
	topic := "Express routing"
	outcomes := "Build REST endpoints"
	lecturerRecs := "More lab time"
	actualPresent := 42
	rating := 4

	reports := &fakeReportRepo{
		prlReports: []domain.PRLReport{{
			ID:                      1,
			PRLName:                 "Mpho",
			Summary:                 "Consistent delivery",
			Recommendations:         "Add tutorial slot",
			Rating:                  &rating,
			CreatedAt:               time.Now(),
			LecturerName:            &lecturerName,
			WeekOfReporting:         &week,
			DateOfLecture:           &lectureDate,
			TopicTaught:             &topic,
			LearningOutcomes:        &outcomes,
			LecturerRecommendations: &lecturerRecs,
			ActualPresent:           &actualPresent,
			CourseName:              &courseName,
			CourseCode:              &courseCode,
			FacultyName:             &facultyName,
			ClassName:               &className,
		}},
		plReports: []domain.PLReport{{
			ID:             1,
			PLName:         "Keketso",
			ProgramSummary: "On track",
			OverallAssess:  "Good",
			CreatedAt:      time.Now(),
		}},
	}
	courses := &fakeCourseRepo{courses: []domain.Course{{
		ID:          1,
		FacultyName: "FICT",
		ClassName:   "BSCSM1",
		CourseName:  courseName,
		CourseCode:  "DIWA2110",
		CreatedAt:   time.Now(),
	}}}
	stats := &fakeStatsRepo{summary: repository.SummaryStats{
		Courses:      1,
		PRLReports:   1,
		PLReports:    1,
		AvgPRLRating: 4,
	}}

	return NewExportService(config.ExportConfig{MaxColumnWidth: 50},
		reports, courses, &fakeMonitoringRepo{}, &fakeRatingRepo{}, stats)
}

func TestExportPRLReportsWorkbook(t *testing.T) {
	svc := newTestExportService()

	f, filename, err := svc.PRLReports(context.Background())
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	defer f.Close()

	if !strings.HasPrefix(filename, "prl-reports-") || !strings.HasSuffix(filename, ".xlsx") {
		t.Fatalf("unexpected filename: %s", filename)
	}
	if got := f.GetSheetName(0); got != "PRL Reports" {
		t.Fatalf("unexpected sheet name: %s", got)
	}

	rows, err := f.GetRows("PRL Reports")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one data row, got %d rows", len(rows))
	}
	wantHeaders := []string{
		"Report ID", "PRL Name", "Lecturer Name", "Course Name", "Course Code",
		"Faculty Name", "Week of Reporting", "Lecture Date", "Topic Taught",
		"Learning Outcomes", "Summary", "Recommendations", "Lecturer Recommendations",
		"Rating", "Actual Present", "Created Date",
	}
	if len(rows[0]) != len(wantHeaders) {
		t.Fatalf("expected %d columns, got %d: %v", len(wantHeaders), len(rows[0]), rows[0])
	}
	for i, h := range wantHeaders {
		if rows[0][i] != h {
			t.Fatalf("header %d: expected %q, got %q", i, h, rows[0][i])
		}
	}
	data := rows[1]
	if data[1] != "Mpho" || data[2] != "Thabo" || data[4] != "DIWA2110" ||
		data[7] != "2025-03-10" || data[12] != "More lab time" || data[14] != "42" {
		t.Fatalf("unexpected data row: %v", data)
	}
}

func TestExportProgramReportsSheets(t *testing.T) {
	svc := newTestExportService()

	f, _, err := svc.ProgramReports(context.Background())
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	defer f.Close()

	want := []string{"Program Leader Reports", "Courses", "Summary"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("expected %d sheets, got %v", len(want), got)
	}
	for i, name := range want {
		if got[i] != name {
			t.Fatalf("sheet %d: expected %q, got %q", i, name, got[i])
		}
	}
}

func TestExportAllDataSheets(t *testing.T) {
	svc := newTestExportService()

	f, _, err := svc.AllData(context.Background())
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	defer f.Close()

	want := []string{
		"Courses", "Lecturer Reports", "PRL Reports",
		"Student Monitoring", "Student Ratings", "PL Reports",
	}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("expected %d sheets, got %v", len(want), got)
	}
}

func TestExportSummaryValues(t *testing.T) {
	svc := newTestExportService()

	f, _, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	defer f.Close()

	metric, err := f.GetCellValue("Summary Report", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if metric != "TOTAL COURSES" {
		t.Fatalf("unexpected first metric: %s", metric)
	}
	value, err := f.GetCellValue("Summary Report", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if value != "1" {
		t.Fatalf("unexpected course count: %s", value)
	}
}
