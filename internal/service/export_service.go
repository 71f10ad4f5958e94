package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/reporting-service/internal/config"
	"github.com/spec-kit/reporting-service/internal/repository"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

// ContentTypeXLSX is the response content type for workbook downloads.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportService assembles xlsx workbooks from joined reporting data.
type ExportService struct {
	reports     repository.ReportRepository
	courses     repository.CourseRepository
	monitoring  repository.MonitoringRepository
	ratings     repository.RatingRepository
	stats       repository.StatsRepository
	maxColWidth float64
}

// NewExportService builds the service.
func NewExportService(
	cfg config.ExportConfig,
	reports repository.ReportRepository,
	courses repository.CourseRepository,
	monitoring repository.MonitoringRepository,
	ratings repository.RatingRepository,
	stats repository.StatsRepository,
) *ExportService {
	maxWidth := cfg.MaxColumnWidth
	if maxWidth <= 0 {
		maxWidth = 50
	}
	return &ExportService{
		reports:     reports,
		courses:     courses,
		monitoring:  monitoring,
		ratings:     ratings,
		stats:       stats,
		maxColWidth: maxWidth,
	}
}

// PRLReports renders the full PRL review join as a single-sheet workbook.
func (s *ExportService) PRLReports(ctx context.Context) (*excelize.File, string, error) {
	reports, err := s.reports.ListPRLReports(ctx)
	if err != nil {
		return nil, "", apperrors.MapError(err)
	}

	headers := []string{
		"Report ID", "PRL Name", "Lecturer Name", "Course Name", "Course Code",
		"Faculty Name", "Week of Reporting", "Lecture Date", "Topic Taught",
		"Learning Outcomes", "Summary", "Recommendations", "Lecturer Recommendations",
		"Rating", "Actual Present", "Created Date",
	}
	rows := make([][]any, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []any{
			r.ID, r.PRLName, deref(r.LecturerName), deref(r.CourseName), deref(r.CourseCode),
			deref(r.FacultyName), deref(r.WeekOfReporting), deref(r.DateOfLecture), deref(r.TopicTaught),
			deref(r.LearningOutcomes), r.Summary, r.Recommendations, deref(r.LecturerRecommendations),
			derefInt(r.Rating), derefInt(r.ActualPresent), formatTime(r.CreatedAt),
		})
	}

	f := excelize.NewFile()
	if err := s.writeSheet(f, "PRL Reports", headers, rows, true); err != nil {
		return nil, "", apperrors.MapError(err)
	}
	return f, exportFilename("prl-reports"), nil
}

// ProgramReports renders program leader assessments, the course catalog,
// and a count summary as a three-sheet workbook.
func (s *ExportService) ProgramReports(ctx context.Context) (*excelize.File, string, error) {
	plReports, err := s.reports.ListPLReports(ctx)
	if err != nil {
		return nil, "", apperrors.MapError(err)
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, "", apperrors.MapError(err)
	}
	summary, err := s.stats.SummaryStats(ctx)
	if err != nil {
		return nil, "", apperrors.MapError(err)
	}

	f := excelize.NewFile()
	first := true

	if len(plReports) > 0 {
		headers := []string{
			"Report ID", "Program Leader Name", "PRL Name", "Lecturer Name", "Course Name",
			"Program Summary", "Overall Assessment", "Rating", "Created Date",
		}
		rows := make([][]any, 0, len(plReports))
		for _, r := range plReports {
			rows = append(rows, []any{
				r.ID, r.PLName, deref(r.PRLName), deref(r.LecturerName), deref(r.CourseName),
				r.ProgramSummary, r.OverallAssess, derefInt(r.Rating), formatTime(r.CreatedAt),
			})
		}
		if err := s.writeSheet(f, "Program Leader Reports", headers, rows, first); err != nil {
			return nil, "", apperrors.MapError(err)
		}
		first = false
	}

	courseHeaders := []string{
		"Course ID", "Faculty Name", "Class Name", "Course Name", "Course Code",
		"Venue", "Scheduled Time", "Total Registered", "Created Date",
	}
	courseRows := make([][]any, 0, len(courses))
	for _, c := range courses {
		courseRows = append(courseRows, []any{
			c.ID, c.FacultyName, c.ClassName, c.CourseName, c.CourseCode,
			c.Venue, c.ScheduledTime, c.TotalRegistered, formatTime(c.CreatedAt),
		})
	}
	if err := s.writeSheet(f, "Courses", courseHeaders, courseRows, first); err != nil {
		return nil, "", apperrors.MapError(err)
	}

	summaryRows := [][]any{
		{"Total Courses", summary.Courses},
		{"Total Lecturer Reports", summary.LecturerReports},
		{"Total PRL Reports", summary.PRLReports},
		{"Total PL Reports", summary.PLReports},
	}
	if err := s.writeSheet(f, "Summary", []string{"Category", "Count"}, summaryRows, false); err != nil {
		return nil, "", apperrors.MapError(err)
	}

	return f, exportFilename("program-reports"), nil
}

// AllData renders one sheet per reporting table.
func (s *ExportService) AllData(ctx context.Context) (*excelize.File, string, error) {
	f := excelize.NewFile()
	first := true

	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, "", apperrors.MapError(err)
	}
	courseRows := make([][]any, 0, len(courses))
	for _, c := range courses {
		courseRows = append(courseRows, []any{
			c.ID, c.FacultyName, c.ClassName, c.CourseName, c.CourseCode,
			c.Venue, c.ScheduledTime, c.TotalRegistered, formatTime(c.CreatedAt),
		})
	}
	if err := s.writeSheet(f, "Courses", []string{
		"ID", "Faculty Name", "Class Name", "Course Name", "Course Code",
		"Venue", "Scheduled Time", "Total Registered", "Created Date",
	}, courseRows, first); err != nil {
		return nil, "", apperrors.MapError(err)
	}
	first = false

	lecturerReports, err := s.reports.ListLecturerReports(ctx)
	if err != nil {
		return nil, "", apperrors.MapError(err)
	}
	reportRows := make([][]any, 0, len(lecturerReports))
	for _, r := range lecturerReports {
		reportRows = append(reportRows, []any{
			r.ID, deref(r.CourseName), deref(r.CourseCode), r.LecturerName, r.WeekOfReporting,
			r.DateOfLecture, r.TopicTaught, r.LearningOutcomes, r.LecturerRecommendations,
			r.ActualPresent, formatTime(r.CreatedAt),
		})
	}
	if err := s.writeSheet(f, "Lecturer Reports", []string{
		"ID", "Course Name", "Course Code", "Lecturer Name", "Week of Reporting",
		"Lecture Date", "Topic Taught", "Learning Outcomes", "Recommendations",
		"Actual Present", "Created Date",
	}, reportRows, first); err != nil {
		return nil, "", apperrors.MapError(err)
	}

	prlReports, err := s.reports.ListPRLReports(ctx)
	if err != nil {
		return nil, "", apperrors.MapError(err)
	}
	prlRows := make([][]any, 0, len(prlReports))
	for _, r := range prlReports {
		prlRows = append(prlRows, []any{
			r.ID, r.PRLName, deref(r.LecturerName), deref(r.CourseName),
			r.Summary, r.Recommendations, derefInt(r.Rating), formatTime(r.CreatedAt),
		})
	}
	if err := s.writeSheet(f, "PRL Reports", []string{
		"ID", "PRL Name", "Lecturer Name", "Course Name",
		"Summary", "Recommendations", "Rating", "Created Date",
	}, prlRows, false); err != nil {
		return nil, "", apperrors.MapError(err)
	}

	studentMonitoring, err := s.monitoring.ListStudentMonitoring(ctx)
	if err != nil {
		return nil, "", apperrors.MapError(err)
	}
	monitoringRows := make([][]any, 0, len(studentMonitoring))
	for _, m := range studentMonitoring {
		monitoringRows = append(monitoringRows, []any{
			m.ID, deref(m.StudentName), deref(m.CourseName), m.AttendanceStatus,
			m.ParticipationNotes, m.IssuesObserved, formatTime(m.CreatedAt),
		})
	}
	if err := s.writeSheet(f, "Student Monitoring", []string{
		"ID", "Student Name", "Course Name", "Attendance Status",
		"Participation Notes", "Issues Observed", "Created Date",
	}, monitoringRows, false); err != nil {
		return nil, "", apperrors.MapError(err)
	}

	studentRatings, err := s.ratings.ListStudentRatings(ctx)
	if err != nil {
		return nil, "", apperrors.MapError(err)
	}
	ratingRows := make([][]any, 0, len(studentRatings))
	for _, r := range studentRatings {
		ratingRows = append(ratingRows, []any{
			r.ID, deref(r.StudentName), deref(r.CourseName), r.LecturerRating,
			r.CourseRating, r.Comments, formatTime(r.CreatedAt),
		})
	}
	if err := s.writeSheet(f, "Student Ratings", []string{
		"ID", "Student Name", "Course Name", "Lecturer Rating",
		"Course Rating", "Comments", "Created Date",
	}, ratingRows, false); err != nil {
		return nil, "", apperrors.MapError(err)
	}

	plReports, err := s.reports.ListPLReports(ctx)
	if err != nil {
		return nil, "", apperrors.MapError(err)
	}
	plRows := make([][]any, 0, len(plReports))
	for _, r := range plReports {
		plRows = append(plRows, []any{
			r.ID, r.PLName, deref(r.PRLName), deref(r.CourseName),
			r.ProgramSummary, r.OverallAssess, derefInt(r.Rating), formatTime(r.CreatedAt),
		})
	}
	if err := s.writeSheet(f, "PL Reports", []string{
		"ID", "PL Name", "PRL Name", "Course Name",
		"Program Summary", "Overall Assessment", "Rating", "Created Date",
	}, plRows, false); err != nil {
		return nil, "", apperrors.MapError(err)
	}

	return f, exportFilename("all-data"), nil
}

// Summary renders a single metric/value sheet with counts and averages.
func (s *ExportService) Summary(ctx context.Context) (*excelize.File, string, error) {
	summary, err := s.stats.SummaryStats(ctx)
	if err != nil {
		return nil, "", apperrors.MapError(err)
	}

	rows := [][]any{
		{"TOTAL COURSES", summary.Courses},
		{"TOTAL LECTURER REPORTS", summary.LecturerReports},
		{"TOTAL PRL REPORTS", summary.PRLReports},
		{"TOTAL PL REPORTS", summary.PLReports},
		{"TOTAL STUDENT MONITORING RECORDS", summary.StudentMonitoringRecords},
		{"TOTAL STUDENT RATINGS", summary.StudentRatings},
		{"AVERAGE PRL RATING", round2(summary.AvgPRLRating)},
		{"AVERAGE PL RATING", round2(summary.AvgPLRating)},
		{"AVERAGE STUDENT LECTURER RATING", round2(summary.AvgStudentLecturerRating)},
		{"AVERAGE STUDENT COURSE RATING", round2(summary.AvgStudentCourseRating)},
		{"REPORT GENERATED ON", time.Now().Format(time.RFC1123)},
	}

	f := excelize.NewFile()
	if err := s.writeSheet(f, "Summary Report", []string{"METRIC", "VALUE"}, rows, true); err != nil {
		return nil, "", apperrors.MapError(err)
	}
	return f, exportFilename("summary"), nil
}

// writeSheet fills one worksheet: bold shaded header row, data rows, and
// column widths fitted to content up to the configured cap. rename controls
// whether the workbook's default sheet is renamed instead of adding one.
func (s *ExportService) writeSheet(f *excelize.File, name string, headers []string, rows [][]any, rename bool) error {
	if rename {
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return err
		}
	} else {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	widths := make([]float64, len(headers))
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, header); err != nil {
			return err
		}
		widths[col] = float64(len(header))
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, value); err != nil {
				return err
			}
			if col < len(widths) {
				if w := float64(len(fmt.Sprint(value))); w > widths[col] {
					widths[col] = w
				}
			}
		}
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6FA"}},
	})
	if err != nil {
		return err
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", lastHeaderCell, styleID); err != nil {
		return err
	}

	for col, width := range widths {
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		fitted := math.Min(width+2, s.maxColWidth)
		if err := f.SetColWidth(name, colName, colName, fitted); err != nil {
			return err
		}
	}
	return nil
}

func exportFilename(prefix string) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, time.Now().Format("2006-01-02"))
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
