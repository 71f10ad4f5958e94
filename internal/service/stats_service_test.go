package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/reporting-service/internal/repository"
)

func TestDashboardStatsWithoutCache(t *testing.T) {
	stats := &fakeStatsRepo{}
	svc := NewStatsService(stats, nil, 30*time.Second, zap.NewNop())

	got, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected stats from the database when no cache is configured")
	}
}

func TestSummaryStatsPassThrough(t *testing.T) {
	stats := &fakeStatsRepo{summary: repository.SummaryStats{Courses: 3, PRLReports: 2}}
	svc := NewStatsService(stats, nil, 0, zap.NewNop())

	got, err := svc.SummaryStats(context.Background())
	if err != nil {
		t.Fatalf("summary error: %v", err)
	}
	if got.Courses != 3 || got.PRLReports != 2 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}
