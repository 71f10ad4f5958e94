package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/reporting-service/internal/repository"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

const dashboardStatsKey = "dashboard:stats"

// StatsService serves dashboard and analytics aggregates, caching the
// dashboard counters in Redis for a short window. Cache failures fall back
// to the database.
type StatsService struct {
	stats    repository.StatsRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewStatsService builds the service. cache may be nil.
func NewStatsService(stats repository.StatsRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *StatsService {
	return &StatsService{stats: stats, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// DashboardStats returns system-wide record counts.
func (s *StatsService) DashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	if s.cache != nil && s.cacheTTL > 0 {
		if cached, err := s.cache.Get(ctx, dashboardStatsKey).Bytes(); err == nil {
			var stats repository.DashboardStats
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.stats.DashboardStats(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if encoded, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, dashboardStatsKey, encoded, s.cacheTTL).Err(); err != nil {
				s.logger.Debug("dashboard stats cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// ReportsByFaculty returns report counts grouped by faculty.
func (s *StatsService) ReportsByFaculty(ctx context.Context) ([]repository.FacultyReportCount, error) {
	counts, err := s.stats.ReportsByFaculty(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return counts, nil
}

// SummaryStats returns the extended counters used by the summary export.
func (s *StatsService) SummaryStats(ctx context.Context) (*repository.SummaryStats, error) {
	stats, err := s.stats.SummaryStats(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return stats, nil
}
