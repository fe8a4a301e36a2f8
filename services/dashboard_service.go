package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sahilchouksey/edumanage-api/model"
	"github.com/sahilchouksey/edumanage-api/utils/cache"
	"gorm.io/gorm"
)

// adminDashboardCacheKey caches the admin rollup for a short window.
const (
	adminDashboardCacheKey = "dashboard:admin"
	adminDashboardCacheTTL = 30 * time.Second
)

// DashboardService assembles the student and admin dashboard aggregates.
// Each aggregate is a fan-out of independent reads with no transaction
// around them: under concurrent writes the blocks may mix before/after
// states, which is accepted behavior.
type DashboardService struct {
	db    *gorm.DB
	cache *cache.RedisCache // nil when Redis is unavailable
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB, redisCache *cache.RedisCache) *DashboardService {
	return &DashboardService{
		db:    db,
		cache: redisCache,
	}
}

// StudentDashboard is the aggregate a student's home screen renders.
type StudentDashboard struct {
	Attendance     AttendanceStatistics `json:"attendance"`
	Fees           StudentFeesBlock     `json:"fees"`
	RecentMarks    []model.Marks        `json:"recentMarks"`
	UpcomingEvents []model.Event        `json:"upcomingEvents"`
}

// StudentFeesBlock carries the fee totals plus an overall status flag.
type StudentFeesBlock struct {
	TotalFees   float64 `json:"totalFees"`
	PaidFees    float64 `json:"paidFees"`
	PendingFees float64 `json:"pendingFees"`
	Status      string  `json:"status"`
}

// GetStudentDashboard joins one student's attendance, fees, recent marks and
// upcoming events.
func (s *DashboardService) GetStudentDashboard(ctx context.Context, studentID uint) (*StudentDashboard, error) {
	out := &StudentDashboard{}

	var attendance []model.Attendance
	if err := s.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&attendance).Error; err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	out.Attendance = AttendanceSummary(attendance)

	var fees []model.Fees
	if err := s.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&fees).Error; err != nil {
		return nil, fmt.Errorf("failed to load fees: %w", err)
	}
	totals := FeesSummary(fees)
	status := model.FeeStatusPending
	if totals.PendingAmount == 0 {
		status = model.FeeStatusPaid
	}
	out.Fees = StudentFeesBlock{
		TotalFees:   totals.TotalAmount,
		PaidFees:    totals.PaidAmount,
		PendingFees: totals.PendingAmount,
		Status:      status,
	}

	if err := s.db.WithContext(ctx).
		Preload("Exam").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Limit(5).
		Find(&out.RecentMarks).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent marks: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Where("event_date >= ? AND is_active = ?", time.Now(), true).
		Order("event_date ASC").
		Limit(5).
		Find(&out.UpcomingEvents).Error; err != nil {
		return nil, fmt.Errorf("failed to load upcoming events: %w", err)
	}

	return out, nil
}

// AdminDashboard is the aggregate the admin home screen renders.
type AdminDashboard struct {
	Students        int64                `json:"students"`
	Teachers        int64                `json:"teachers"`
	FeesCollection  float64              `json:"feesCollection"`
	PendingFees     float64              `json:"pendingFees"`
	TodayAttendance TodayAttendanceBlock `json:"todayAttendance"`
	RecentEvents    []model.Event        `json:"recentEvents"`
}

// TodayAttendanceBlock is today's attendance breakdown.
type TodayAttendanceBlock struct {
	Present int64 `json:"present"`
	Total   int64 `json:"total"`
}

// GetAdminDashboard assembles role counts, fee collection totals, today's
// attendance and recent events. The result is cached briefly when Redis is
// available; the cache is a freshness tradeoff, not a correctness one.
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	if s.cache != nil {
		var cached AdminDashboard
		if err := s.cache.GetJSON(ctx, adminDashboardCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	out := &AdminDashboard{}

	if err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ?", model.RoleStudent).
		Count(&out.Students).Error; err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ?", model.RoleTeacher).
		Count(&out.Teachers).Error; err != nil {
		return nil, fmt.Errorf("failed to count teachers: %w", err)
	}

	// Fee totals reduce over every record, matching the report the front
	// office reconciles against.
	var feeTotals struct {
		Collected float64
		Pending   float64
	}
	if err := s.db.WithContext(ctx).Model(&model.Fees{}).
		Select("COALESCE(SUM(paid_amount), 0) AS collected, COALESCE(SUM(amount - paid_amount), 0) AS pending").
		Scan(&feeTotals).Error; err != nil {
		return nil, fmt.Errorf("failed to sum fees: %w", err)
	}
	out.FeesCollection = feeTotals.Collected
	out.PendingFees = feeTotals.Pending

	today := time.Now()
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	if err := s.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("date >= ?", midnight).
		Count(&out.TodayAttendance.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's attendance: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&model.Attendance{}).
		Where("date >= ? AND status = ?", midnight, model.AttendancePresent).
		Count(&out.TodayAttendance.Present).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's present: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("event_date DESC").
		Limit(5).
		Find(&out.RecentEvents).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent events: %w", err)
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, adminDashboardCacheKey, out, adminDashboardCacheTTL)
	}

	return out, nil
}
