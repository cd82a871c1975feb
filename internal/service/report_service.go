package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"gymcrm/internal/cache"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

const reportCacheTTL = 5 * time.Minute

// MonthRevenue is one month's collected revenue.
type MonthRevenue struct {
	Month    string          `json:"month"` // yyyy-mm
	Revenue  decimal.Decimal `json:"revenue"`
	Payments int64           `json:"payments"`
}

// ModeShare is one payment mode's slice of total revenue.
type ModeShare struct {
	Mode   model.PaymentMode `json:"mode"`
	Amount decimal.Decimal   `json:"amount"`
	Count  int64             `json:"count"`
}

// PlanRevenue is the active revenue attributed to one membership plan.
type PlanRevenue struct {
	PlanID   string          `json:"plan_id"`
	PlanName string          `json:"plan_name"`
	Members  int             `json:"members"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// DayCount is one day's attendance count.
type DayCount struct {
	Date  string `json:"date"` // yyyy-mm-dd
	Count int64  `json:"count"`
}

// DashboardSummary is the landing page rollup.
type DashboardSummary struct {
	TotalMembers    int64           `json:"total_members"`
	ActiveMembers   int64           `json:"active_members"`
	ExpiredMembers  int64           `json:"expired_members"`
	PendingMembers  int64           `json:"pending_members"`
	TotalLeads      int64           `json:"total_leads"`
	MonthRevenue    decimal.Decimal `json:"month_revenue"`
	MonthPayments   int64           `json:"month_payments"`
	TodayAttendance int64           `json:"today_attendance"`
}

// ReportService computes the reporting page aggregates. Results are cached
// briefly; reports tolerate slightly stale data.
type ReportService interface {
	Dashboard(ctx context.Context) (*DashboardSummary, error)
	MonthlyRevenue(ctx context.Context, months int) ([]MonthRevenue, error)
	PaymentModeDistribution(ctx context.Context) ([]ModeShare, error)
	PlanRevenueBreakdown(ctx context.Context) ([]PlanRevenue, error)
	MemberStatusDistribution(ctx context.Context) (map[model.MembershipStatus]int64, error)
	AttendanceTrend(ctx context.Context, days int) ([]DayCount, error)
	LeadFunnel(ctx context.Context) (map[model.LeadStatus]int64, error)
	LeadSources(ctx context.Context) (map[model.LeadSource]int64, error)
}

type reportService struct {
	paymentRepo    repository.PaymentRepository
	memberRepo     repository.MemberRepository
	membershipRepo repository.MembershipRepository
	attendanceRepo repository.AttendanceRepository
	leadRepo       repository.LeadRepository
	cache          *cache.Client
}

// NewReportService creates a new report service.
func NewReportService(
	paymentRepo repository.PaymentRepository,
	memberRepo repository.MemberRepository,
	membershipRepo repository.MembershipRepository,
	attendanceRepo repository.AttendanceRepository,
	leadRepo repository.LeadRepository,
	cacheClient *cache.Client,
) ReportService {
	return &reportService{
		paymentRepo:    paymentRepo,
		memberRepo:     memberRepo,
		membershipRepo: membershipRepo,
		attendanceRepo: attendanceRepo,
		leadRepo:       leadRepo,
		cache:          cacheClient,
	}
}

func (s *reportService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if s.cache.GetJSON(ctx, "reports:dashboard", &summary) {
		return &summary, nil
	}

	statusCounts, err := s.memberRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for status, count := range statusCounts {
		summary.TotalMembers += count
		switch status {
		case model.MemberActive:
			summary.ActiveMembers = count
		case model.MemberExpired:
			summary.ExpiredMembers = count
		case model.MemberPending:
			summary.PendingMembers = count
		}
	}

	if summary.TotalLeads, err = s.leadRepo.Count(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if summary.MonthRevenue, summary.MonthPayments, err = s.paymentRepo.SumBetween(ctx, monthStart, now); err != nil {
		return nil, err
	}

	today, err := s.attendanceRepo.ListByDate(ctx, dayOf(now))
	if err != nil {
		return nil, err
	}
	summary.TodayAttendance = int64(len(today))

	s.cache.SetJSON(ctx, "reports:dashboard", summary, reportCacheTTL)
	return &summary, nil
}

func (s *reportService) MonthlyRevenue(ctx context.Context, months int) ([]MonthRevenue, error) {
	if months < 1 || months > 24 {
		months = 6
	}

	key := fmt.Sprintf("reports:revenue:%d", months)
	var cached []MonthRevenue
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	now := time.Now()
	out := make([]MonthRevenue, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

		total, count, err := s.paymentRepo.SumBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, MonthRevenue{
			Month:    start.Format("2006-01"),
			Revenue:  total,
			Payments: count,
		})
	}

	s.cache.SetJSON(ctx, key, out, reportCacheTTL)
	return out, nil
}

func (s *reportService) PaymentModeDistribution(ctx context.Context) ([]ModeShare, error) {
	byMode, err := s.paymentRepo.GroupByMode(ctx)
	if err != nil {
		return nil, err
	}

	// Stable order for charting.
	modes := []model.PaymentMode{model.ModeCash, model.ModeCard, model.ModeUPI, model.ModeBankTransfer, model.ModeOther}
	out := make([]ModeShare, 0, len(byMode))
	for _, mode := range modes {
		agg, ok := byMode[mode]
		if !ok {
			continue
		}
		out = append(out, ModeShare{Mode: mode, Amount: agg.Amount, Count: agg.Count})
	}
	return out, nil
}

// PlanRevenueBreakdown attributes active membership revenue to plans.
func (s *reportService) PlanRevenueBreakdown(ctx context.Context) ([]PlanRevenue, error) {
	memberships, err := s.membershipRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	byPlan := make(map[string]*PlanRevenue)
	order := make([]string, 0)
	for i := range memberships {
		m := &memberships[i]
		id := m.PlanID.String()
		entry, ok := byPlan[id]
		if !ok {
			name := ""
			if m.Plan != nil {
				name = m.Plan.Name
			}
			entry = &PlanRevenue{PlanID: id, PlanName: name, Revenue: decimal.Zero}
			byPlan[id] = entry
			order = append(order, id)
		}
		entry.Members++
		entry.Revenue = entry.Revenue.Add(m.FinalAmount)
	}

	out := make([]PlanRevenue, 0, len(order))
	for _, id := range order {
		out = append(out, *byPlan[id])
	}
	return out, nil
}

func (s *reportService) MemberStatusDistribution(ctx context.Context) (map[model.MembershipStatus]int64, error) {
	return s.memberRepo.CountByStatus(ctx)
}

func (s *reportService) AttendanceTrend(ctx context.Context, days int) ([]DayCount, error) {
	if days < 1 || days > 90 {
		days = 30
	}

	now := time.Now()
	from := dayOf(now).AddDate(0, 0, -(days - 1))
	perDay, err := s.attendanceRepo.CountPerDay(ctx, from, now)
	if err != nil {
		return nil, err
	}

	out := make([]DayCount, 0, days)
	for d := 0; d < days; d++ {
		day := from.AddDate(0, 0, d).Format("2006-01-02")
		out = append(out, DayCount{Date: day, Count: perDay[day]})
	}
	return out, nil
}

func (s *reportService) LeadFunnel(ctx context.Context) (map[model.LeadStatus]int64, error) {
	return s.leadRepo.CountByStatus(ctx)
}

func (s *reportService) LeadSources(ctx context.Context) (map[model.LeadSource]int64, error) {
	return s.leadRepo.CountBySource(ctx)
}
