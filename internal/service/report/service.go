package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sinarkarya/leave-backend-go/internal/domain/leave"
	"github.com/sinarkarya/leave-backend-go/internal/domain/master/holiday"
	"github.com/sinarkarya/leave-backend-go/internal/domain/report"
	leaveservice "github.com/sinarkarya/leave-backend-go/internal/service/leave"
)

const dateLayout = "2006-01-02"

type ReportServiceImpl struct {
	reportRepo       report.Repository
	leaveRequestRepo leave.LeaveRequestRepository
	holidayRepo      holiday.HolidayRepository
}

func NewReportService(
	reportRepo report.Repository,
	leaveRequestRepo leave.LeaveRequestRepository,
	holidayRepo holiday.HolidayRepository,
) report.Service {
	return &ReportServiceImpl{
		reportRepo:       reportRepo,
		leaveRequestRepo: leaveRequestRepo,
		holidayRepo:      holidayRepo,
	}
}

// LeaveSummary implements report.Service. Status and type breakdowns come
// straight from SQL aggregates; the per-department day totals need the
// working-day counter and holiday set, so they are computed here.
func (s *ReportServiceImpl) LeaveSummary(ctx context.Context, from, to time.Time) (report.LeaveSummaryResponse, error) {
	statusCounts, err := s.reportRepo.StatusCounts(ctx, from, to)
	if err != nil {
		return report.LeaveSummaryResponse{}, fmt.Errorf("failed to count statuses: %w", err)
	}
	typeUsage, err := s.reportRepo.LeaveTypeUsage(ctx, from, to)
	if err != nil {
		return report.LeaveSummaryResponse{}, fmt.Errorf("failed to aggregate leave types: %w", err)
	}

	byDepartment, err := s.departmentUsage(ctx, from, to)
	if err != nil {
		return report.LeaveSummaryResponse{}, err
	}

	if statusCounts == nil {
		statusCounts = []report.StatusCount{}
	}
	if typeUsage == nil {
		typeUsage = []report.LeaveTypeUsage{}
	}

	return report.LeaveSummaryResponse{
		From:         from.Format(dateLayout),
		To:           to.Format(dateLayout),
		ByDepartment: byDepartment,
		ByStatus:     statusCounts,
		ByLeaveType:  typeUsage,
	}, nil
}

func (s *ReportServiceImpl) departmentUsage(ctx context.Context, from, to time.Time) ([]report.DepartmentUsage, error) {
	approved, err := s.leaveRequestRepo.ListApprovedOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}
	dates, err := s.holidayRepo.ListDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	holidays := leaveservice.NewHolidaySet(dates)

	type bucket struct {
		days  int
		count int
	}
	buckets := map[string]*bucket{}
	for i := range approved {
		req := &approved[i]
		if req.Department == nil {
			continue
		}

		// Clamp the request range to the report window so a request
		// spanning the boundary only contributes its in-window days.
		start, end := req.StartDate, req.EndDate
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}

		b := buckets[*req.Department]
		if b == nil {
			b = &bucket{}
			buckets[*req.Department] = b
		}
		b.days += leaveservice.WorkingDays(start, end, holidays)
		b.count++
	}

	usage := []report.DepartmentUsage{}
	for dept, b := range buckets {
		usage = append(usage, report.DepartmentUsage{
			Department:   dept,
			ApprovedDays: b.days,
			RequestCount: b.count,
		})
	}
	sort.Slice(usage, func(i, j int) bool { return usage[i].Department < usage[j].Department })
	return usage, nil
}
