package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/deadsycode/lexdesk/internal/domain"
	"github.com/deadsycode/lexdesk/internal/rollup"
)

// ReportBy selects the grouping of an hours report.
type ReportBy string

const (
	ByClient ReportBy = "client"
	ByMatter ReportBy = "matter"
	ByDay    ReportBy = ReportBy(rollup.PeriodDay)
	ByWeek   ReportBy = ReportBy(rollup.PeriodWeek)
	ByMonth  ReportBy = ReportBy(rollup.PeriodMonth)
)

// ReportGroupings lists the accepted ReportBy values.
var ReportGroupings = []ReportBy{ByClient, ByMatter, ByDay, ByWeek, ByMonth}

// ParseReportBy accepts any ReportGroupings value, case-insensitively.
func ParseReportBy(s string) (ReportBy, error) {
	v := ReportBy(strings.ToLower(strings.TrimSpace(s)))
	for _, g := range ReportGroupings {
		if v == g {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown grouping %q", ErrInvalidInput, s)
}

type ReportRequest struct {
	By ReportBy
}

// HoursReport is an hours rollup with its grand total.
type HoursReport struct {
	By      ReportBy        `json:"by"`
	Buckets []rollup.Bucket `json:"buckets"`
	Total   float64         `json:"total"`
}

type reportService struct {
	src      DataSource
	topN     int
	observer UseCaseObserver
}

func NewReportService(src DataSource, topN int, observers ...UseCaseObserver) ReportService {
	if topN <= 0 {
		topN = rollup.DefaultTopN
	}
	return &reportService{src: src, topN: topN, observer: useCaseObserverOrNoop(observers)}
}

func (s *reportService) Hours(ctx context.Context, req ReportRequest) (report *HoursReport, err error) {
	fields := map[string]any{"by": string(req.By)}
	defer observe(ctx, s.observer, "hours-report", time.Now().UTC(), fields, &err)

	by := req.By
	if by == "" {
		by = ByClient
	}

	var group func([]domain.TimeEntry) []rollup.Bucket
	switch by {
	case ByClient:
		group = rollup.HoursByClient
	case ByMatter:
		group = rollup.HoursByMatter
	default:
		p, perr := rollup.ParsePeriod(string(by))
		if perr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, perr)
		}
		group = func(entries []domain.TimeEntry) []rollup.Bucket {
			return rollup.HoursByPeriod(entries, p)
		}
	}

	entries, err := s.src.ListTimeEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading time entries: %w", err)
	}

	buckets := group(entries)
	fields["buckets"] = len(buckets)
	return &HoursReport{By: by, Buckets: buckets, Total: rollup.Sum(buckets)}, nil
}

// TopClients ranks clients by hours. Non-positive n uses the configured
// default.
func (s *reportService) TopClients(ctx context.Context, n int) (rows []rollup.ClientSummary, err error) {
	if n <= 0 {
		n = s.topN
	}
	fields := map[string]any{"n": n}
	defer observe(ctx, s.observer, "top-clients", time.Now().UTC(), fields, &err)

	snap, err := loadSnapshot(ctx, s.src, false)
	if err != nil {
		return nil, err
	}
	rows = rollup.TopClients(snap.clients, snap.matters, snap.entries, n)
	fields["rows"] = len(rows)
	return rows, nil
}
