package service

import (
	"context"
	"time"

	"github.com/aavinothkumartt/TimeTracker/internal/domain"
	"github.com/aavinothkumartt/TimeTracker/internal/duration"
	"github.com/aavinothkumartt/TimeTracker/internal/repository"
)

type summaryService struct {
	sessions repository.SessionRepo
	entries  repository.EntryRepo
	now      func() time.Time
}

// NewSummaryService creates the daily aggregation service.
func NewSummaryService(sessions repository.SessionRepo, entries repository.EntryRepo) SummaryService {
	return &summaryService{sessions: sessions, entries: entries, now: time.Now}
}

func (s *summaryService) DailySummary(ctx context.Context, date string) (*domain.DailySummary, error) {
	if date == "" {
		date = s.now().Format(duration.DateLayout)
	}

	sessions, err := s.sessions.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	summary := domain.NewDailySummary(date)
	for _, sess := range sessions {
		// Still-running sessions are skipped inside AddSession.
		summary.AddSession(sess)
	}
	for _, entry := range entries {
		summary.AddEntry(entry)
	}
	return summary, nil
}
