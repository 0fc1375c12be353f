package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aavinothkumartt/TimeTracker/internal/db"
	"github.com/aavinothkumartt/TimeTracker/internal/domain"
	"github.com/aavinothkumartt/TimeTracker/internal/repository"
)

type sessionService struct {
	mu        sync.Mutex
	currentID int64 // 0 when no session is active
	sessions  repository.SessionRepo
	uow       db.UnitOfWork
	now       func() time.Time
	observer  UseCaseObserver
}

// NewSessionService constructs the session engine and recovers its state
// from storage: the most recently started open session (if any) is adopted
// as current, and any older open sessions — which violate the single-active
// invariant — are finalized at zero duration in one transaction.
func NewSessionService(ctx context.Context, sessions repository.SessionRepo, uow db.UnitOfWork, observers ...UseCaseObserver) (SessionService, error) {
	s := &sessionService{
		sessions: sessions,
		uow:      uow,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
	if err := s.recoverState(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *sessionService) recoverState(ctx context.Context) error {
	open, err := s.sessions.ListActive(ctx)
	if err != nil {
		return err
	}
	if len(open) == 0 {
		return nil
	}

	s.currentID = open[0].ID

	stale := open[1:]
	if len(stale) == 0 {
		return nil
	}
	// Close stale sessions at their own start time: their real end is
	// unknown, so no elapsed time is invented for them.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		for _, sess := range stale {
			if err := txSessions.End(ctx, sess.ID, sess.StartTime, 0); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *sessionService) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID != 0
}

func (s *sessionService) Start(ctx context.Context, taskName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := s.now()
	if s.currentID != 0 {
		return 0, ErrSessionActive
	}

	sess := &domain.WorkSession{
		StartTime: started.Truncate(time.Second),
		TaskName:  taskName,
	}
	err := s.sessions.Create(ctx, sess)
	s.observe(ctx, "session_start", started, err, map[string]any{"task": taskName})
	if err != nil {
		return 0, err
	}

	s.currentID = sess.ID
	return sess.ID, nil
}

func (s *sessionService) Stop(ctx context.Context) (*domain.WorkSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := s.now()
	if s.currentID == 0 {
		return nil, ErrNoActiveSession
	}

	sess, err := s.sessions.GetByID(ctx, s.currentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The session vanished from storage; drop the stale reference.
			s.currentID = 0
		}
		return nil, err
	}

	end := s.now().Truncate(time.Second)
	seconds := int(end.Sub(sess.StartTime).Seconds())
	err = s.sessions.End(ctx, sess.ID, end, seconds)
	s.observe(ctx, "session_stop", started, err, map[string]any{"session_id": sess.ID, "seconds": seconds})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.currentID = 0
		}
		return nil, err
	}

	s.currentID = 0
	sess.EndTime = &end
	sess.Duration = &seconds
	return sess, nil
}

func (s *sessionService) Cancel(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := s.now()
	if s.currentID == 0 {
		return ErrNoActiveSession
	}

	err := s.sessions.Delete(ctx, s.currentID)
	s.observe(ctx, "session_cancel", started, err, map[string]any{"session_id": s.currentID})
	if err != nil {
		return err
	}

	s.currentID = 0
	return nil
}

func (s *sessionService) Current(ctx context.Context) (*domain.WorkSession, error) {
	s.mu.Lock()
	id := s.currentID
	s.mu.Unlock()

	if id == 0 {
		return nil, ErrNoActiveSession
	}
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) CurrentDuration(ctx context.Context) (int, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			return 0, nil
		}
		return 0, err
	}
	return sess.CurrentDuration(s.now()), nil
}

func (s *sessionService) ListForDate(ctx context.Context, date string) ([]*domain.WorkSession, error) {
	return s.sessions.ListForDate(ctx, date)
}

func (s *sessionService) Update(ctx context.Context, id int64, taskName, notes *string) error {
	return s.sessions.Update(ctx, id, taskName, notes)
}

func (s *sessionService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}
	if s.currentID == id {
		s.currentID = 0
	}
	return nil
}

func (s *sessionService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  s.now().Sub(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: startedAt,
	})
}
