package status

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"oppettider-backend/internal/storage"
)

const (
	snapshotKey = "board_status"
	snapshotTTL = time.Minute
)

// Provider is the slice of storage the snapshot service needs.
type Provider interface {
	GetSchedule(ctx context.Context) ([]storage.DaySchedule, error)
	GetOverride(ctx context.Context) (storage.Override, error)
	GetSymbolMessages(ctx context.Context) (storage.SymbolMessages, error)
}

// BoardStatus is the full evaluated view served to clients: the tri-state
// status plus the texts and progress the board renders.
type BoardStatus struct {
	Status          string            `json:"status"`
	Message         string            `json:"message"`
	Day             string            `json:"day"`
	Time            string            `json:"time"`
	CurrentSlot     *storage.TimeSlot `json:"currentSlot,omitempty"`
	NextOpening     *NextOpening      `json:"nextOpening,omitempty"`
	NextOpeningText string            `json:"nextOpeningText,omitempty"`
	Progress        float64           `json:"progress"`
}

// SnapshotService evaluates and caches the board status. Results are held for
// a minute and recomputed on the refresher tick or after a mutation
// invalidates the cache.
type SnapshotService struct {
	store Provider
	cache *cache.Cache
	now   func() time.Time
}

func NewSnapshotService(store Provider, now func() time.Time) *SnapshotService {
	if now == nil {
		now = time.Now
	}
	return &SnapshotService{
		store: store,
		cache: cache.New(snapshotTTL, 2*snapshotTTL),
		now:   now,
	}
}

// Current returns the board status for the current instant, serving the
// cached value when it is still fresh.
func (s *SnapshotService) Current(ctx context.Context) (BoardStatus, error) {
	if cached, ok := s.cache.Get(snapshotKey); ok {
		return cached.(BoardStatus), nil
	}

	board, err := s.evaluate(ctx)
	if err != nil {
		return BoardStatus{}, err
	}

	s.cache.Set(snapshotKey, board, snapshotTTL)
	return board, nil
}

// Invalidate drops the cached snapshot. Called after any schedule or
// override mutation so the next read reflects it.
func (s *SnapshotService) Invalidate() {
	s.cache.Delete(snapshotKey)
}

// Run re-evaluates the snapshot once a minute until ctx is cancelled, so the
// cached status tracks the wall clock even without traffic.
func (s *SnapshotService) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Invalidate()
			_, _ = s.Current(ctx)
		}
	}
}

func (s *SnapshotService) evaluate(ctx context.Context) (BoardStatus, error) {
	const op = "service.status.evaluate"

	var (
		schedule []storage.DaySchedule
		override storage.Override
		messages storage.SymbolMessages
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schedule, err = s.store.GetSchedule(gCtx)
		if err != nil {
			return fmt.Errorf("schedule: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		override, err = s.store.GetOverride(gCtx)
		if err != nil {
			return fmt.Errorf("override: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		messages, err = s.store.GetSymbolMessages(gCtx)
		if err != nil {
			return fmt.Errorf("messages: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return BoardStatus{}, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	snap := Evaluate(now, schedule, override)

	board := BoardStatus{
		Status:      snap.Status,
		Day:         DayLabel(now),
		Time:        now.Format("15:04"),
		CurrentSlot: snap.CurrentSlot,
	}

	switch snap.Status {
	case Away:
		board.Message = override.Message
		if board.Message == "" {
			board.Message = messages.AwayMessage
		}
	case Open:
		board.Message = messages.OpenMessage
	default:
		board.Message = messages.ClosedMessage
	}

	if next, ok := FindNextOpening(now, schedule); ok {
		board.NextOpening = &next
		board.NextOpeningText = FormatWait(next.MinutesUntil)
	}

	nowMinutes := MinutesOfDay(now)
	switch {
	case snap.Status == Open && snap.CurrentSlot != nil:
		board.Progress = ProgressUntilClose(nowMinutes, *snap.CurrentSlot)
	case board.NextOpening != nil:
		board.Progress = ProgressUntilOpen(board.NextOpening.MinutesUntil)
	}

	return board, nil
}
