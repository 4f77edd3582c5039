// Package snapshot autosaves the edited layout after structural changes.
package snapshot

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bnema/splitpane/internal/application/port"
	"github.com/bnema/splitpane/internal/application/usecase"
	"github.com/bnema/splitpane/internal/logging"
)

const (
	defaultIntervalMs = 2000
	maxSaveAttempts   = 3
	defaultRetryDelay = 50 * time.Millisecond
)

// Service handles debounced layout snapshots.
type Service struct {
	layoutsUC  *usecase.ManageLayoutsUseCase
	provider   port.LayoutSnapshotProvider
	interval   time.Duration
	retryDelay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a new snapshot service.
func NewService(
	layoutsUC *usecase.ManageLayoutsUseCase,
	provider port.LayoutSnapshotProvider,
	intervalMs int,
) *Service {
	if intervalMs <= 0 {
		intervalMs = defaultIntervalMs
	}
	return &Service{
		layoutsUC:  layoutsUC,
		provider:   provider,
		interval:   time.Duration(intervalMs) * time.Millisecond,
		retryDelay: defaultRetryDelay,
	}
}

// Start begins accepting dirty notifications.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// Stop stops the service and saves final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	// Final save on shutdown
	return s.SaveNow(ctx)
}

// OnChange marks the layout dirty. Its signature matches events.Listener so
// the service can subscribe to the change bus directly.
func (s *Service) OnChange(_ context.Context, _ port.StructuralChange) {
	s.MarkDirty()
}

// MarkDirty signals that state has changed.
// Debounces saves to avoid excessive DB writes.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}

		if err := s.saveSnapshot(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save layout snapshot")
		}
	})
}

// SaveNow forces immediate save (for shutdown).
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	return s.saveSnapshot(ctx)
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()

	name := s.provider.LayoutName()
	doc := s.provider.LayoutSnapshot()
	if name == "" || doc == nil || doc.Root == nil {
		return nil
	}

	var err error
	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		err = s.layoutsUC.Import(ctx, name, doc)
		if err == nil || !isBusy(err) || attempt == maxSaveAttempts {
			break
		}
		logging.FromContext(ctx).Debug().
			Int("attempt", attempt).
			Str("layout", name).
			Msg("database busy, retrying snapshot")
		time.Sleep(s.retryDelay)
	}

	if err != nil {
		// keep the change pending so the shutdown save retries it
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("layout", name).
		Int("pane_count", doc.PaneCount()).
		Msg("layout snapshot saved")
	return nil
}

func isBusy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
