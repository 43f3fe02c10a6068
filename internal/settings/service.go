package settings

import (
	"context"
	"sync"
	"time"

	"github.com/mythoslab/mythos-backend/internal/auth"
	"github.com/mythoslab/mythos-backend/internal/notify"
	"github.com/mythoslab/mythos-backend/internal/pkg/blobstore"
	"github.com/mythoslab/mythos-backend/internal/pkg/debounce"
)

// SaveQuiescence is how long updates must stay quiet before the durable save
// fires. Every update cancels and reschedules the pending save, so a burst of
// toggles results in a single write.
const SaveQuiescence = 250 * time.Millisecond

type Service interface {
	Get(ctx context.Context) Settings
	Update(ctx context.Context, s Settings, actor auth.Actor) (Settings, error)
	// Flush cancels the pending debounced save and writes the current value
	// synchronously. Called on shutdown.
	Flush(ctx context.Context)
}

type service struct {
	mu       sync.Mutex
	store    blobstore.Store
	saver    *debounce.Debouncer
	notifier notify.Notifier
	current  Settings
}

// NewService seeds the in-memory settings from the blob store once.
func NewService(ctx context.Context, store blobstore.Store, notifier notify.Notifier) Service {
	s := &service{
		store:    store,
		saver:    debounce.New(SaveQuiescence),
		notifier: notifier,
		current:  Defaults(),
	}
	store.Load(ctx, blobstore.KeySettings, &s.current)
	return s
}

func (s *service) Get(context.Context) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update applies the new settings immediately in memory and schedules the
// durable save behind the quiescence window.
func (s *service) Update(_ context.Context, next Settings, actor auth.Actor) (Settings, error) {
	if !actor.IsAdmin() {
		s.notifier.Notify("Only admins can change settings.", notify.SeverityError)
		return Settings{}, ErrUnauthorized
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	s.saver.Trigger(func() {
		s.mu.Lock()
		snapshot := s.current
		s.mu.Unlock()
		// Detached context: the triggering request is long gone by now.
		s.store.Save(context.Background(), blobstore.KeySettings, snapshot)
	})

	s.notifier.Notify("Settings updated.", notify.SeverityInfo)
	return next, nil
}

func (s *service) Flush(ctx context.Context) {
	s.saver.Stop()
	s.mu.Lock()
	snapshot := s.current
	s.mu.Unlock()
	s.store.Save(ctx, blobstore.KeySettings, snapshot)
}
