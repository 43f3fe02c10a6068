package settings

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythoslab/mythos-backend/internal/auth"
	"github.com/mythoslab/mythos-backend/internal/notify"
	"github.com/mythoslab/mythos-backend/internal/pkg/blobstore"
)

type memStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (s *memStore) Load(_ context.Context, key string, dst any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if raw, ok := s.blobs[key]; ok {
		_ = json.Unmarshal(raw, dst)
	}
}

func (s *memStore) Save(_ context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = raw
}

func (s *memStore) stored(key string, dst any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.blobs[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(message string, severity notify.Severity) notify.Notification {
	return notify.Notification{Message: message, Severity: severity}
}

var admin = auth.Actor{Name: "Principal Chiron", Role: auth.RoleAdmin}

func TestUpdateAppliesImmediatelyAndSavesAfterQuiescence(t *testing.T) {
	store := newMemStore()
	svc := NewService(context.Background(), store, noopNotifier{})
	ctx := context.Background()

	next := Settings{Theme: "light", BannerText: "Sports day!", BannerEnabled: true}
	got, err := svc.Update(ctx, next, admin)
	require.NoError(t, err)
	assert.Equal(t, next, got)

	// Visible in memory right away, durable only after the window.
	assert.Equal(t, next, svc.Get(ctx))

	require.Eventually(t, func() bool {
		var saved Settings
		return store.stored(blobstore.KeySettings, &saved) && saved == next
	}, time.Second, 20*time.Millisecond)
}

func TestRapidUpdatesCoalesceToTheLastValue(t *testing.T) {
	store := newMemStore()
	svc := NewService(context.Background(), store, noopNotifier{})
	ctx := context.Background()

	themes := []string{"light", "dark", "light", "dark", "solarized"}
	for _, theme := range themes {
		_, err := svc.Update(ctx, Settings{Theme: theme}, admin)
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		var saved Settings
		return store.stored(blobstore.KeySettings, &saved) && saved.Theme == "solarized"
	}, time.Second, 20*time.Millisecond)
}

func TestUpdateRejectsNonAdmins(t *testing.T) {
	store := newMemStore()
	svc := NewService(context.Background(), store, noopNotifier{})
	ctx := context.Background()

	_, err := svc.Update(ctx, Settings{Theme: "light"}, auth.Actor{Name: "Percy", Role: auth.RoleStudent})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, Defaults(), svc.Get(ctx))
}

func TestFlushWritesSynchronously(t *testing.T) {
	store := newMemStore()
	svc := NewService(context.Background(), store, noopNotifier{})
	ctx := context.Background()

	next := Settings{Theme: "light"}
	_, err := svc.Update(ctx, next, admin)
	require.NoError(t, err)

	svc.Flush(ctx)

	var saved Settings
	require.True(t, store.stored(blobstore.KeySettings, &saved))
	assert.Equal(t, next, saved)
}

func TestServiceSeedsFromStore(t *testing.T) {
	store := newMemStore()
	stored := Settings{Theme: "light", BannerText: "Welcome back!", BannerEnabled: true}
	store.Save(context.Background(), blobstore.KeySettings, stored)

	svc := NewService(context.Background(), store, noopNotifier{})
	assert.Equal(t, stored, svc.Get(context.Background()))
}
