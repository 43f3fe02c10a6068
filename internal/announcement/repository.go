package announcement

import (
	"context"
	"sync"

	"github.com/mythoslab/mythos-backend/internal/pkg/blobstore"
)

// Repository owns the ordered announcement list. Stored order is insertion
// order, newest first; List derives display order from a copy.
type Repository interface {
	Insert(ctx context.Context, a Announcement)
	Get(ctx context.Context, id string) (Announcement, error)
	List(ctx context.Context, filter Filter) Page
	Update(ctx context.Context, id string, title, message string) (Announcement, error)
	Delete(ctx context.Context, id string) bool
}

type blobRepository struct {
	mu    sync.Mutex
	store blobstore.Store
	items []Announcement
}

// NewBlobRepository seeds the in-memory list from the blob store exactly once.
// A missing or undecodable blob leaves the list empty; that lossy fallback is
// accepted behavior, not an error. The list is persisted back after every
// mutation, best-effort.
func NewBlobRepository(ctx context.Context, store blobstore.Store) Repository {
	r := &blobRepository{store: store}
	store.Load(ctx, blobstore.KeyAnnouncements, &r.items)
	return r
}

func (r *blobRepository) Insert(ctx context.Context, a Announcement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]Announcement{a}, r.items...)
	r.persist(ctx)
}

func (r *blobRepository) Get(_ context.Context, id string) (Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return Announcement{}, ErrNotFound
}

func (r *blobRepository) List(_ context.Context, filter Filter) Page {
	r.mu.Lock()
	snapshot := make([]Announcement, len(r.items))
	copy(snapshot, r.items)
	r.mu.Unlock()

	return Query(snapshot, filter)
}

// Update replaces title and message of the matching entity in place.
// ID, author, verified, and date stay untouched.
func (r *blobRepository) Update(ctx context.Context, id string, title, message string) (Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Title = title
			r.items[i].Message = message
			r.persist(ctx)
			return r.items[i], nil
		}
	}
	return Announcement{}, ErrNotFound
}

// Delete removes the entity if present and reports whether it did.
// Deleting an unknown id is a no-op.
func (r *blobRepository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist(ctx)
			return true
		}
	}
	return false
}

// persist must be called with the lock held.
func (r *blobRepository) persist(ctx context.Context) {
	r.store.Save(ctx, blobstore.KeyAnnouncements, r.items)
}
