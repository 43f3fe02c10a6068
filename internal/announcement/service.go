package announcement

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mythoslab/mythos-backend/internal/auth"
	"github.com/mythoslab/mythos-backend/internal/notify"
	"github.com/mythoslab/mythos-backend/internal/pkg/metrics"
)

type Service interface {
	Publish(ctx context.Context, draft Draft, actor auth.Actor) (Announcement, error)
	Update(ctx context.Context, id string, draft Draft, actor auth.Actor) (Announcement, error)
	Remove(ctx context.Context, id string, actor auth.Actor) error
	Query(ctx context.Context, filter Filter) Page
}

type service struct {
	repo     Repository
	notifier notify.Notifier
}

func NewService(repo Repository, notifier notify.Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

// Publish validates the draft and prepends a new announcement.
// No mutation happens on any failure path.
func (s *service) Publish(ctx context.Context, draft Draft, actor auth.Actor) (Announcement, error) {
	if !actor.IsAdmin() {
		s.notifier.Notify("Only admins can publish announcements.", notify.SeverityError)
		return Announcement{}, ErrUnauthorized
	}

	title, message, err := normalizeDraft(draft)
	if err != nil {
		s.notifier.Notify(err.Error(), notify.SeverityError)
		return Announcement{}, err
	}

	author := strings.TrimSpace(actor.Name)
	if author == "" {
		author = FallbackAuthor
	}

	a := Announcement{
		ID:       uuid.NewString(),
		Title:    title,
		Message:  message,
		Author:   author,
		Verified: true,
		Date:     time.Now().UTC(),
	}

	s.repo.Insert(ctx, a)
	metrics.AnnouncementsPublished.Inc()
	s.notifier.Notify("Announcement published.", notify.SeverityInfo)
	return a, nil
}

// Update replaces title and message of an existing announcement.
// Author, verified, and date never change on edit.
func (s *service) Update(ctx context.Context, id string, draft Draft, actor auth.Actor) (Announcement, error) {
	if !actor.IsAdmin() {
		s.notifier.Notify("Only admins can edit announcements.", notify.SeverityError)
		return Announcement{}, ErrUnauthorized
	}

	title, message, err := normalizeDraft(draft)
	if err != nil {
		s.notifier.Notify(err.Error(), notify.SeverityError)
		return Announcement{}, err
	}

	a, err := s.repo.Update(ctx, id, title, message)
	if err != nil {
		s.notifier.Notify("That announcement no longer exists.", notify.SeverityWarn)
		return Announcement{}, err
	}

	s.notifier.Notify("Announcement updated.", notify.SeverityInfo)
	return a, nil
}

// Remove deletes an announcement. Removing an unknown id is a no-op success,
// which makes the operation idempotent.
func (s *service) Remove(ctx context.Context, id string, actor auth.Actor) error {
	if !actor.IsAdmin() {
		s.notifier.Notify("Only admins can delete announcements.", notify.SeverityError)
		return ErrUnauthorized
	}

	if s.repo.Delete(ctx, id) {
		metrics.AnnouncementsDeleted.Inc()
	}
	s.notifier.Notify("Announcement deleted.", notify.SeverityInfo)
	return nil
}

// Query is pure and side-effect free; it never mutates the repository.
func (s *service) Query(ctx context.Context, filter Filter) Page {
	return s.repo.List(ctx, filter)
}

// normalizeDraft trims the draft and enforces the length bounds.
// Lengths are counted in characters, not bytes.
func normalizeDraft(d Draft) (title, message string, err error) {
	title = strings.TrimSpace(d.Title)
	message = strings.TrimSpace(d.Message)

	if n := utf8.RuneCountInString(title); n < MinTitleLen || n > MaxTitleLen {
		return "", "", ErrInvalidTitle
	}
	if n := utf8.RuneCountInString(message); n < MinMessageLen || n > MaxMessageLen {
		return "", "", ErrInvalidMessage
	}
	return title, message, nil
}
