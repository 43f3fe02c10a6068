package announcement

import (
	"errors"
	"time"
)

// Validation bounds, measured in characters after trimming.
const (
	MinTitleLen   = 3
	MaxTitleLen   = 120
	MinMessageLen = 5
	MaxMessageLen = 2000
)

// PageSize is the fixed query window size.
const PageSize = 5

// FallbackAuthor is used when the publishing session has no display name.
const FallbackAuthor = "Unknown author"

var (
	ErrUnauthorized   = errors.New("announcement management requires the admin role")
	ErrInvalidTitle   = errors.New("title must be between 3 and 120 characters")
	ErrInvalidMessage = errors.New("message must be between 5 and 2000 characters")
	ErrNotFound       = errors.New("announcement not found")
)

// Announcement is a school-wide notice visible to every role.
// ID, Author, Verified, and Date are fixed at creation; edits only ever
// replace Title and Message.
type Announcement struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Author   string    `json:"author"`
	Verified bool      `json:"verified"`
	Date     time.Time `json:"date"`
}

// Draft is an uncommitted title/message pair, used for both publish and edit.
type Draft struct {
	Title   string
	Message string
}

// Filter defines parameters for querying announcements.
type Filter struct {
	Keyword   string
	SortBy    string // date | title | author
	SortOrder string // asc | desc
	Page      int
}

// Page is one window of the filtered, sorted announcement list.
// Page is the clamped page number actually served.
type Page struct {
	Items     []Announcement
	Page      int
	PageCount int
	Total     int
}
