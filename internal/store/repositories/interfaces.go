package repositories

import (
	"context"
	"errors"
	"time"

	"codearea/internal/domain/question"
	"codearea/internal/domain/user"
)

// ErrNotFound is returned when a looked-up record does not exist
var ErrNotFound = errors.New("record not found")

// QueryParams describes one page of a listing. Sort is always descending.
type QueryParams struct {
	Filter *question.FilterCriterion
	Page   int
	Size   int
	Sort   question.SortTarget
}

// Page is one page of questions plus the metadata of the whole result
type Page struct {
	Items       []*question.Question
	CurrentPage int
	TotalPages  int
	TotalItems  int64
}

// TotalPagesFor returns how many pages of size hold total items
func TotalPagesFor(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// QuestionRepository defines the contract for question data access
type QuestionRepository interface {
	Query(ctx context.Context, params QueryParams) (*Page, error)
	Save(ctx context.Context, q *question.Question) error
	FindByID(ctx context.Context, id int64) (*question.Question, error)
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
}

// SessionStore resolves session tokens issued by the auth service
type SessionStore interface {
	Lookup(ctx context.Context, token string) (*user.User, error)
}

// ViewTracker remembers which viewers have already seen a question
type ViewTracker interface {
	// FirstView reports whether this is the viewer's first view of the
	// question within window.
	FirstView(ctx context.Context, questionID, viewerID int64, window time.Duration) (bool, error)
}
