package memory

import (
	"cmp"
	"context"
	"sort"
	"strings"
	"sync"

	"codearea/internal/domain/question"
	"codearea/internal/store/repositories"
)

// QuestionRepository keeps questions in process memory. It follows the
// same filter and ordering rules as the postgres repository.
type QuestionRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]question.Question
}

// NewQuestionRepository creates an empty in-memory repository
func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{rows: make(map[int64]question.Question)}
}

// Query returns one page of matching questions ordered descending by params.Sort
func (r *QuestionRepository) Query(ctx context.Context, params repositories.QueryParams) (*repositories.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := make([]question.Question, 0, len(r.rows))
	for _, q := range r.rows {
		if params.Filter == nil || containsFold(q.FieldValue(params.Filter.Category), params.Filter.Search) {
			matched = append(matched, q)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		c := compare(&matched[i], &matched[j], params.Sort)
		if c == 0 {
			return matched[i].ID > matched[j].ID
		}
		return c > 0
	})

	page := &repositories.Page{
		Items:       []*question.Question{},
		CurrentPage: params.Page,
		TotalItems:  int64(len(matched)),
		TotalPages:  repositories.TotalPagesFor(int64(len(matched)), params.Size),
	}

	if params.Page < 0 || params.Page >= page.TotalPages {
		return page, nil
	}
	start := params.Page * params.Size
	end := min(start+params.Size, len(matched))
	for i := start; i < end; i++ {
		q := matched[i]
		page.Items = append(page.Items, &q)
	}
	return page, nil
}

// Save inserts a new question or replaces an existing one
func (r *QuestionRepository) Save(ctx context.Context, q *question.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if q.ID == 0 {
		r.nextID++
		q.ID = r.nextID
	} else if _, ok := r.rows[q.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.rows[q.ID] = *q
	return nil
}

// FindByID returns a copy of the stored question
func (r *QuestionRepository) FindByID(ctx context.Context, id int64) (*question.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &q, nil
}

// Delete removes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// IncrementViews bumps the view counter by one
func (r *QuestionRepository) IncrementViews(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.rows[id]
	if !ok {
		return repositories.ErrNotFound
	}
	q.Views++
	r.rows[id] = q
	return nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// compare orders a against b on the sort target: >0 if a sorts after b ascending
func compare(a, b *question.Question, target question.SortTarget) int {
	switch target {
	case question.SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case question.SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case question.SortByUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case question.SortByViews:
		return cmp.Compare(a.Views, b.Views)
	case question.SortByVotes:
		return cmp.Compare(a.Votes, b.Votes)
	case question.SortByAnswers:
		return cmp.Compare(a.Answers, b.Answers)
	}
	return cmp.Compare(a.ID, b.ID)
}
