package question

import (
	"context"
	"errors"
	"time"

	"codearea/internal/domain/question"
	"codearea/internal/domain/user"
	"codearea/internal/store/repositories"

	"github.com/rs/zerolog/log"
)

// Service handles question create, view, update and delete
type Service struct {
	questionRepo repositories.QuestionRepository
	views        repositories.ViewTracker
	viewWindow   time.Duration
}

// NewService creates a new question service. views may be nil, in which
// case every view is counted.
func NewService(questionRepo repositories.QuestionRepository, views repositories.ViewTracker, viewWindow time.Duration) *Service {
	return &Service{
		questionRepo: questionRepo,
		views:        views,
		viewWindow:   viewWindow,
	}
}

// Create stores a new question written by author
func (s *Service) Create(ctx context.Context, author *user.User, req QuestionPayload) (*QuestionResponse, error) {
	if author == nil {
		return nil, ErrUnauthenticated
	}

	q, err := question.NewQuestion(
		question.Author{ID: author.ID, Nickname: author.Nickname, Email: author.Email},
		req.Title, req.Content, req.Tag,
	)
	if err != nil {
		return nil, toValidationError(err)
	}

	if err := s.questionRepo.Save(ctx, q); err != nil {
		return nil, &RepositoryError{Op: "create_question", Err: err}
	}

	resp := ToResponse(q)
	return &resp, nil
}

// View returns a question and counts the view. viewer may be nil.
func (s *Service) View(ctx context.Context, viewer *user.User, id int64) (*QuestionResponse, error) {
	q, err := s.find(ctx, "view_question", id)
	if err != nil {
		return nil, err
	}

	if s.shouldCountView(ctx, viewer, id) {
		if err := s.questionRepo.IncrementViews(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, &RepositoryError{Op: "view_question", Err: err}
		}
		q.Views++
	}

	resp := ToResponse(q)
	return &resp, nil
}

// Update replaces the editable fields of a question owned by editor
func (s *Service) Update(ctx context.Context, editor *user.User, id int64, req QuestionPayload) error {
	q, err := s.findOwned(ctx, "update_question", editor, id)
	if err != nil {
		return err
	}

	if err := q.Update(req.Title, req.Content, req.Tag); err != nil {
		return toValidationError(err)
	}

	if err := s.questionRepo.Save(ctx, q); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return &RepositoryError{Op: "update_question", Err: err}
	}
	return nil
}

// Delete removes a question owned by editor
func (s *Service) Delete(ctx context.Context, editor *user.User, id int64) error {
	if _, err := s.findOwned(ctx, "delete_question", editor, id); err != nil {
		return err
	}

	if err := s.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return &RepositoryError{Op: "delete_question", Err: err}
	}
	return nil
}

func (s *Service) find(ctx context.Context, op string, id int64) (*question.Question, error) {
	q, err := s.questionRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &RepositoryError{Op: op, Err: err}
	}
	return q, nil
}

func (s *Service) findOwned(ctx context.Context, op string, editor *user.User, id int64) (*question.Question, error) {
	if editor == nil {
		return nil, ErrUnauthenticated
	}
	q, err := s.find(ctx, op, id)
	if err != nil {
		return nil, err
	}
	if !q.IsAuthoredBy(editor.ID) {
		return nil, ErrForbidden
	}
	return q, nil
}

// shouldCountView dedups views per signed-in viewer. Tracker failures are
// logged and the view is counted.
func (s *Service) shouldCountView(ctx context.Context, viewer *user.User, id int64) bool {
	if s.views == nil || viewer == nil {
		return true
	}
	first, err := s.views.FirstView(ctx, id, viewer.ID, s.viewWindow)
	if err != nil {
		log.Warn().Err(err).Int64("question_id", id).Int64("viewer_id", viewer.ID).Msg("view tracking failed")
		return true
	}
	return first
}

func toValidationError(err error) error {
	var de question.DomainError
	if errors.As(err, &de) {
		return &ValidationError{Field: de.Field, Message: de.Message}
	}
	return err
}
