package question

import (
	"context"
	"fmt"
	"math"
	"strings"

	"codearea/internal/domain/question"
	"codearea/internal/store/repositories"
)

// DefaultMaxPageSize caps pageSize when no limit is configured
const DefaultMaxPageSize = 100

// ListingService resolves listing requests into pages of question previews
type ListingService struct {
	questionRepo repositories.QuestionRepository
	maxPageSize  int
}

// NewListingService creates a new listing service
func NewListingService(questionRepo repositories.QuestionRepository, maxPageSize int) *ListingService {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	return &ListingService{
		questionRepo: questionRepo,
		maxPageSize:  maxPageSize,
	}
}

// List returns one page of previews, sorted descending by the requested
// target and optionally narrowed by a category/search pair.
func (s *ListingService) List(ctx context.Context, req ListingRequest, filter ListingFilter) (*ListingResponse, error) {
	params, err := s.resolve(req, filter)
	if err != nil {
		return nil, err
	}

	page, err := s.questionRepo.Query(ctx, params)
	if err != nil {
		return nil, &RepositoryError{Op: "list_questions", Err: err}
	}

	previews := make([]QuestionPreview, 0, len(page.Items))
	for _, q := range page.Items {
		previews = append(previews, ToPreview(q))
	}

	return &ListingResponse{
		Pagination: PaginationResult{
			CurrentPage: page.CurrentPage,
			TotalPages:  page.TotalPages,
		},
		QuestionPreviews: previews,
	}, nil
}

// resolve validates the request and builds the repository query
func (s *ListingService) resolve(req ListingRequest, filter ListingFilter) (repositories.QueryParams, error) {
	p := req.Pagination
	if p.PageSize <= 0 {
		return repositories.QueryParams{}, &InvalidPaginationError{Field: "pageSize", Reason: "must be positive"}
	}
	if p.PageSize > s.maxPageSize {
		return repositories.QueryParams{}, &InvalidPaginationError{Field: "pageSize", Reason: fmt.Sprintf("must be at most %d", s.maxPageSize)}
	}
	if p.CurrentPage < 0 {
		return repositories.QueryParams{}, &InvalidPaginationError{Field: "currentPage", Reason: "must not be negative"}
	}
	if p.CurrentPage > math.MaxInt32/p.PageSize {
		return repositories.QueryParams{}, &InvalidPaginationError{Field: "currentPage", Reason: "offset out of range"}
	}

	target, ok := question.ParseSortTarget(req.Sort.Target)
	if !ok {
		return repositories.QueryParams{}, &InvalidPaginationError{Field: "sort.target", Reason: fmt.Sprintf("cannot sort by %q", req.Sort.Target)}
	}

	criterion, err := resolveFilter(filter)
	if err != nil {
		return repositories.QueryParams{}, err
	}

	return repositories.QueryParams{
		Filter: criterion,
		Page:   p.CurrentPage,
		Size:   p.PageSize,
		Sort:   target,
	}, nil
}

// resolveFilter enforces that category and search arrive together or not at all
func resolveFilter(f ListingFilter) (*question.FilterCriterion, error) {
	switch {
	case f.Category == nil && f.Search == nil:
		return nil, nil
	case f.Category == nil || f.Search == nil:
		return nil, &InvalidFilterError{Reason: "ambiguous or incomplete search criteria: category and search must be given together"}
	}

	category, ok := question.ParseSearchCategory(strings.TrimSpace(*f.Category))
	if !ok {
		return nil, &InvalidFilterError{Reason: fmt.Sprintf("unknown search category %q", *f.Category)}
	}
	search := strings.TrimSpace(*f.Search)
	if search == "" {
		return nil, &InvalidFilterError{Reason: "search string must not be empty"}
	}

	return &question.FilterCriterion{Category: category, Search: search}, nil
}
