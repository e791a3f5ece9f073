package question

import "time"

// ListingRequest is the body of a listing call
type ListingRequest struct {
	Pagination PaginationRequest `json:"pagination"`
	Sort       SortRequest       `json:"sort"`
}

// PaginationRequest selects one page; CurrentPage is zero-based
type PaginationRequest struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}

// SortRequest names the field to sort by. Direction is always descending.
type SortRequest struct {
	Target string `json:"target"`
}

// ListingFilter carries the optional category/search pair as received.
// A nil field means the parameter was not supplied at all.
type ListingFilter struct {
	Category *string
	Search   *string
}

// ListingResponse is one page of question previews
type ListingResponse struct {
	Pagination       PaginationResult  `json:"pagination"`
	QuestionPreviews []QuestionPreview `json:"questionPreviews"`
}

// PaginationResult is copied from the repository page, never recomputed
type PaginationResult struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// QuestionPreview is the list projection of a question
type QuestionPreview struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Tag       string    `json:"tag"`
	Nickname  string    `json:"nickname"`
	Views     int64     `json:"views"`
	Votes     int64     `json:"votes"`
	Answers   int64     `json:"answers"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QuestionResponse is the detail projection of a question
type QuestionResponse struct {
	QuestionPreview
	Content string `json:"content"`
	Email   string `json:"email"`
}

// QuestionPayload is the body of create and update calls
type QuestionPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tag     string `json:"tag,omitempty"`
}
