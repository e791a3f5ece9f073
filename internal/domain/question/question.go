package question

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Question represents a question posted by a member
type Question struct {
	ID             int64
	Title          string
	Content        string
	Tag            string
	AuthorID       int64
	AuthorNickname string
	AuthorEmail    string
	Views          int64
	Votes          int64
	Answers        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Author identifies who wrote a question
type Author struct {
	ID       int64
	Nickname string
	Email    string
}

// Field limits
const (
	MaxTitleLength = 200
	MaxTagLength   = 50
)

// NewQuestion creates a new question with validation
func NewQuestion(author Author, title, content, tag string) (*Question, error) {
	if author.ID <= 0 {
		return nil, DomainError{Code: ErrInvalidAuthor, Field: "author", Message: fmt.Sprintf("invalid author ID: %d", author.ID)}
	}

	title, content, tag = strings.TrimSpace(title), strings.TrimSpace(content), strings.TrimSpace(tag)
	if err := validateFields(title, content, tag); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Question{
		Title:          title,
		Content:        content,
		Tag:            tag,
		AuthorID:       author.ID,
		AuthorNickname: author.Nickname,
		AuthorEmail:    author.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Update replaces the editable fields
func (q *Question) Update(title, content, tag string) error {
	title, content, tag = strings.TrimSpace(title), strings.TrimSpace(content), strings.TrimSpace(tag)
	if err := validateFields(title, content, tag); err != nil {
		return err
	}

	q.Title = title
	q.Content = content
	q.Tag = tag
	q.UpdatedAt = time.Now().UTC()
	return nil
}

// IsAuthoredBy reports whether the member wrote this question
func (q *Question) IsAuthoredBy(authorID int64) bool {
	return q.AuthorID == authorID
}

func validateFields(title, content, tag string) error {
	if title == "" {
		return DomainError{Code: ErrInvalidTitle, Field: "title", Message: "title is required"}
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return DomainError{Code: ErrInvalidTitle, Field: "title", Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLength)}
	}
	if content == "" {
		return DomainError{Code: ErrInvalidContent, Field: "content", Message: "content is required"}
	}
	if utf8.RuneCountInString(tag) > MaxTagLength {
		return DomainError{Code: ErrInvalidTag, Field: "tag", Message: fmt.Sprintf("tag must be at most %d characters", MaxTagLength)}
	}
	return nil
}

// DomainError represents a domain-level error
type DomainError struct {
	Code    string
	Field   string
	Message string
}

func (e DomainError) Error() string {
	return fmt.Sprintf("domain error [%s]: %s", e.Code, e.Message)
}

// Domain error codes
const (
	ErrInvalidAuthor  = "INVALID_AUTHOR"
	ErrInvalidTitle   = "INVALID_TITLE"
	ErrInvalidContent = "INVALID_CONTENT"
	ErrInvalidTag     = "INVALID_TAG"
)
