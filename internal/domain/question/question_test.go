package question

import (
	"errors"
	"strings"
	"testing"
)

func TestNewQuestion(t *testing.T) {
	author := Author{ID: 7, Nickname: "kim", Email: "kim@example.com"}

	q, err := NewQuestion(author, "  How do goroutines work?  ", "body", " go ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Title != "How do goroutines work?" {
		t.Fatalf("title not trimmed: %q", q.Title)
	}
	if q.Tag != "go" {
		t.Fatalf("tag not trimmed: %q", q.Tag)
	}
	if q.AuthorID != 7 || q.AuthorNickname != "kim" || q.AuthorEmail != "kim@example.com" {
		t.Fatalf("author not copied: %+v", q)
	}
	if q.CreatedAt.IsZero() || !q.CreatedAt.Equal(q.UpdatedAt) {
		t.Fatalf("timestamps not initialised: %v %v", q.CreatedAt, q.UpdatedAt)
	}
}

func TestNewQuestionValidation(t *testing.T) {
	author := Author{ID: 1}
	cases := []struct {
		name    string
		author  Author
		title   string
		content string
		tag     string
		code    string
	}{
		{"missing author", Author{}, "t", "c", "", ErrInvalidAuthor},
		{"blank title", author, "   ", "c", "", ErrInvalidTitle},
		{"long title", author, strings.Repeat("가", MaxTitleLength+1), "c", "", ErrInvalidTitle},
		{"blank content", author, "t", " ", "", ErrInvalidContent},
		{"long tag", author, "t", "c", strings.Repeat("x", MaxTagLength+1), ErrInvalidTag},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewQuestion(tc.author, tc.title, tc.content, tc.tag)
			var de DomainError
			if !errors.As(err, &de) {
				t.Fatalf("expected DomainError, got %v", err)
			}
			if de.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, de.Code)
			}
		})
	}
}

func TestUpdateKeepsQuestionOnError(t *testing.T) {
	q, err := NewQuestion(Author{ID: 1}, "title", "content", "java")
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Update("", "new", "go"); err == nil {
		t.Fatal("expected error for blank title")
	}
	if q.Content != "content" || q.Tag != "java" {
		t.Fatalf("question changed on failed update: %+v", q)
	}
	if err := q.Update("new title", "new content", ""); err != nil {
		t.Fatal(err)
	}
	if q.Title != "new title" || q.Tag != "" {
		t.Fatalf("update not applied: %+v", q)
	}
}

func TestParseEnums(t *testing.T) {
	if _, ok := ParseSortTarget("title"); !ok {
		t.Fatal("title should be sortable")
	}
	if _, ok := ParseSortTarget("content"); ok {
		t.Fatal("content should not be sortable")
	}
	if _, ok := ParseSearchCategory("nickname"); !ok {
		t.Fatal("nickname should be searchable")
	}
	if _, ok := ParseSearchCategory("java"); ok {
		t.Fatal("java is not a field")
	}
}

func TestFieldValue(t *testing.T) {
	q := &Question{Title: "T", Content: "C", Tag: "G", AuthorNickname: "N", AuthorEmail: "E"}
	want := map[SearchCategory]string{
		SearchTitle: "T", SearchContent: "C", SearchTag: "G", SearchNickname: "N", SearchEmail: "E",
	}
	for c, v := range want {
		if got := q.FieldValue(c); got != v {
			t.Errorf("%s: got %q want %q", c, got, v)
		}
	}
}
