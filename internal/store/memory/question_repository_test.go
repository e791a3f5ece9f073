package memory

import (
	"context"
	"errors"
	"math"
	"testing"

	"codearea/internal/domain/question"
	"codearea/internal/store/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo *QuestionRepository, titles ...string) []*question.Question {
	t.Helper()
	out := make([]*question.Question, 0, len(titles))
	for _, title := range titles {
		q, err := question.NewQuestion(question.Author{ID: 1, Nickname: "kim"}, title, "body of "+title, "java")
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), q))
		out = append(out, q)
	}
	return out
}

func TestQueryOrdersDescendingAndPages(t *testing.T) {
	repo := NewQuestionRepository()
	seed(t, repo, "A", "C", "B")

	page, err := repo.Query(context.Background(), repositories.QueryParams{Page: 0, Size: 2, Sort: question.SortByTitle})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "C", page.Items[0].Title)
	assert.Equal(t, "B", page.Items[1].Title)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, int64(3), page.TotalItems)

	page, err = repo.Query(context.Background(), repositories.QueryParams{Page: 1, Size: 2, Sort: question.SortByTitle})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "A", page.Items[0].Title)

	page, err = repo.Query(context.Background(), repositories.QueryParams{Page: 5, Size: 2, Sort: question.SortByTitle})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.CurrentPage)
}

func TestQueryHugePageDoesNotWrap(t *testing.T) {
	repo := NewQuestionRepository()
	seed(t, repo, "A", "B", "C")

	for _, p := range []repositories.QueryParams{
		{Page: 1 << 62, Size: 4, Sort: question.SortByTitle},
		{Page: math.MaxInt/2 + 1, Size: 2, Sort: question.SortByTitle},
	} {
		page, err := repo.Query(context.Background(), p)
		require.NoError(t, err)
		assert.Empty(t, page.Items, "page %d size %d", p.Page, p.Size)
		assert.Equal(t, p.Page, page.CurrentPage)
	}
}

func TestQueryFilterIsCaseInsensitiveSubstring(t *testing.T) {
	repo := NewQuestionRepository()
	seed(t, repo, "Java Streams", "goroutines", "Why JAVA?")

	page, err := repo.Query(context.Background(), repositories.QueryParams{
		Filter: &question.FilterCriterion{Category: question.SearchTitle, Search: "jav"},
		Size:   10,
		Sort:   question.SortByID,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Why JAVA?", page.Items[0].Title)
	assert.Equal(t, "Java Streams", page.Items[1].Title)
}

func TestEmptyCollectionHasNoPages(t *testing.T) {
	page, err := NewQuestionRepository().Query(context.Background(), repositories.QueryParams{Size: 10, Sort: question.SortByID})
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalPages)
	assert.NotNil(t, page.Items)
}

func TestSaveFindDeleteAndViews(t *testing.T) {
	repo := NewQuestionRepository()
	qs := seed(t, repo, "A")
	id := qs[0].ID

	require.NoError(t, repo.IncrementViews(context.Background(), id))
	got, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Views)

	got.Title = "changed"
	stored, _ := repo.FindByID(context.Background(), id)
	assert.Equal(t, "A", stored.Title, "FindByID must return a copy")

	require.NoError(t, repo.Delete(context.Background(), id))
	_, err = repo.FindByID(context.Background(), id)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Save(context.Background(), &question.Question{ID: 99}), repositories.ErrNotFound)
}
