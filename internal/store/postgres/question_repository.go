package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codearea/internal/domain/question"
	"codearea/internal/store/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const questionColumns = `id, title, content, tag, author_id, author_nickname, author_email,
	view_count, vote_count, answer_count, created_at, updated_at`

var sortColumns = map[question.SortTarget]string{
	question.SortByID:        "id",
	question.SortByTitle:     "title",
	question.SortByCreatedAt: "created_at",
	question.SortByUpdatedAt: "updated_at",
	question.SortByViews:     "view_count",
	question.SortByVotes:     "vote_count",
	question.SortByAnswers:   "answer_count",
}

var searchColumns = map[question.SearchCategory]string{
	question.SearchTitle:    "title",
	question.SearchContent:  "content",
	question.SearchTag:      "tag",
	question.SearchNickname: "author_nickname",
	question.SearchEmail:    "author_email",
}

// questionRepository implements QuestionRepository on top of pgxpool
type questionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *pgxpool.Pool) repositories.QuestionRepository {
	return &questionRepository{db: db}
}

// Query counts the matching rows and fetches one page in a single read-only
// transaction so the metadata and the items describe the same snapshot.
func (r *questionRepository) Query(ctx context.Context, params repositories.QueryParams) (*repositories.Page, error) {
	where, args, err := buildWhere(params.Filter)
	if err != nil {
		return nil, err
	}
	orderBy, err := buildOrderBy(params.Sort)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var total int64
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM questions "+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	page := &repositories.Page{
		Items:       make([]*question.Question, 0, params.Size),
		CurrentPage: params.Page,
		TotalItems:  total,
		TotalPages:  repositories.TotalPagesFor(total, params.Size),
	}
	if params.Page < 0 || params.Page >= page.TotalPages {
		return page, nil
	}

	query := fmt.Sprintf("SELECT %s FROM questions %s %s LIMIT $%d OFFSET $%d",
		questionColumns, where, orderBy, len(args)+1, len(args)+2)
	args = append(args, params.Size, int64(params.Page)*int64(params.Size))

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan question: %w", err)
		}
		page.Items = append(page.Items, q)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return page, nil
}

// Save saves a question (insert or update)
func (r *questionRepository) Save(ctx context.Context, q *question.Question) error {
	if q.ID == 0 {
		return r.insert(ctx, q)
	}
	return r.update(ctx, q)
}

// FindByID finds a question by ID
func (r *questionRepository) FindByID(ctx context.Context, id int64) (*question.Question, error) {
	row := r.db.QueryRow(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, id)

	q, err := scanQuestion(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find question %d: %w", id, err)
	}
	return q, nil
}

// Delete removes a question
func (r *questionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter by one
func (r *questionRepository) IncrementViews(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE questions SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment views %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// insert creates a new question record
func (r *questionRepository) insert(ctx context.Context, q *question.Question) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO questions (title, content, tag, author_id, author_nickname, author_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		q.Title, q.Content, q.Tag, q.AuthorID, q.AuthorNickname, q.AuthorEmail, q.CreatedAt, q.UpdatedAt).Scan(&q.ID)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

// update modifies the editable fields of an existing question
func (r *questionRepository) update(ctx context.Context, q *question.Question) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE questions
		SET title = $1, content = $2, tag = $3, updated_at = $4
		WHERE id = $5`,
		q.Title, q.Content, q.Tag, q.UpdatedAt, q.ID)
	if err != nil {
		return fmt.Errorf("update question %d: %w", q.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// buildWhere turns an optional filter into a WHERE clause and its arguments
func buildWhere(f *question.FilterCriterion) (string, []any, error) {
	if f == nil {
		return "", nil, nil
	}
	col, ok := searchColumns[f.Category]
	if !ok {
		return "", nil, fmt.Errorf("unsupported search category %q", f.Category)
	}
	return fmt.Sprintf(`WHERE %s ILIKE $1 ESCAPE '\'`, col), []any{"%" + escapeLike(f.Search) + "%"}, nil
}

func buildOrderBy(target question.SortTarget) (string, error) {
	col, ok := sortColumns[target]
	if !ok {
		return "", fmt.Errorf("unsupported sort target %q", target)
	}
	if col == "id" {
		return "ORDER BY id DESC", nil
	}
	return fmt.Sprintf("ORDER BY %s DESC, id DESC", col), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// scanQuestion scans a single row into a question domain object
func scanQuestion(row pgx.Row) (*question.Question, error) {
	var q question.Question
	err := row.Scan(
		&q.ID, &q.Title, &q.Content, &q.Tag, &q.AuthorID, &q.AuthorNickname, &q.AuthorEmail,
		&q.Views, &q.Votes, &q.Answers, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
