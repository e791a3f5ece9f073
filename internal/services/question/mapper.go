package question

import "codearea/internal/domain/question"

// ToPreview projects a question for list display
func ToPreview(q *question.Question) QuestionPreview {
	return QuestionPreview{
		ID:        q.ID,
		Title:     q.Title,
		Tag:       q.Tag,
		Nickname:  q.AuthorNickname,
		Views:     q.Views,
		Votes:     q.Votes,
		Answers:   q.Answers,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// ToResponse projects a question for the detail view
func ToResponse(q *question.Question) QuestionResponse {
	return QuestionResponse{
		QuestionPreview: ToPreview(q),
		Content:         q.Content,
		Email:           q.AuthorEmail,
	}
}
