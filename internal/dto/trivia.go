package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"trivia-api/internal/domain"
)

// FlexInt decodes a JSON number or a string holding an integer.
// Web clients often post <select> values as strings.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", s, err)
		}
		*f = FlexInt(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// QuestionResponse is the JSON shape of a question.
// @Description Trivia question
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestionResponse formats a domain question.
func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionResponses formats a list of domain questions. It never returns nil.
func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = NewQuestionResponse(q)
	}
	return out
}

// CategoriesResponse is returned by GET /categories.
type CategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionPageResponse is returned by GET /questions.
type QuestionPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      map[int64]string   `json:"categories"`
	CurrentCategory string             `json:"current_category"`
}

// SearchQuestionsResponse is returned by POST /questions with a searchTerm.
type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
}

// CategoryQuestionsResponse is returned by GET /categories/{id}/questions.
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory int64              `json:"current_category"`
	Questions       []QuestionResponse `json:"questions"`
}

// SuccessResponse acknowledges a write.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// QuestionsRequest is the body of POST /questions: either a search or a creation.
// @Description Search ({searchTerm}) or create ({question, answer, category, difficulty})
type QuestionsRequest struct {
	ID         *FlexInt `json:"id,omitempty"`
	SearchTerm *string  `json:"searchTerm,omitempty"`
	Question   *string  `json:"question,omitempty"`
	Answer     *string  `json:"answer,omitempty"`
	Category   *FlexInt `json:"category,omitempty"`
	Difficulty *FlexInt `json:"difficulty,omitempty"`
}

// IsSearch reports whether the request carries a search term, including an empty one.
func (r *QuestionsRequest) IsSearch() bool {
	return r.SearchTerm != nil
}

// QuizCategory identifies the quiz category; id 0 selects every category.
type QuizCategory struct {
	Type string   `json:"type,omitempty"`
	ID   *FlexInt `json:"id"`
}

// Filter converts the wire sentinel 0 into domain.AllCategories.
func (c QuizCategory) Filter() domain.CategoryFilter {
	if c.ID == nil || *c.ID == 0 {
		return domain.AllCategories()
	}
	return domain.SpecificCategory(int64(*c.ID))
}

// QuizRequest is the body of POST /quizzes.
type QuizRequest struct {
	PreviousQuestions []int64       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// QuizResponse is returned by POST /quizzes. Question is null once the round is exhausted.
type QuizResponse struct {
	Success        bool              `json:"success"`
	Question       *QuestionResponse `json:"question"`
	Previous       []int64           `json:"previous"`
	TotalQuestions int               `json:"total_questions"`
}

// IndexResponse lists the available endpoints.
type IndexResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// ErrorResponse is the body of every error status.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   int      `json:"error"`
	Details []string `json:"details,omitempty"`
}
