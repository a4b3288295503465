package validation

import (
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuestion checks the fields a new question cannot do without.
// Difficulty is optional and the category is not checked for existence here.
func (v *Validator) ValidateCreateQuestion(req *dto.QuestionsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if isBlank(req.Question) {
		errors = append(errors, domain.NewMissingFieldError("question"))
	}
	if isBlank(req.Answer) {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	}
	if req.Category == nil {
		errors = append(errors, domain.NewMissingFieldError("category"))
	}

	return errors
}

// ValidateQuizRequest checks that the request names a quiz category.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.QuizCategory == nil {
		errors = append(errors, domain.NewMissingFieldError("quiz_category"))
	} else if req.QuizCategory.ID == nil {
		errors = append(errors, domain.NewMissingFieldError("quiz_category.id"))
	}

	return errors
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
