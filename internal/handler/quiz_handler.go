package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// NextQuestion godoc
// @Summary Get the next quiz question
// @Description Picks a random unasked question. question is null once the round is exhausted.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Previous questions and quiz category (id 0 for all)"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := parseJSONBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.NextQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
