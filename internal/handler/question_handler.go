package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service: service,
	}
}

// ListQuestions godoc
// @Summary List questions page by page
// @Description Ten questions per page ordered by id, plus the category map
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	page := service.ParsePage(c.Query("page"))

	resp, err := h.service.ListQuestions(c.UserContext(), page)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PostQuestions godoc
// @Summary Search or create questions
// @Description With searchTerm the body is a case-insensitive search; otherwise it creates a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.QuestionsRequest true "Search or creation request"
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) PostQuestions(c *fiber.Ctx) error {
	var req dto.QuestionsRequest
	if err := parseJSONBody(c, &req); err != nil {
		return err
	}

	if req.ID != nil {
		logger.Get().Warn("Rejected question request carrying an id", zap.Int64("id", int64(*req.ID)))
		return domain.NewBadRequestError("id must not be supplied")
	}

	if req.IsSearch() {
		resp, err := h.service.SearchQuestions(c.UserContext(), *req.SearchTerm)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.DeleteQuestion(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
