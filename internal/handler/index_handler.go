package handler

import (
	"trivia-api/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// IndexHandler lists the trivia endpoints under the configured prefix.
type IndexHandler struct {
	endpoints map[string]string
}

func NewIndexHandler(prefix string) *IndexHandler {
	return &IndexHandler{
		endpoints: map[string]string{
			"categories":         "GET " + prefix + "/categories",
			"category_questions": "GET " + prefix + "/categories/{id}/questions",
			"questions":          "GET " + prefix + "/questions?page={page}",
			"search_or_create":   "POST " + prefix + "/questions",
			"delete_question":    "DELETE " + prefix + "/questions/{id}",
			"quizzes":            "POST " + prefix + "/quizzes",
		},
	}
}

// Index godoc
// @Summary API index
// @Tags meta
// @Produce json
// @Success 200 {object} dto.IndexResponse
// @Router / [get]
func (h *IndexHandler) Index(c *fiber.Ctx) error {
	return c.JSON(dto.IndexResponse{
		Success:   true,
		Message:   "Welcome to the trivia API",
		Endpoints: h.endpoints,
	})
}
