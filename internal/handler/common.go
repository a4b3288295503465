package handler

import (
	"bytes"
	"encoding/json"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// parseJSONBody decodes the request body into out. An empty body leaves out untouched.
func parseJSONBody(c *fiber.Ctx, out interface{}) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewError(domain.CodeBadRequest, "malformed JSON body", err)
	}
	return nil
}

// pathID reads an :id<int> route parameter.
func pathID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, domain.NewNotFoundError("invalid id")
	}
	return int64(id), nil
}
