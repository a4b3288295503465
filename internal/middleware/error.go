package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "Internal Server Error",
}

// ErrorHandler is a centralized error handling middleware. A DomainError decides the status even when it
// wraps validation errors.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger := logger.Get()
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("request_id", RequestIDFromCtx(c)),
		}

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := mapDomainErrorToHTTPStatus(domainErr)
			fields = append(fields,
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
				zap.Error(domainErr.Err),
			)
			if status >= http.StatusInternalServerError {
				logger.Error("Domain error occurred", fields...)
			} else {
				logger.Warn("Domain error occurred", fields...)
			}
			return writeError(c, status, nil)
		}

		// Handle validation errors
		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			logger.Warn("Validation errors occurred", append(fields, zap.Strings("fields", validationErrs.Fields()))...)
			return writeError(c, http.StatusUnprocessableEntity, validationErrs.Fields())
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			logger.Warn("Fiber error occurred", append(fields,
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)...)
			return writeError(c, fiberErr.Code, nil)
		}

		// Handle unknown errors
		logger.Error("Unknown error occurred", append(fields, zap.Error(err))...)
		return writeError(c, http.StatusInternalServerError, nil)
	}
}

func writeError(c *fiber.Ctx, status int, details []string) error {
	message, ok := statusMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	return c.Status(status).JSON(dto.ErrorResponse{
		Success: false,
		Message: message,
		Error:   status,
		Details: details,
	})
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// handleChainError renders err through the app's error handler so outer middleware observes the final status.
func handleChainError(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if herr := c.App().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}
