package taskmanager

import (
	stderrors "errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// MessageResponse is the minimal body used for errors and confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly minted access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// TaskListResponse is the paginated envelope for task listings. TotalPages is
// derived from the full count, not from the slice the page happens to hold.
type TaskListResponse struct {
	Tasks      []*Task `json:"tasks"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
}

// ErrorHandlerConfig tunes the app level error handler.
type ErrorHandlerConfig struct {
	Logger Logger
}

// NewErrorHandler builds the fiber error handler that maps rich errors to
// HTTP statuses. Auth failures stay deliberately vague in the response body;
// the specific cause is only logged.
func NewErrorHandler(cfg ErrorHandlerConfig) fiber.ErrorHandler {
	logger := cfg.Logger
	if logger == nil {
		logger = defLogger{}
	}

	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(MessageResponse{
				Message: fiberErr.Message,
			})
		}

		var richErr *errors.Error
		if !errors.As(err, &richErr) {
			richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
				WithCode(errors.CodeInternal)
		}

		status := statusForCategory(richErr.Category)
		if status >= http.StatusInternalServerError {
			logger.Error(
				"request failed",
				"error", richErr.Message,
				"category", richErr.Category,
				"details", print.MaybePrettyJSON(richErr.Metadata),
			)
		} else {
			logger.Debug(
				"request rejected",
				"error", richErr.Message,
				"category", richErr.Category,
				"path", c.Path(),
			)
		}

		switch status {
		case http.StatusUnauthorized:
			return c.Status(status).JSON(MessageResponse{Message: "Not authorized"})
		case http.StatusInternalServerError:
			return c.Status(status).JSON(MessageResponse{Message: "An unexpected server error occurred"})
		case http.StatusBadRequest:
			if fields := richErr.ValidationMap(); len(fields) > 0 {
				return c.Status(status).JSON(fiber.Map{
					"message": richErr.Message,
					"fields":  fields,
				})
			}
			return c.Status(status).JSON(MessageResponse{Message: richErr.Message})
		default:
			return c.Status(status).JSON(MessageResponse{Message: richErr.Message})
		}
	}
}

func statusForCategory(category errors.Category) int {
	switch category {
	case errors.CategoryAuth:
		return http.StatusUnauthorized
	case errors.CategoryAuthz:
		return http.StatusForbidden
	case errors.CategoryValidation, errors.CategoryBadInput:
		return http.StatusBadRequest
	case errors.CategoryNotFound:
		return http.StatusNotFound
	case errors.CategoryConflict:
		return http.StatusConflict
	case errors.CategoryRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
