package utils

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/property-search-service/internal/pkg/errors"
)

// ErrorResponse - тело ответа при ошибке: человекочитаемое сообщение
// и стабильный машинный код
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SendError отправляет ошибку клиенту. AppError транслируется в свой
// HTTP-статус, ошибки валидации - в 400, остальное - в 500 без деталей
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error:   appErr.Message,
			Code:    appErr.Code,
			Details: appErr.Details,
		})
	}

	if _, ok := err.(playground.ValidationErrors); ok {
		return c.Status(errors.ErrInvalidRequest.StatusCode).JSON(ErrorResponse{
			Error: err.Error(),
			Code:  errors.ErrInvalidRequest.Code,
		})
	}

	// Unknown error - return 500
	return c.Status(errors.ErrInternalServer.StatusCode).JSON(ErrorResponse{
		Error: errors.ErrInternalServer.Message,
		Code:  errors.ErrInternalServer.Code,
	})
}
