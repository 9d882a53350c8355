package utils

import (
	"mimarlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// StandardResponse represents the standard API response format
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ListMeta describes a list payload
type ListMeta struct {
	Total int `json:"total"`
}

// SuccessResponse sends a success response
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// SuccessWithMetaResponse sends a success response with list meta
func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data interface{}, meta interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// ListResponse sends a 200 list response with its item count
func ListResponse(c *fiber.Ctx, message string, data interface{}, total int) error {
	return SuccessWithMetaResponse(c, fiber.StatusOK, message, data, ListMeta{Total: total})
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	status := "error"
	if code >= 500 {
		status = "fail"
	}
	return c.Status(code).JSON(StandardResponse{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

// ErrorWithDataResponse sends an error response with additional data
func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	status := "error"
	if code >= 500 {
		status = "fail"
	}
	return c.Status(code).JSON(StandardResponse{
		Status:  status,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// DeletionStatusCode maps a deletion outcome to its HTTP status
func DeletionStatusCode(result *models.DeletionResult) int {
	switch result.Status {
	case models.DeletionNotFound:
		return fiber.StatusNotFound
	case models.DeletionBlocked:
		return fiber.StatusConflict
	case models.DeletionFailed:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusOK
	}
}

// DeletionResponse sends a deletion result with the status code its outcome implies
func DeletionResponse(c *fiber.Ctx, result *models.DeletionResult) error {
	code := DeletionStatusCode(result)
	if code >= 400 {
		return ErrorWithDataResponse(c, code, result.Message, result)
	}
	return SuccessResponse(c, code, result.Message, result)
}
