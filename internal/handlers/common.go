package handlers

import (
	"errors"
	"strconv"
	"strings"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/services"
	"mimarlik-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var errInvalidID = errors.New("invalid id")

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func parseOptionalID(value string) (*uint, error) {
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, errInvalidID
	}
	v := uint(id)
	return &v, nil
}

func parseStatus(value string) (*models.ContentStatus, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || !models.ContentStatus(n).Valid() {
		return nil, errors.New("invalid status")
	}
	status := models.ContentStatus(n)
	return &status, nil
}

// respondError maps service errors onto the response envelope. Unexpected
// errors are logged and reported with the generic failure message.
func respondError(c *fiber.Ctx, log *logrus.Logger, err error, failure string) error {
	switch {
	case services.IsNotFound(err):
		return utils.ErrorResponse(c, fiber.StatusNotFound, sentence(err.Error()))
	case services.IsConflict(err):
		return utils.ErrorResponse(c, fiber.StatusConflict, sentence(err.Error()))
	case services.IsValidation(err):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, sentence(err.Error()))
	}

	log.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error(failure)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, failure)
}

// respondDeletion logs a check-phase store failure or sends the deletion result.
func respondDeletion(c *fiber.Ctx, log *logrus.Logger, result *models.DeletionResult, err error, failure string) error {
	if err != nil {
		return respondError(c, log, err, failure)
	}
	return utils.DeletionResponse(c, result)
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
