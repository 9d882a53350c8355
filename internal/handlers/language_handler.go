package handlers

import (
	"mimarlik-backend/internal/services"
	"mimarlik-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LanguageHandler struct {
	languages services.LanguageService
	deletions services.DeletionService
	logger    *logrus.Logger
}

func NewLanguageHandler(languages services.LanguageService, deletions services.DeletionService, logger *logrus.Logger) *LanguageHandler {
	return &LanguageHandler{
		languages: languages,
		deletions: deletions,
		logger:    logger,
	}
}

// GetAll godoc
// @Summary Get all languages
// @Tags languages
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of languages"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /languages [get]
func (h *LanguageHandler) GetAll(c *fiber.Ctx) error {
	languages, err := h.languages.GetAll(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve languages")
	}
	return utils.ListResponse(c, "Languages retrieved successfully", languages, len(languages))
}

// GetActive godoc
// @Summary Get published languages
// @Tags languages
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of published languages"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /languages/active [get]
func (h *LanguageHandler) GetActive(c *fiber.Ctx) error {
	languages, err := h.languages.GetActive(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve languages")
	}
	return utils.ListResponse(c, "Languages retrieved successfully", languages, len(languages))
}

// GetDefault godoc
// @Summary Get the default language
// @Tags languages
// @Produce json
// @Success 200 {object} utils.StandardResponse "Default language"
// @Failure 404 {object} utils.StandardResponse "No default language"
// @Router /languages/default [get]
func (h *LanguageHandler) GetDefault(c *fiber.Ctx) error {
	language, err := h.languages.GetDefault(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve default language")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Default language retrieved successfully", language)
}

// GetByID godoc
// @Summary Get language by ID
// @Tags languages
// @Produce json
// @Param id path int true "Language ID"
// @Success 200 {object} utils.StandardResponse "Language details"
// @Failure 400 {object} utils.StandardResponse "Invalid language ID"
// @Failure 404 {object} utils.StandardResponse "Language not found"
// @Router /languages/{id} [get]
func (h *LanguageHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid language ID")
	}
	language, err := h.languages.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve language")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Language retrieved successfully", language)
}

// GetByCode godoc
// @Summary Get language by code
// @Tags languages
// @Produce json
// @Param code path string true "Language code"
// @Success 200 {object} utils.StandardResponse "Language details"
// @Failure 404 {object} utils.StandardResponse "Language not found"
// @Router /languages/code/{code} [get]
func (h *LanguageHandler) GetByCode(c *fiber.Ctx) error {
	language, err := h.languages.GetByCode(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve language")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Language retrieved successfully", language)
}

// Create godoc
// @Summary Create a language
// @Description The first language, or one created with is_default, becomes the default language.
// @Tags languages
// @Accept json
// @Produce json
// @Param language body services.LanguageRequest true "Language"
// @Success 201 {object} utils.StandardResponse "Language created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 409 {object} utils.StandardResponse "Language code already exists"
// @Router /languages [post]
func (h *LanguageHandler) Create(c *fiber.Ctx) error {
	var req services.LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	language, err := h.languages.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create language")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Language created successfully", language)
}

// Update godoc
// @Summary Update a language
// @Tags languages
// @Accept json
// @Produce json
// @Param id path int true "Language ID"
// @Param language body services.LanguageRequest true "Language"
// @Success 200 {object} utils.StandardResponse "Language updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Language not found"
// @Failure 409 {object} utils.StandardResponse "Default language cannot be unpublished"
// @Router /languages/{id} [put]
func (h *LanguageHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid language ID")
	}
	var req services.LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	language, err := h.languages.Update(c.Context(), id, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update language")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Language updated successfully", language)
}

// SetDefault godoc
// @Summary Make a language the default
// @Tags languages
// @Produce json
// @Param id path int true "Language ID"
// @Success 200 {object} utils.StandardResponse "Default language changed"
// @Failure 404 {object} utils.StandardResponse "Language not found"
// @Failure 409 {object} utils.StandardResponse "Language is not published"
// @Router /languages/{id}/default [post]
func (h *LanguageHandler) SetDefault(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid language ID")
	}
	language, err := h.languages.SetDefault(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to set default language")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Default language changed successfully", language)
}

// CanDelete godoc
// @Summary Check whether a language can be deleted
// @Tags languages
// @Produce json
// @Param id path int true "Language ID"
// @Success 200 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 404 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 409 {object} utils.StandardResponse{data=models.DeletionResult}
// @Router /languages/{id}/can-delete [get]
func (h *LanguageHandler) CanDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid language ID")
	}
	result, err := h.deletions.CanDeleteLanguage(c.Context(), id)
	return respondDeletion(c, h.logger, result, err, "Failed to check language dependencies")
}

// Delete godoc
// @Summary Delete a language and its translations
// @Tags languages
// @Produce json
// @Param id path int true "Language ID"
// @Success 200 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 404 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 409 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 500 {object} utils.StandardResponse{data=models.DeletionResult}
// @Router /languages/{id} [delete]
func (h *LanguageHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid language ID")
	}
	result, err := h.deletions.DeleteLanguageSafely(c.Context(), id)
	return respondDeletion(c, h.logger, result, err, "Failed to delete language")
}
