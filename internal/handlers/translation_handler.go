package handlers

import (
	"errors"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/services"
	"mimarlik-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TranslationHandler struct {
	translations services.TranslationService
	logger       *logrus.Logger
}

func NewTranslationHandler(translations services.TranslationService, logger *logrus.Logger) *TranslationHandler {
	return &TranslationHandler{
		translations: translations,
		logger:       logger,
	}
}

func parseEntityKey(c *fiber.Ctx) (models.EntityName, uint, error) {
	entity, err := models.ParseEntityName(c.Params("entity"))
	if err != nil {
		return "", 0, err
	}
	id, err := parseID(c, "entityId")
	if err != nil {
		return "", 0, err
	}
	return entity, id, nil
}

// GetByEntity godoc
// @Summary Get every translation of an entity
// @Tags translations
// @Produce json
// @Param entity path string true "Entity (Category, Project, Photo)"
// @Param entityId path int true "Entity ID"
// @Success 200 {object} utils.StandardResponse "Translations"
// @Failure 400 {object} utils.StandardResponse "Invalid entity"
// @Router /translations/{entity}/{entityId} [get]
func (h *TranslationHandler) GetByEntity(c *fiber.Ctx) error {
	entity, id, err := parseEntityKey(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, sentence(err.Error()))
	}
	translations, err := h.translations.GetByEntity(c.Context(), entity, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve translations")
	}
	return utils.ListResponse(c, "Translations retrieved successfully", translations, len(translations))
}

// Get godoc
// @Summary Get one translated field
// @Tags translations
// @Produce json
// @Param entity path string true "Entity (Category, Project, Photo)"
// @Param entityId path int true "Entity ID"
// @Param field path string true "Field name"
// @Param languageId path int true "Language ID"
// @Success 200 {object} utils.StandardResponse{data=models.Translation}
// @Failure 400 {object} utils.StandardResponse "Invalid key"
// @Failure 404 {object} utils.StandardResponse "Translation not found"
// @Router /translations/{entity}/{entityId}/{field}/{languageId} [get]
func (h *TranslationHandler) Get(c *fiber.Ctx) error {
	entity, id, err := parseEntityKey(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, sentence(err.Error()))
	}
	field, err := models.ParseFieldName(entity, c.Params("field"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, sentence(err.Error()))
	}
	languageID, err := parseID(c, "languageId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid language ID")
	}

	translation, err := h.translations.Get(c.Context(), entity, id, field, languageID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve translation")
	}
	if translation == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Translation not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Translation retrieved successfully", translation)
}

// GetByLanguage godoc
// @Summary Get every translation in one language
// @Tags translations
// @Produce json
// @Param languageId path int true "Language ID"
// @Success 200 {object} utils.StandardResponse "Translations"
// @Router /translations/language/{languageId} [get]
func (h *TranslationHandler) GetByLanguage(c *fiber.Ctx) error {
	languageID, err := parseID(c, "languageId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid language ID")
	}
	translations, err := h.translations.GetByLanguage(c.Context(), languageID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve translations")
	}
	return utils.ListResponse(c, "Translations retrieved successfully", translations, len(translations))
}

// Resolve godoc
// @Summary Get the translated fields of an entity in one language
// @Description Fields without a translation fall back to the default language.
// @Tags translations
// @Produce json
// @Param entity path string true "Entity (Category, Project, Photo)"
// @Param entityId path int true "Entity ID"
// @Param lang query string true "Language code"
// @Success 200 {object} utils.StandardResponse "Field values keyed by field name"
// @Failure 404 {object} utils.StandardResponse "Language not found"
// @Router /translations/resolve/{entity}/{entityId} [get]
func (h *TranslationHandler) Resolve(c *fiber.Ctx) error {
	entity, id, err := parseEntityKey(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, sentence(err.Error()))
	}
	code := c.Query("lang")
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "lang is required")
	}
	values, err := h.translations.Resolve(c.Context(), entity, id, code)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to resolve translations")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Translations resolved successfully", values)
}

// Upsert godoc
// @Summary Create or replace one translation
// @Tags translations
// @Accept json
// @Produce json
// @Param translation body UpsertTranslationRequest true "Translation"
// @Success 200 {object} utils.StandardResponse{data=models.Translation}
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Language not found"
// @Router /translations [put]
func (h *TranslationHandler) Upsert(c *fiber.Ctx) error {
	var req UpsertTranslationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	translation, err := h.translations.Upsert(c.Context(), models.EntityName(req.EntityName), req.EntityID,
		models.FieldName(req.FieldName), req.LanguageID, req.Value)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to save translation")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Translation saved successfully", translation)
}

// Update godoc
// @Summary Change the value of one translation
// @Tags translations
// @Accept json
// @Produce json
// @Param id path int true "Translation ID"
// @Param translation body UpdateTranslationRequest true "New value"
// @Success 200 {object} utils.StandardResponse{data=models.Translation}
// @Failure 404 {object} utils.StandardResponse "Translation not found"
// @Router /translations/{id} [put]
func (h *TranslationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid translation ID")
	}
	var req UpdateTranslationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	translation, err := h.translations.UpdateValue(c.Context(), id, req.Value)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update translation")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Translation updated successfully", translation)
}

// BulkUpsert godoc
// @Summary Save several fields of one entity in one language
// @Description Fields are written one by one. When a write fails the earlier fields stay saved.
// @Tags translations
// @Accept json
// @Produce json
// @Param translations body BulkTranslationRequest true "Translations"
// @Success 200 {object} utils.StandardResponse "Translations saved"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 500 {object} utils.StandardResponse{data=BulkFailure} "Saved only partially"
// @Router /translations/bulk [put]
func (h *TranslationHandler) BulkUpsert(c *fiber.Ctx) error {
	var req BulkTranslationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	values := make(map[models.FieldName]string, len(req.Values))
	for field, value := range req.Values {
		values[models.FieldName(field)] = value
	}

	saved, err := h.translations.BulkUpsert(c.Context(), models.EntityName(req.EntityName), req.EntityID, req.LanguageID, values)
	var bulkErr *services.BulkUpsertError
	if errors.As(err, &bulkErr) {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"entity":    req.EntityName,
			"entity_id": req.EntityID,
		}).Error("Bulk translation save failed")
		return utils.ErrorWithDataResponse(c, fiber.StatusInternalServerError,
			"Saving stopped at field "+string(bulkErr.Failed), BulkFailure{
				Saved:       saved,
				Committed:   bulkErr.Committed,
				FailedField: bulkErr.Failed,
			})
	}
	if err != nil {
		return respondError(c, h.logger, err, "Failed to save translations")
	}
	return utils.ListResponse(c, "Translations saved successfully", saved, len(saved))
}

// Delete godoc
// @Summary Delete one translation
// @Tags translations
// @Produce json
// @Param id path int true "Translation ID"
// @Success 200 {object} utils.StandardResponse "Translation deleted"
// @Failure 404 {object} utils.StandardResponse "Translation not found"
// @Router /translations/{id} [delete]
func (h *TranslationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid translation ID")
	}
	if err := h.translations.Delete(c.Context(), id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete translation")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Translation deleted successfully", fiber.Map{"id": id})
}

// DeleteByEntity godoc
// @Summary Delete every translation of an entity
// @Tags translations
// @Produce json
// @Param entity path string true "Entity (Category, Project, Photo)"
// @Param entityId path int true "Entity ID"
// @Success 200 {object} utils.StandardResponse "Number of deleted translations"
// @Failure 400 {object} utils.StandardResponse "Invalid entity"
// @Router /translations/entity/{entity}/{entityId} [delete]
func (h *TranslationHandler) DeleteByEntity(c *fiber.Ctx) error {
	entity, id, err := parseEntityKey(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, sentence(err.Error()))
	}
	deleted, err := h.translations.DeleteByEntity(c.Context(), entity, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to delete translations")
	}
	h.logger.WithFields(logrus.Fields{
		"entity":    entity,
		"entity_id": id,
		"deleted":   deleted,
	}).Info("Entity translations deleted")
	return utils.SuccessResponse(c, fiber.StatusOK, "Translations deleted successfully", fiber.Map{"deleted": deleted})
}
