package handlers

import (
	"io"
	"strconv"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/services"
	"mimarlik-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PhotoHandler struct {
	photos    services.PhotoService
	deletions services.DeletionService
	logger    *logrus.Logger
}

func NewPhotoHandler(photos services.PhotoService, deletions services.DeletionService, logger *logrus.Logger) *PhotoHandler {
	return &PhotoHandler{
		photos:    photos,
		deletions: deletions,
		logger:    logger,
	}
}

// SliderRequest sets the caption shown on the homepage slider.
type SliderRequest struct {
	SliderText string `json:"slider_text" example:"Welcome"`
}

// GetAll godoc
// @Summary Get photos
// @Tags photos
// @Produce json
// @Param project_id query int false "Only photos of this project"
// @Success 200 {object} utils.StandardResponse "List of photos"
// @Router /photos [get]
func (h *PhotoHandler) GetAll(c *fiber.Ctx) error {
	projectID, err := parseOptionalID(c.Query("project_id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid project ID")
	}

	var photos []models.Photo
	if projectID != nil {
		photos, err = h.photos.GetByProject(c.Context(), *projectID)
	} else {
		photos, err = h.photos.GetAll(c.Context())
	}
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve photos")
	}
	return utils.ListResponse(c, "Photos retrieved successfully", photos, len(photos))
}

// GetByID godoc
// @Summary Get photo by ID
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} utils.StandardResponse "Photo details"
// @Failure 404 {object} utils.StandardResponse "Photo not found"
// @Router /photos/{id} [get]
func (h *PhotoHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid photo ID")
	}
	photo, err := h.photos.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve photo")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Photo retrieved successfully", photo)
}

// Upload godoc
// @Summary Upload a photo
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param project_id formData int false "Project ID"
// @Param alt_text formData string false "Alt text"
// @Param caption formData string false "Caption"
// @Param status formData int false "Status"
// @Param is_homepage_slider formData bool false "Show on the homepage slider"
// @Param slider_text formData string false "Slider text"
// @Success 201 {object} utils.StandardResponse "Photo uploaded successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid upload"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /photos [post]
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "file is required")
	}
	file, err := header.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read uploaded file")
	}

	req := services.PhotoUploadRequest{
		Data:       data,
		FileName:   header.Filename,
		AltText:    c.FormValue("alt_text"),
		Caption:    c.FormValue("caption"),
		SliderText: c.FormValue("slider_text"),
	}
	if req.ProjectID, err = parseOptionalID(c.FormValue("project_id")); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid project ID")
	}
	status, err := parseStatus(c.FormValue("status"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status")
	}
	if status != nil {
		req.Status = *status
	}
	if raw := c.FormValue("is_homepage_slider"); raw != "" {
		if req.IsHomepageSlider, err = strconv.ParseBool(raw); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid is_homepage_slider flag")
		}
	}

	photo, err := h.photos.Upload(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to upload photo")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Photo uploaded successfully", photo)
}

// Update godoc
// @Summary Update photo metadata
// @Description Photos that are not published are always taken off the slider.
// @Tags photos
// @Accept json
// @Produce json
// @Param id path int true "Photo ID"
// @Param photo body services.PhotoUpdateRequest true "Photo"
// @Success 200 {object} utils.StandardResponse "Photo updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Photo not found"
// @Router /photos/{id} [put]
func (h *PhotoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid photo ID")
	}
	var req services.PhotoUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	photo, err := h.photos.Update(c.Context(), id, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update photo")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Photo updated successfully", photo)
}

// CanDelete godoc
// @Summary List what deleting a photo removes
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 404 {object} utils.StandardResponse{data=models.DeletionResult}
// @Router /photos/{id}/can-delete [get]
func (h *PhotoHandler) CanDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid photo ID")
	}
	result, err := h.deletions.CanDeletePhoto(c.Context(), id)
	return respondDeletion(c, h.logger, result, err, "Failed to check photo dependencies")
}

// Delete godoc
// @Summary Delete a photo, its file and its translations
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 404 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 500 {object} utils.StandardResponse{data=models.DeletionResult}
// @Router /photos/{id} [delete]
func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid photo ID")
	}
	result, err := h.deletions.DeletePhotoSafely(c.Context(), id)
	return respondDeletion(c, h.logger, result, err, "Failed to delete photo")
}

// GetSlider godoc
// @Summary Get homepage slider photos
// @Tags slider
// @Produce json
// @Success 200 {object} utils.StandardResponse "Slider photos"
// @Router /slider [get]
func (h *PhotoHandler) GetSlider(c *fiber.Ctx) error {
	photos, err := h.photos.GetSlider(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve slider")
	}
	return utils.ListResponse(c, "Slider retrieved successfully", photos, len(photos))
}

// AddToSlider godoc
// @Summary Put a published photo on the homepage slider
// @Tags slider
// @Accept json
// @Produce json
// @Param id path int true "Photo ID"
// @Param slider body SliderRequest false "Slider text"
// @Success 200 {object} utils.StandardResponse "Photo added to slider"
// @Failure 404 {object} utils.StandardResponse "Photo not found"
// @Failure 409 {object} utils.StandardResponse "Photo is not published"
// @Router /slider/{id} [post]
func (h *PhotoHandler) AddToSlider(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid photo ID")
	}
	var req SliderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}
	photo, err := h.photos.AddToSlider(c.Context(), id, req.SliderText)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to add photo to slider")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Photo added to slider", photo)
}

// RemoveFromSlider godoc
// @Summary Take a photo off the homepage slider
// @Tags slider
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} utils.StandardResponse "Photo removed from slider"
// @Failure 404 {object} utils.StandardResponse "Photo not found"
// @Router /slider/{id} [delete]
func (h *PhotoHandler) RemoveFromSlider(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid photo ID")
	}
	photo, err := h.photos.RemoveFromSlider(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to remove photo from slider")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Photo removed from slider", photo)
}
