package handlers

import (
	"strconv"

	"mimarlik-backend/internal/repository"
	"mimarlik-backend/internal/services"
	"mimarlik-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ProjectHandler struct {
	projects  services.ProjectService
	deletions services.DeletionService
	logger    *logrus.Logger
}

func NewProjectHandler(projects services.ProjectService, deletions services.DeletionService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects:  projects,
		deletions: deletions,
		logger:    logger,
	}
}

// GetAll godoc
// @Summary Get projects
// @Tags projects
// @Produce json
// @Param status query int false "Status (0 draft, 1 published, 2 hidden)"
// @Param category_id query int false "Category ID"
// @Param featured query bool false "Only featured projects"
// @Success 200 {object} utils.StandardResponse "List of projects"
// @Failure 400 {object} utils.StandardResponse "Invalid filter"
// @Router /projects [get]
func (h *ProjectHandler) GetAll(c *fiber.Ctx) error {
	var filter repository.ProjectFilter

	status, err := parseStatus(c.Query("status"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status")
	}
	filter.Status = status

	categoryID, err := parseOptionalID(c.Query("category_id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID")
	}
	filter.CategoryID = categoryID

	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid featured flag")
		}
		filter.Featured = &featured
	}

	projects, err := h.projects.GetAll(c.Context(), filter)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve projects")
	}
	return utils.ListResponse(c, "Projects retrieved successfully", projects, len(projects))
}

// GetFeatured godoc
// @Summary Get published featured projects
// @Tags projects
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of featured projects"
// @Router /projects/featured [get]
func (h *ProjectHandler) GetFeatured(c *fiber.Ctx) error {
	projects, err := h.projects.GetFeatured(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve featured projects")
	}
	return utils.ListResponse(c, "Featured projects retrieved successfully", projects, len(projects))
}

// GetByID godoc
// @Summary Get project by ID
// @Description Includes the category, photos and content blocks.
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} utils.StandardResponse "Project details"
// @Failure 404 {object} utils.StandardResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid project ID")
	}
	project, err := h.projects.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve project")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Project retrieved successfully", project)
}

// GetBySlug godoc
// @Summary Get project by slug
// @Tags projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} utils.StandardResponse "Project details"
// @Failure 404 {object} utils.StandardResponse "Project not found"
// @Router /projects/slug/{slug} [get]
func (h *ProjectHandler) GetBySlug(c *fiber.Ctx) error {
	project, err := h.projects.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve project")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Project retrieved successfully", project)
}

type GenerateSlugRequest struct {
	Title     string `json:"title" example:"Şehir Evi"`
	ExcludeID uint   `json:"exclude_id" example:"0"`
}

// GenerateSlug godoc
// @Summary Preview the slug for a project title
// @Description exclude_id skips the project being edited when checking for collisions.
// @Tags projects
// @Accept json
// @Produce json
// @Param request body GenerateSlugRequest true "Title"
// @Success 200 {object} utils.StandardResponse "Generated slug"
// @Failure 400 {object} utils.StandardResponse "Title has no usable characters"
// @Router /projects/generate-slug [post]
func (h *ProjectHandler) GenerateSlug(c *fiber.Ctx) error {
	var req GenerateSlugRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	slug, err := h.projects.GenerateSlug(c.Context(), req.Title, req.ExcludeID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to generate slug")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Slug generated successfully", fiber.Map{"slug": slug})
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body services.ProjectRequest true "Project"
// @Success 201 {object} utils.StandardResponse "Project created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 404 {object} utils.StandardResponse "Category not found"
// @Router /projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req services.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	project, err := h.projects.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create project")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Project created successfully", project)
}

// Update godoc
// @Summary Update a project
// @Description Content blocks are replaced by the ones in the request.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body services.ProjectRequest true "Project"
// @Success 200 {object} utils.StandardResponse "Project updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Project not found"
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid project ID")
	}
	var req services.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	project, err := h.projects.Update(c.Context(), id, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update project")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Project updated successfully", project)
}

// CanDelete godoc
// @Summary List what deleting a project removes
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 404 {object} utils.StandardResponse{data=models.DeletionResult}
// @Router /projects/{id}/can-delete [get]
func (h *ProjectHandler) CanDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid project ID")
	}
	result, err := h.deletions.CanDeleteProject(c.Context(), id)
	return respondDeletion(c, h.logger, result, err, "Failed to check project dependencies")
}

// Delete godoc
// @Summary Delete a project with its photos, content blocks and translations
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 404 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 500 {object} utils.StandardResponse{data=models.DeletionResult}
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid project ID")
	}
	result, err := h.deletions.DeleteProjectSafely(c.Context(), id)
	return respondDeletion(c, h.logger, result, err, "Failed to delete project")
}
