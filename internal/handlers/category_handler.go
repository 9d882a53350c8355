package handlers

import (
	"mimarlik-backend/internal/services"
	"mimarlik-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	categories services.CategoryService
	deletions  services.DeletionService
	logger     *logrus.Logger
}

func NewCategoryHandler(categories services.CategoryService, deletions services.DeletionService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		deletions:  deletions,
		logger:     logger,
	}
}

// GetAll godoc
// @Summary Get categories
// @Description Without parent_id every category is returned. parent_id=0 returns the root categories.
// @Tags categories
// @Produce json
// @Param parent_id query int false "Parent category ID"
// @Success 200 {object} utils.StandardResponse "List of categories"
// @Failure 400 {object} utils.StandardResponse "Invalid parent ID"
// @Router /categories [get]
func (h *CategoryHandler) GetAll(c *fiber.Ctx) error {
	ctx := c.Context()

	raw := c.Query("parent_id")
	if raw == "" {
		categories, err := h.categories.GetAll(ctx)
		if err != nil {
			return respondError(c, h.logger, err, "Failed to retrieve categories")
		}
		return utils.ListResponse(c, "Categories retrieved successfully", categories, len(categories))
	}

	parentID, err := parseOptionalID(raw)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid parent ID")
	}
	if *parentID == 0 {
		parentID = nil
	}
	categories, err := h.categories.GetByParent(ctx, parentID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve categories")
	}
	return utils.ListResponse(c, "Categories retrieved successfully", categories, len(categories))
}

// GetTree godoc
// @Summary Get the category tree
// @Description Root categories with their descendants nested under children.
// @Tags categories
// @Produce json
// @Success 200 {object} utils.StandardResponse "Category tree"
// @Router /categories/with-children [get]
func (h *CategoryHandler) GetTree(c *fiber.Ctx) error {
	tree, err := h.categories.GetTree(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve categories")
	}
	return utils.ListResponse(c, "Categories retrieved successfully", tree, len(tree))
}

// GetByID godoc
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.StandardResponse "Category details"
// @Failure 404 {object} utils.StandardResponse "Category not found"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID")
	}
	category, err := h.categories.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve category")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Category retrieved successfully", category)
}

// GetBySlug godoc
// @Summary Get category by slug
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} utils.StandardResponse "Category details"
// @Failure 404 {object} utils.StandardResponse "Category not found"
// @Router /categories/slug/{slug} [get]
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	category, err := h.categories.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve category")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Category retrieved successfully", category)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body services.CategoryRequest true "Category"
// @Success 201 {object} utils.StandardResponse "Category created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 404 {object} utils.StandardResponse "Parent category not found"
// @Router /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req services.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	category, err := h.categories.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create category")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "Category created successfully", category)
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body services.CategoryRequest true "Category"
// @Success 200 {object} utils.StandardResponse "Category updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Category not found"
// @Failure 409 {object} utils.StandardResponse "Parent would create a cycle"
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID")
	}
	var req services.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	category, err := h.categories.Update(c.Context(), id, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update category")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Category updated successfully", category)
}

// CanDelete godoc
// @Summary Check whether a category can be deleted
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 404 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 409 {object} utils.StandardResponse{data=models.DeletionResult}
// @Router /categories/{id}/can-delete [get]
func (h *CategoryHandler) CanDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID")
	}
	result, err := h.deletions.CanDeleteCategory(c.Context(), id)
	return respondDeletion(c, h.logger, result, err, "Failed to check category dependencies")
}

// Delete godoc
// @Summary Delete a category and its translations
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 404 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 409 {object} utils.StandardResponse{data=models.DeletionResult}
// @Failure 500 {object} utils.StandardResponse{data=models.DeletionResult}
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID")
	}
	result, err := h.deletions.DeleteCategorySafely(c.Context(), id)
	return respondDeletion(c, h.logger, result, err, "Failed to delete category")
}
