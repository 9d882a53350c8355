package repository

import (
	"context"
	"errors"
	"time"

	"mimarlik-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectFilter narrows FindAll. Nil fields are not applied.
type ProjectFilter struct {
	Status     *models.ContentStatus
	CategoryID *uint
	Featured   *bool
}

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	FindWithDetails(ctx context.Context, id uint) (*models.Project, error)
	FindBySlug(ctx context.Context, slug string) (*models.Project, error)
	FindAll(ctx context.Context, filter ProjectFilter) ([]models.Project, error)
	FindByCategory(ctx context.Context, categoryID uint) ([]models.Project, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
}

type projectRepository struct {
	baseRepository
}

func newProjectRepository(db *gorm.DB, timeout time.Duration) ProjectRepository {
	return &projectRepository{baseRepository{db: db, timeout: timeout}}
}

func bySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, id ASC")
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Omit(clause.Associations).Create(project).Error
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Omit(clause.Associations).Save(project).Error
}

func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Delete(&models.Project{}, id).Error
}

func (r *projectRepository) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var project models.Project
	err := r.conn(ctx).First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindWithDetails(ctx context.Context, id uint) (*models.Project, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var project models.Project
	err := r.conn(ctx).
		Preload("Category").
		Preload("Photos", bySortOrder).
		Preload("ContentBlocks", bySortOrder).
		First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var project models.Project
	err := r.conn(ctx).
		Preload("Category").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return bySortOrder(db.Where("status = ?", models.StatusPublished))
		}).
		Preload("ContentBlocks", bySortOrder).
		Where("slug = ?", slug).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindAll(ctx context.Context, filter ProjectFilter) ([]models.Project, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.conn(ctx).Model(&models.Project{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}

	var projects []models.Project
	err := query.Preload("Category").Order("sort_order ASC, created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) FindByCategory(ctx context.Context, categoryID uint) ([]models.Project, error) {
	return r.FindAll(ctx, ProjectFilter{CategoryID: &categoryID})
}

func (r *projectRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	query := r.conn(ctx).Model(&models.Project{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
