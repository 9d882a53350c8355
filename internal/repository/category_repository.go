package repository

import (
	"context"
	"errors"
	"time"

	"mimarlik-backend/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByParent(ctx context.Context, parentID *uint) ([]models.Category, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	HasChildren(ctx context.Context, id uint) (bool, error)
	HasProjects(ctx context.Context, id uint) (bool, error)

	// ParentLinks returns child id -> parent id for every category that has a parent.
	ParentLinks(ctx context.Context) (map[uint]uint, error)
}

type categoryRepository struct {
	baseRepository
}

func newCategoryRepository(db *gorm.DB, timeout time.Duration) CategoryRepository {
	return &categoryRepository{baseRepository{db: db, timeout: timeout}}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Omit("Children").Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Omit("Children").Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Delete(&models.Category{}, id).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var category models.Category
	err := r.conn(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var category models.Category
	err := r.conn(ctx).
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, title ASC")
		}).
		Where("slug = ?", slug).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var categories []models.Category
	err := r.conn(ctx).Order("sort_order ASC, title ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) FindByParent(ctx context.Context, parentID *uint) ([]models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.conn(ctx).Order("sort_order ASC, title ASC")
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	var categories []models.Category
	err := query.Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	query := r.conn(ctx).Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) HasChildren(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	if err := r.conn(ctx).Model(&models.Category{}).Where("parent_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) HasProjects(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	if err := r.conn(ctx).Model(&models.Project{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) ParentLinks(ctx context.Context) (map[uint]uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	type link struct {
		ID       uint
		ParentID uint
	}
	var links []link
	err := r.conn(ctx).Model(&models.Category{}).
		Select("id, parent_id").
		Where("parent_id IS NOT NULL").
		Scan(&links).Error
	if err != nil {
		return nil, err
	}

	parents := make(map[uint]uint, len(links))
	for _, l := range links {
		parents[l.ID] = l.ParentID
	}
	return parents, nil
}
