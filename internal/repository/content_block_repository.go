package repository

import (
	"context"
	"time"

	"mimarlik-backend/internal/models"

	"gorm.io/gorm"
)

type ContentBlockRepository interface {
	CreateBatch(ctx context.Context, blocks []models.ContentBlock) error
	FindByProject(ctx context.Context, projectID uint) ([]models.ContentBlock, error)
	DeleteByProject(ctx context.Context, projectID uint) (int64, error)
}

type contentBlockRepository struct {
	baseRepository
}

func newContentBlockRepository(db *gorm.DB, timeout time.Duration) ContentBlockRepository {
	return &contentBlockRepository{baseRepository{db: db, timeout: timeout}}
}

func (r *contentBlockRepository) CreateBatch(ctx context.Context, blocks []models.ContentBlock) error {
	if len(blocks) == 0 {
		return nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Create(&blocks).Error
}

func (r *contentBlockRepository) FindByProject(ctx context.Context, projectID uint) ([]models.ContentBlock, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var blocks []models.ContentBlock
	err := r.conn(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order ASC, id ASC").
		Find(&blocks).Error
	return blocks, err
}

func (r *contentBlockRepository) DeleteByProject(ctx context.Context, projectID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.conn(ctx).Where("project_id = ?", projectID).Delete(&models.ContentBlock{})
	return result.RowsAffected, result.Error
}
