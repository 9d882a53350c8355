package repository

import (
	"context"
	"errors"
	"time"

	"mimarlik-backend/internal/models"

	"gorm.io/gorm"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	Update(ctx context.Context, photo *models.Photo) error
	Delete(ctx context.Context, id uint) error
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
	FindByID(ctx context.Context, id uint) (*models.Photo, error)
	FindAll(ctx context.Context) ([]models.Photo, error)
	FindByProject(ctx context.Context, projectID uint) ([]models.Photo, error)
	FindSlider(ctx context.Context) ([]models.Photo, error)

	// RemoveProjectFromSlider takes every photo of the project off the homepage slider.
	RemoveProjectFromSlider(ctx context.Context, projectID uint) (int64, error)
}

type photoRepository struct {
	baseRepository
}

func newPhotoRepository(db *gorm.DB, timeout time.Duration) PhotoRepository {
	return &photoRepository{baseRepository{db: db, timeout: timeout}}
}

func (r *photoRepository) Create(ctx context.Context, photo *models.Photo) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Create(photo).Error
}

func (r *photoRepository) Update(ctx context.Context, photo *models.Photo) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Save(photo).Error
}

func (r *photoRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Delete(&models.Photo{}, id).Error
}

func (r *photoRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.conn(ctx).Where("id IN ?", ids).Delete(&models.Photo{})
	return result.RowsAffected, result.Error
}

func (r *photoRepository) FindByID(ctx context.Context, id uint) (*models.Photo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var photo models.Photo
	err := r.conn(ctx).First(&photo, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) FindAll(ctx context.Context) ([]models.Photo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var photos []models.Photo
	err := r.conn(ctx).Order("sort_order ASC, created_at DESC").Find(&photos).Error
	return photos, err
}

func (r *photoRepository) FindByProject(ctx context.Context, projectID uint) ([]models.Photo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var photos []models.Photo
	err := r.conn(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order ASC, id ASC").
		Find(&photos).Error
	return photos, err
}

func (r *photoRepository) FindSlider(ctx context.Context) ([]models.Photo, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var photos []models.Photo
	err := r.conn(ctx).
		Where("is_homepage_slider = ? AND status = ?", true, models.StatusPublished).
		Order("sort_order ASC, id ASC").
		Find(&photos).Error
	return photos, err
}

func (r *photoRepository) RemoveProjectFromSlider(ctx context.Context, projectID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.conn(ctx).Model(&models.Photo{}).
		Where("project_id = ? AND is_homepage_slider = ?", projectID, true).
		Updates(map[string]interface{}{
			"is_homepage_slider": false,
			"slider_text":        "",
		})
	return result.RowsAffected, result.Error
}
