package repository

import (
	"context"
	"errors"
	"time"

	"mimarlik-backend/internal/models"

	"gorm.io/gorm"
)

type LanguageRepository interface {
	Create(ctx context.Context, language *models.Language) error
	Update(ctx context.Context, language *models.Language) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Language, error)
	FindByCode(ctx context.Context, code string) (*models.Language, error)
	FindAll(ctx context.Context) ([]models.Language, error)
	FindActive(ctx context.Context) ([]models.Language, error)
	FindDefault(ctx context.Context) (*models.Language, error)
	CodeExists(ctx context.Context, code string, excludeID uint) (bool, error)
	Count(ctx context.Context) (int64, error)

	// ClearDefault unsets the default flag on every row.
	ClearDefault(ctx context.Context) error
	// MarkDefault sets the default flag on one row and reports whether it existed.
	MarkDefault(ctx context.Context, id uint) (bool, error)
}

type languageRepository struct {
	baseRepository
}

func newLanguageRepository(db *gorm.DB, timeout time.Duration) LanguageRepository {
	return &languageRepository{baseRepository{db: db, timeout: timeout}}
}

func (r *languageRepository) Create(ctx context.Context, language *models.Language) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Create(language).Error
}

func (r *languageRepository) Update(ctx context.Context, language *models.Language) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Save(language).Error
}

func (r *languageRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Delete(&models.Language{}, id).Error
}

func (r *languageRepository) FindByID(ctx context.Context, id uint) (*models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var language models.Language
	err := r.conn(ctx).First(&language, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) FindByCode(ctx context.Context, code string) (*models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var language models.Language
	err := r.conn(ctx).Where("code = ?", code).First(&language).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) FindAll(ctx context.Context) ([]models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var languages []models.Language
	err := r.conn(ctx).Order("sort_order ASC, name ASC").Find(&languages).Error
	return languages, err
}

func (r *languageRepository) FindActive(ctx context.Context) ([]models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var languages []models.Language
	err := r.conn(ctx).
		Where("status = ?", models.StatusPublished).
		Order("sort_order ASC, name ASC").
		Find(&languages).Error
	return languages, err
}

func (r *languageRepository) FindDefault(ctx context.Context) (*models.Language, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var language models.Language
	err := r.conn(ctx).
		Where("is_default = ? AND status = ?", true, models.StatusPublished).
		First(&language).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) CodeExists(ctx context.Context, code string, excludeID uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	query := r.conn(ctx).Model(&models.Language{}).Where("code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *languageRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.conn(ctx).Model(&models.Language{}).Count(&count).Error
	return count, err
}

func (r *languageRepository) ClearDefault(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// Unfiltered so a row marked by a concurrent transaction is re-cleared once it commits.
	return r.conn(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.Language{}).
		Update("is_default", false).Error
}

func (r *languageRepository) MarkDefault(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.conn(ctx).Model(&models.Language{}).
		Where("id = ?", id).
		Update("is_default", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
