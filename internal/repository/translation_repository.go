package repository

import (
	"context"
	"errors"
	"time"

	"mimarlik-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TranslationRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Translation, error)
	FindByEntity(ctx context.Context, entity models.EntityName, entityID uint) ([]models.Translation, error)
	FindByKey(ctx context.Context, entity models.EntityName, entityID uint, field models.FieldName, languageID uint) (*models.Translation, error)
	FindByLanguage(ctx context.Context, languageID uint) ([]models.Translation, error)
	CountByEntity(ctx context.Context, entity models.EntityName, entityID uint) (int64, error)
	CountByLanguage(ctx context.Context, languageID uint) (int64, error)

	// Upsert inserts the row or, when its key already exists, replaces value and updated_at.
	Upsert(ctx context.Context, translation *models.Translation) error

	Delete(ctx context.Context, id uint) error
	DeleteByEntity(ctx context.Context, entity models.EntityName, entityID uint) (int64, error)
	DeleteByLanguage(ctx context.Context, languageID uint) (int64, error)
}

type translationRepository struct {
	baseRepository
}

func newTranslationRepository(db *gorm.DB, timeout time.Duration) TranslationRepository {
	return &translationRepository{baseRepository{db: db, timeout: timeout}}
}

var translationKeyColumns = []clause.Column{
	{Name: "entity_name"},
	{Name: "entity_id"},
	{Name: "field_name"},
	{Name: "language_id"},
}

func (r *translationRepository) FindByID(ctx context.Context, id uint) (*models.Translation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translation models.Translation
	err := r.conn(ctx).First(&translation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &translation, nil
}

func (r *translationRepository) FindByEntity(ctx context.Context, entity models.EntityName, entityID uint) ([]models.Translation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translations []models.Translation
	err := r.conn(ctx).
		Preload("Language").
		Where("entity_name = ? AND entity_id = ?", entity, entityID).
		Order("language_id ASC, field_name ASC").
		Find(&translations).Error
	return translations, err
}

func (r *translationRepository) FindByKey(ctx context.Context, entity models.EntityName, entityID uint, field models.FieldName, languageID uint) (*models.Translation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translation models.Translation
	err := r.conn(ctx).
		Where("entity_name = ? AND entity_id = ? AND field_name = ? AND language_id = ?",
			entity, entityID, field, languageID).
		First(&translation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &translation, nil
}

func (r *translationRepository) FindByLanguage(ctx context.Context, languageID uint) ([]models.Translation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translations []models.Translation
	err := r.conn(ctx).
		Where("language_id = ?", languageID).
		Order("entity_name ASC, entity_id ASC, field_name ASC").
		Find(&translations).Error
	return translations, err
}

func (r *translationRepository) CountByEntity(ctx context.Context, entity models.EntityName, entityID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.conn(ctx).Model(&models.Translation{}).
		Where("entity_name = ? AND entity_id = ?", entity, entityID).
		Count(&count).Error
	return count, err
}

func (r *translationRepository) CountByLanguage(ctx context.Context, languageID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.conn(ctx).Model(&models.Translation{}).
		Where("language_id = ?", languageID).
		Count(&count).Error
	return count, err
}

func (r *translationRepository) Upsert(ctx context.Context, translation *models.Translation) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Clauses(clause.OnConflict{
		Columns:   translationKeyColumns,
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(translation).Error
}

func (r *translationRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.conn(ctx).Delete(&models.Translation{}, id).Error
}

func (r *translationRepository) DeleteByEntity(ctx context.Context, entity models.EntityName, entityID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.conn(ctx).
		Where("entity_name = ? AND entity_id = ?", entity, entityID).
		Delete(&models.Translation{})
	return result.RowsAffected, result.Error
}

func (r *translationRepository) DeleteByLanguage(ctx context.Context, languageID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.conn(ctx).
		Where("language_id = ?", languageID).
		Delete(&models.Translation{})
	return result.RowsAffected, result.Error
}
