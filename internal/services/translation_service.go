package services

import (
	"context"
	"fmt"
	"sort"

	"mimarlik-backend/internal/models"
	"mimarlik-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type TranslationService interface {
	GetByEntity(ctx context.Context, entity models.EntityName, entityID uint) ([]models.Translation, error)
	// Get returns nil without an error when no translation exists for the key.
	Get(ctx context.Context, entity models.EntityName, entityID uint, field models.FieldName, languageID uint) (*models.Translation, error)
	GetByLanguage(ctx context.Context, languageID uint) ([]models.Translation, error)

	Upsert(ctx context.Context, entity models.EntityName, entityID uint, field models.FieldName, languageID uint, value string) (*models.Translation, error)
	// BulkUpsert writes every field for one entity and language. Each field is
	// its own write; a failure leaves the earlier fields committed.
	BulkUpsert(ctx context.Context, entity models.EntityName, entityID uint, languageID uint, values map[models.FieldName]string) ([]models.Translation, error)

	// UpdateValue replaces the value of an existing translation.
	UpdateValue(ctx context.Context, id uint, value string) (*models.Translation, error)
	Delete(ctx context.Context, id uint) error
	DeleteByEntity(ctx context.Context, entity models.EntityName, entityID uint) (int64, error)

	// Resolve returns the translated fields of one entity in the language with
	// the given code. Fields missing in that language fall back to the default language.
	Resolve(ctx context.Context, entity models.EntityName, entityID uint, languageCode string) (map[models.FieldName]string, error)
}

type translationService struct {
	translations repository.TranslationRepository
	languages    repository.LanguageRepository
	logger       *logrus.Logger
}

func NewTranslationService(repos repository.Repositories, logger *logrus.Logger) TranslationService {
	return &translationService{
		translations: repos.Translations,
		languages:    repos.Languages,
		logger:       logger,
	}
}

func (s *translationService) GetByEntity(ctx context.Context, entity models.EntityName, entityID uint) ([]models.Translation, error) {
	if !entity.Valid() {
		return nil, fmt.Errorf("%w: unknown entity %q", ErrValidation, entity)
	}
	return s.translations.FindByEntity(ctx, entity, entityID)
}

func (s *translationService) Get(ctx context.Context, entity models.EntityName, entityID uint, field models.FieldName, languageID uint) (*models.Translation, error) {
	if err := checkField(entity, field); err != nil {
		return nil, err
	}
	return s.translations.FindByKey(ctx, entity, entityID, field, languageID)
}

func (s *translationService) GetByLanguage(ctx context.Context, languageID uint) ([]models.Translation, error) {
	return s.translations.FindByLanguage(ctx, languageID)
}

func (s *translationService) Upsert(ctx context.Context, entity models.EntityName, entityID uint, field models.FieldName, languageID uint, value string) (*models.Translation, error) {
	if err := checkField(entity, field); err != nil {
		return nil, err
	}
	if err := s.requireLanguage(ctx, languageID); err != nil {
		return nil, err
	}
	return s.upsert(ctx, entity, entityID, field, languageID, value)
}

func (s *translationService) upsert(ctx context.Context, entity models.EntityName, entityID uint, field models.FieldName, languageID uint, value string) (*models.Translation, error) {
	translation := &models.Translation{
		EntityName: entity,
		EntityID:   entityID,
		FieldName:  field,
		LanguageID: languageID,
		Value:      value,
	}
	if err := s.translations.Upsert(ctx, translation); err != nil {
		return nil, fmt.Errorf("failed to upsert translation: %w", err)
	}

	// On conflict the insert does not report the existing row's id.
	stored, err := s.translations.FindByKey(ctx, entity, entityID, field, languageID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload translation: %w", err)
	}
	if stored == nil {
		return nil, ErrTranslationNotFound
	}
	return stored, nil
}

func (s *translationService) BulkUpsert(ctx context.Context, entity models.EntityName, entityID uint, languageID uint, values map[models.FieldName]string) ([]models.Translation, error) {
	if !entity.Valid() {
		return nil, fmt.Errorf("%w: unknown entity %q", ErrValidation, entity)
	}
	fields := make([]models.FieldName, 0, len(values))
	for field := range values {
		if err := checkField(entity, field); err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })

	if err := s.requireLanguage(ctx, languageID); err != nil {
		return nil, err
	}

	saved := make([]models.Translation, 0, len(fields))
	committed := make([]models.FieldName, 0, len(fields))
	for _, field := range fields {
		translation, err := s.upsert(ctx, entity, entityID, field, languageID, values[field])
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"entity":    entity,
				"entity_id": entityID,
				"field":     field,
				"language":  languageID,
				"committed": len(committed),
			}).WithError(err).Warn("Bulk translation upsert stopped")
			return saved, &BulkUpsertError{Committed: committed, Failed: field, Err: err}
		}
		saved = append(saved, *translation)
		committed = append(committed, field)
	}

	s.logger.WithFields(logrus.Fields{
		"entity":    entity,
		"entity_id": entityID,
		"language":  languageID,
		"fields":    len(saved),
	}).Debug("Translations saved")
	return saved, nil
}

func (s *translationService) UpdateValue(ctx context.Context, id uint, value string) (*models.Translation, error) {
	existing, err := s.translations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTranslationNotFound
	}

	existing.Value = value
	if err := s.translations.Upsert(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update translation: %w", err)
	}
	return s.translations.FindByID(ctx, id)
}

func (s *translationService) Delete(ctx context.Context, id uint) error {
	existing, err := s.translations.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTranslationNotFound
	}
	return s.translations.Delete(ctx, id)
}

func (s *translationService) DeleteByEntity(ctx context.Context, entity models.EntityName, entityID uint) (int64, error) {
	if !entity.Valid() {
		return 0, fmt.Errorf("%w: unknown entity %q", ErrValidation, entity)
	}
	return s.translations.DeleteByEntity(ctx, entity, entityID)
}

func (s *translationService) Resolve(ctx context.Context, entity models.EntityName, entityID uint, languageCode string) (map[models.FieldName]string, error) {
	if !entity.Valid() {
		return nil, fmt.Errorf("%w: unknown entity %q", ErrValidation, entity)
	}

	language, err := s.languages.FindByCode(ctx, normalizeCode(languageCode))
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, ErrLanguageNotFound
	}

	fallback, err := s.languages.FindDefault(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.translations.FindByEntity(ctx, entity, entityID)
	if err != nil {
		return nil, err
	}

	resolved := make(map[models.FieldName]string)
	if fallback != nil && fallback.ID != language.ID {
		for _, row := range rows {
			if row.LanguageID == fallback.ID {
				resolved[row.FieldName] = row.Value
			}
		}
	}
	for _, row := range rows {
		if row.LanguageID == language.ID {
			resolved[row.FieldName] = row.Value
		}
	}
	return resolved, nil
}

func (s *translationService) requireLanguage(ctx context.Context, languageID uint) error {
	language, err := s.languages.FindByID(ctx, languageID)
	if err != nil {
		return err
	}
	if language == nil {
		return ErrLanguageNotFound
	}
	return nil
}

func checkField(entity models.EntityName, field models.FieldName) error {
	if !entity.Valid() {
		return fmt.Errorf("%w: unknown entity %q", ErrValidation, entity)
	}
	if !entity.AllowsField(field) {
		return fmt.Errorf("%w: %s.%s", ErrInvalidField, entity, field)
	}
	return nil
}
