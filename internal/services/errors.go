package services

import (
	"errors"
	"fmt"
	"strings"

	"mimarlik-backend/internal/models"
)

var (
	ErrLanguageNotFound    = errors.New("language not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrTranslationNotFound = errors.New("translation not found")
	ErrParentNotFound      = errors.New("parent category not found")

	ErrLanguageCodeExists      = errors.New("language code already exists")
	ErrLanguageInactive        = errors.New("only a published language can be the default")
	ErrDefaultLanguageInactive = errors.New("the default language must stay published; set another default first")
	ErrCategoryCycle           = errors.New("a category cannot be moved under itself or one of its descendants")
	ErrPhotoNotPublished       = errors.New("only published photos can be shown in the slider")
	ErrInvalidField            = errors.New("field is not translatable for this entity")
	ErrInvalidImage            = errors.New("file is not a supported image")
	ErrValidation              = errors.New("validation failed")
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLanguageNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrPhotoNotFound) ||
		errors.Is(err, ErrTranslationNotFound) ||
		errors.Is(err, ErrParentNotFound)
}

// IsConflict reports whether err is a rejected state change.
func IsConflict(err error) bool {
	return errors.Is(err, ErrLanguageCodeExists) ||
		errors.Is(err, ErrLanguageInactive) ||
		errors.Is(err, ErrDefaultLanguageInactive) ||
		errors.Is(err, ErrCategoryCycle) ||
		errors.Is(err, ErrPhotoNotPublished)
}

// IsValidation reports whether err was caused by bad input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidField) ||
		errors.Is(err, ErrInvalidImage)
}

// BulkUpsertError reports a partially applied bulk upsert. Fields in Committed
// stay written.
type BulkUpsertError struct {
	Committed []models.FieldName
	Failed    models.FieldName
	Err       error
}

func (e *BulkUpsertError) Error() string {
	committed := make([]string, len(e.Committed))
	for i, f := range e.Committed {
		committed[i] = string(f)
	}
	return fmt.Sprintf("bulk upsert stopped at field %s (committed: [%s]): %v",
		e.Failed, strings.Join(committed, ", "), e.Err)
}

func (e *BulkUpsertError) Unwrap() error {
	return e.Err
}
