package handlers

import (
	"errors"
	"strings"

	"mimarlik-backend/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var entityRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if _, err := models.ParseEntityName(s); err != nil {
		return errors.New("must be one of " + entityList())
	}
	return nil
})

func entityList() string {
	names := make([]string, 0, len(models.Entities()))
	for _, e := range models.Entities() {
		names = append(names, string(e))
	}
	return strings.Join(names, ", ")
}

type UpdateTranslationRequest struct {
	Value string `json:"value" example:"Modern Villa"`
}

type UpsertTranslationRequest struct {
	EntityName string `json:"entity_name" example:"Project"`
	EntityID   uint   `json:"entity_id" example:"7"`
	FieldName  string `json:"field_name" example:"Title"`
	LanguageID uint   `json:"language_id" example:"2"`
	Value      string `json:"value" example:"Modern Villa"`
}

func (r UpsertTranslationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EntityName, validation.Required, entityRule),
		validation.Field(&r.EntityID, validation.Required),
		validation.Field(&r.FieldName, validation.Required),
		validation.Field(&r.LanguageID, validation.Required),
	)
}

// BulkTranslationRequest saves several fields of one entity in one language.
type BulkTranslationRequest struct {
	EntityName string            `json:"entity_name" example:"Project"`
	EntityID   uint              `json:"entity_id" example:"7"`
	LanguageID uint              `json:"language_id" example:"2"`
	Values     map[string]string `json:"values"`
}

func (r BulkTranslationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EntityName, validation.Required, entityRule),
		validation.Field(&r.EntityID, validation.Required),
		validation.Field(&r.LanguageID, validation.Required),
		validation.Field(&r.Values, validation.Required),
	)
}

// BulkFailure describes how far a failed bulk save got.
type BulkFailure struct {
	Saved       []models.Translation `json:"saved"`
	Committed   []models.FieldName   `json:"committed"`
	FailedField models.FieldName     `json:"failed_field"`
}
