package models

import (
	"fmt"
	"time"
)

// EntityName identifies which kind of row a translation annotates.
type EntityName string

const (
	EntityCategory EntityName = "Category"
	EntityProject  EntityName = "Project"
	EntityPhoto    EntityName = "Photo"
)

// FieldName identifies the translated column of an entity.
type FieldName string

const (
	FieldTitle           FieldName = "Title"
	FieldDescription     FieldName = "Description"
	FieldLocation        FieldName = "Location"
	FieldClient          FieldName = "Client"
	FieldMetaTitle       FieldName = "MetaTitle"
	FieldMetaDescription FieldName = "MetaDescription"
	FieldMetaKeywords    FieldName = "MetaKeywords"
	FieldAltText         FieldName = "AltText"
	FieldCaption         FieldName = "Caption"
	FieldSliderText      FieldName = "SliderText"
)

var translatableFields = map[EntityName][]FieldName{
	EntityCategory: {FieldTitle, FieldDescription},
	EntityProject: {
		FieldTitle, FieldDescription, FieldLocation, FieldClient,
		FieldMetaTitle, FieldMetaDescription, FieldMetaKeywords,
	},
	EntityPhoto: {FieldAltText, FieldCaption, FieldDescription, FieldSliderText},
}

// Entities lists every translatable entity.
func Entities() []EntityName {
	return []EntityName{EntityCategory, EntityProject, EntityPhoto}
}

func ParseEntityName(s string) (EntityName, error) {
	e := EntityName(s)
	if _, ok := translatableFields[e]; !ok {
		return "", fmt.Errorf("unknown entity %q", s)
	}
	return e, nil
}

func (e EntityName) Valid() bool {
	_, ok := translatableFields[e]
	return ok
}

// Fields returns the translatable fields of e in a stable order.
func (e EntityName) Fields() []FieldName {
	fields := translatableFields[e]
	out := make([]FieldName, len(fields))
	copy(out, fields)
	return out
}

func (e EntityName) AllowsField(f FieldName) bool {
	for _, allowed := range translatableFields[e] {
		if allowed == f {
			return true
		}
	}
	return false
}

func ParseFieldName(entity EntityName, s string) (FieldName, error) {
	f := FieldName(s)
	if !entity.AllowsField(f) {
		return "", fmt.Errorf("field %q is not translatable on %s", s, entity)
	}
	return f, nil
}

// Translation is one localized value. (EntityName, EntityID, FieldName, LanguageID) is unique.
type Translation struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	EntityName EntityName `gorm:"not null;size:50;uniqueIndex:idx_translation_key,priority:1;index:idx_translation_entity,priority:1" json:"entity_name" example:"Project"`
	EntityID   uint       `gorm:"not null;uniqueIndex:idx_translation_key,priority:2;index:idx_translation_entity,priority:2" json:"entity_id" example:"7"`
	FieldName  FieldName  `gorm:"not null;size:50;uniqueIndex:idx_translation_key,priority:3" json:"field_name" example:"Title"`
	LanguageID uint       `gorm:"not null;uniqueIndex:idx_translation_key,priority:4;index" json:"language_id" example:"2"`
	Value      string     `gorm:"type:text" json:"value" example:"Modern Villa"`
	Language   *Language  `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Translation) TableName() string {
	return "translations"
}
