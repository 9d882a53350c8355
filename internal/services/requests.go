package services

import (
	"fmt"
	"regexp"
	"time"

	"mimarlik-backend/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/datatypes"
)

var languageCodePattern = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z]{2,4})?$`)

var statusRule = validation.In(models.StatusDraft, models.StatusPublished, models.StatusHidden).
	Error("must be 0 (draft), 1 (published) or 2 (hidden)")

type LanguageRequest struct {
	Code       string               `json:"code" example:"en"`
	Name       string               `json:"name" example:"English"`
	NativeName string               `json:"native_name" example:"English"`
	IsDefault  bool                 `json:"is_default"`
	Status     models.ContentStatus `json:"status" example:"1"`
	SortOrder  int                  `json:"sort_order"`
}

func (r LanguageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, validation.Match(languageCodePattern)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.NativeName, validation.Length(0, 100)),
		validation.Field(&r.Status, statusRule),
	)
}

type CategoryRequest struct {
	Title       string               `json:"title" example:"Residential"`
	Description string               `json:"description"`
	ParentID    *uint                `json:"parent_id"`
	Status      models.ContentStatus `json:"status" example:"1"`
	SortOrder   int                  `json:"sort_order"`
}

func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Status, statusRule),
	)
}

type ContentBlockRequest struct {
	Type       models.ContentBlockType `json:"type" example:"2"`
	Content    string                  `json:"content"`
	Properties datatypes.JSON          `json:"properties,omitempty" swaggertype:"object"`
	SortOrder  int                     `json:"sort_order"`
	Status     models.ContentStatus    `json:"status" example:"1"`
}

func (r ContentBlockRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.By(func(value interface{}) error {
			if t, _ := value.(models.ContentBlockType); !t.Valid() {
				return fmt.Errorf("unknown block type %d", t)
			}
			return nil
		})),
		validation.Field(&r.Status, statusRule),
	)
}

type ProjectRequest struct {
	Title           string                `json:"title" example:"Modern Villa"`
	Description     string                `json:"description"`
	Location        string                `json:"location" example:"Bodrum"`
	Client          string                `json:"client"`
	CompletionDate  *time.Time            `json:"completion_date"`
	Area            *float64              `json:"area" example:"420"`
	AreaUnit        string                `json:"area_unit" example:"m²"`
	CategoryID      *uint                 `json:"category_id"`
	Status          models.ContentStatus  `json:"status" example:"1"`
	SortOrder       int                   `json:"sort_order"`
	IsFeatured      bool                  `json:"is_featured"`
	MetaTitle       string                `json:"meta_title"`
	MetaDescription string                `json:"meta_description"`
	MetaKeywords    string                `json:"meta_keywords"`
	ContentBlocks   []ContentBlockRequest `json:"content_blocks"`
}

func (r ProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Location, validation.Length(0, 200)),
		validation.Field(&r.Client, validation.Length(0, 200)),
		validation.Field(&r.Area, validation.Min(0.0)),
		validation.Field(&r.AreaUnit, validation.Length(0, 10)),
		validation.Field(&r.Status, statusRule),
		validation.Field(&r.MetaTitle, validation.Length(0, 200)),
		validation.Field(&r.MetaDescription, validation.Length(0, 500)),
		validation.Field(&r.MetaKeywords, validation.Length(0, 500)),
		validation.Field(&r.ContentBlocks),
	)
}

// PhotoUploadRequest carries an uploaded image and its initial metadata.
type PhotoUploadRequest struct {
	Data             []byte
	FileName         string
	ProjectID        *uint
	AltText          string
	Caption          string
	Status           models.ContentStatus
	IsHomepageSlider bool
	SliderText       string
}

func (r PhotoUploadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Data, validation.Required),
		validation.Field(&r.FileName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.AltText, validation.Length(0, 500)),
		validation.Field(&r.Caption, validation.Length(0, 500)),
		validation.Field(&r.Status, statusRule),
		validation.Field(&r.SliderText, validation.Length(0, 500)),
	)
}

type PhotoUpdateRequest struct {
	AltText          string               `json:"alt_text"`
	Caption          string               `json:"caption"`
	Description      string               `json:"description"`
	ProjectID        *uint                `json:"project_id"`
	Status           models.ContentStatus `json:"status" example:"1"`
	SortOrder        int                  `json:"sort_order"`
	IsHomepageSlider bool                 `json:"is_homepage_slider"`
	SliderText       string               `json:"slider_text"`
}

func (r PhotoUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AltText, validation.Length(0, 500)),
		validation.Field(&r.Caption, validation.Length(0, 500)),
		validation.Field(&r.Status, statusRule),
		validation.Field(&r.SliderText, validation.Length(0, 500)),
	)
}

func validationError(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
