package models

import "time"

type Photo struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	FileName         string        `gorm:"not null;size:255" json:"file_name"`
	OriginalFileName string        `gorm:"size:255" json:"original_file_name"`
	FilePath         string        `gorm:"not null;size:500" json:"file_path"`
	FileSize         int64         `json:"file_size"`
	MimeType         string        `gorm:"size:100" json:"mime_type"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	AltText          string        `gorm:"size:500" json:"alt_text"`
	Caption          string        `gorm:"size:500" json:"caption"`
	Description      string        `gorm:"type:text" json:"description"`
	ProjectID        *uint         `gorm:"index" json:"project_id"` // nil for slider-only photos
	Status           ContentStatus `gorm:"not null;index" json:"status"`
	SortOrder        int           `gorm:"not null;default:0" json:"sort_order"`
	IsHomepageSlider bool          `gorm:"not null;default:false;index" json:"is_homepage_slider"`
	SliderText       string        `gorm:"size:500" json:"slider_text"`
	URL              string        `gorm:"-" json:"url,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (Photo) TableName() string {
	return "photos"
}

// EnforceSliderRule drops the photo from the homepage slider unless it is published.
func (p *Photo) EnforceSliderRule() {
	if p.Status != StatusPublished && p.IsHomepageSlider {
		p.IsHomepageSlider = false
		p.SliderText = ""
	}
}
