package models

import "time"

type Project struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"not null;size:200;index" json:"title" example:"Modern Villa"`
	Description     string         `gorm:"type:text" json:"description"`
	Slug            string         `gorm:"uniqueIndex;not null;size:200" json:"slug" example:"modern-villa"`
	Location        string         `gorm:"size:200" json:"location"`
	Client          string         `gorm:"size:200" json:"client"`
	CompletionDate  *time.Time     `json:"completion_date"`
	Area            *float64       `json:"area"`
	AreaUnit        string         `gorm:"size:10;default:'m²'" json:"area_unit"`
	CategoryID      *uint          `gorm:"index" json:"category_id"`
	Category        *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Status          ContentStatus  `gorm:"not null;index" json:"status"`
	SortOrder       int            `gorm:"not null;default:0" json:"sort_order"`
	IsFeatured      bool           `gorm:"not null;default:false;index" json:"is_featured"`
	MetaTitle       string         `gorm:"size:200" json:"meta_title"`
	MetaDescription string         `gorm:"size:500" json:"meta_description"`
	MetaKeywords    string         `gorm:"size:500" json:"meta_keywords"`
	Photos          []Photo        `gorm:"foreignKey:ProjectID" json:"photos,omitempty"`
	ContentBlocks   []ContentBlock `gorm:"foreignKey:ProjectID" json:"content_blocks,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
