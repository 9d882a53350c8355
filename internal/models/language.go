package models

import "time"

type Language struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Code       string        `gorm:"uniqueIndex;not null;size:10" json:"code" example:"tr"` // ISO 639-1 code
	Name       string        `gorm:"not null;size:100" json:"name" example:"Turkish"`
	NativeName string        `gorm:"size:100" json:"native_name" example:"Türkçe"`
	IsDefault  bool          `gorm:"not null;default:false;index" json:"is_default"`
	Status     ContentStatus `gorm:"not null" json:"status"`
	SortOrder  int           `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (Language) TableName() string {
	return "languages"
}

func (l *Language) IsActive() bool {
	return l.Status == StatusPublished
}
