package models

import "time"

type Category struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"not null;size:200" json:"title" example:"Residential"`
	Description string        `gorm:"type:text" json:"description"`
	Slug        string        `gorm:"uniqueIndex;not null;size:200" json:"slug" example:"residential"`
	ParentID    *uint         `gorm:"index" json:"parent_id"`
	Status      ContentStatus `gorm:"not null;index" json:"status"`
	SortOrder   int           `gorm:"not null;default:0" json:"sort_order"`
	Children    []Category    `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
