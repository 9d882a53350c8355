package models

import (
	"time"

	"gorm.io/datatypes"
)

type ContentBlockType int

const (
	BlockHeading   ContentBlockType = 1
	BlockParagraph ContentBlockType = 2
	BlockImage     ContentBlockType = 3
	BlockVideo     ContentBlockType = 4
	BlockQuote     ContentBlockType = 5
	BlockList      ContentBlockType = 6
)

func (t ContentBlockType) Valid() bool {
	return t >= BlockHeading && t <= BlockList
}

type ContentBlock struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	ProjectID  uint             `gorm:"index;not null" json:"project_id"`
	Type       ContentBlockType `gorm:"not null" json:"type"`
	Content    string           `gorm:"type:text" json:"content"`
	Properties datatypes.JSON   `json:"properties,omitempty" swaggertype:"object"`
	SortOrder  int              `gorm:"not null;default:0" json:"sort_order"`
	Status     ContentStatus    `gorm:"not null" json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (ContentBlock) TableName() string {
	return "content_blocks"
}
