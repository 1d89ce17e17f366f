package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChapterPoint is one block of chapter content. Exactly one of Text,
// CodeBlock, Image and Video is set on every row. Point numbers are
// caller assigned and keep their gaps when a point is deleted.
type ChapterPoint struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ChapterID       uuid.UUID `json:"chapter_id" gorm:"type:uuid;index;not null"`
	ChapterPointNum int       `json:"chapter_point_num" gorm:"not null"`
	Text            *string   `json:"text" gorm:"type:text"`
	CodeBlock       *string   `json:"code_block" gorm:"type:text"`
	Image           *string   `json:"image" gorm:"size:255"`
	Video           *string   `json:"video" gorm:"size:255"`
	Timestamps
}

func (p *ChapterPoint) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ChapterPointCreate struct {
	ChapterPointNum int     `json:"chapter_point_num" validate:"required,min=1"`
	Text            *string `json:"text"`
	CodeBlock       *string `json:"code_block"`
	Image           *string `json:"image" validate:"omitempty,url,max=255"`
	Video           *string `json:"video" validate:"omitempty,url,max=255"`
}

type ChapterPointUpdate struct {
	ChapterPointNum *int    `json:"chapter_point_num" validate:"omitempty,min=1"`
	Text            *string `json:"text"`
	CodeBlock       *string `json:"code_block"`
	Image           *string `json:"image" validate:"omitempty,url,max=255"`
	Video           *string `json:"video" validate:"omitempty,url,max=255"`
}

type ChapterPointPublic struct {
	ID              uuid.UUID `json:"id"`
	ChapterID       uuid.UUID `json:"chapter_id"`
	ChapterPointNum int       `json:"chapter_point_num"`
	Text            *string   `json:"text"`
	CodeBlock       *string   `json:"code_block"`
	Image           *string   `json:"image"`
	Video           *string   `json:"video"`
}

type ChapterPointsPublic struct {
	Data  []ChapterPointPublic `json:"data"`
	Count *int64               `json:"count"`
}

// ContentFieldCount reports how many of the four content fields are set.
func (p *ChapterPoint) ContentFieldCount() int {
	count := 0
	for _, field := range []*string{p.Text, p.CodeBlock, p.Image, p.Video} {
		if field != nil {
			count++
		}
	}
	return count
}

func (p *ChapterPoint) ToPublic() ChapterPointPublic {
	return ChapterPointPublic{
		ID:              p.ID,
		ChapterID:       p.ChapterID,
		ChapterPointNum: p.ChapterPointNum,
		Text:            p.Text,
		CodeBlock:       p.CodeBlock,
		Image:           p.Image,
		Video:           p.Video,
	}
}
