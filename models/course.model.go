package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:255"`
	Description *string   `json:"description" gorm:"type:text"`
	Chapters    []Chapter `json:"chapters,omitempty" gorm:"foreignKey:CourseID"`
	Timestamps
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CourseCreate struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description *string `json:"description"`
}

type CourseUpdate struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

type CoursePublic struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
}

// CourseWithChapters is the single-course view. Chapters come back
// ordered by chapter number.
type CourseWithChapters struct {
	CoursePublic
	Chapters []ChapterPublic `json:"chapters"`
}

type CoursesPublic struct {
	Data  []CoursePublic `json:"data"`
	Count *int64         `json:"count"`
}

type CoursesWithChaptersPublic struct {
	Data  []CourseWithChapters `json:"data"`
	Count *int64               `json:"count"`
}

func (c *Course) ToPublic() CoursePublic {
	return CoursePublic{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
	}
}

func (c *Course) ToPublicWithChapters() CourseWithChapters {
	chapters := make([]ChapterPublic, 0, len(c.Chapters))
	for i := range c.Chapters {
		chapters = append(chapters, c.Chapters[i].ToPublic())
	}
	return CourseWithChapters{
		CoursePublic: c.ToPublic(),
		Chapters:     chapters,
	}
}
