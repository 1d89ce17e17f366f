package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chapter numbers are maintained as a dense 1..N sequence per course.
// Creation appends at N+1, deletion closes the gap it leaves.
type Chapter struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	CourseID    uuid.UUID      `json:"course_id" gorm:"type:uuid;index;not null"`
	ChapterNum  int            `json:"chapter_num" gorm:"not null;index:idx_chapter_course_num"`
	Title       string         `json:"title" gorm:"not null;size:255"`
	Description *string        `json:"description" gorm:"type:text"`
	Exercise    *string        `json:"exercise" gorm:"type:text"`
	TestCode    *string        `json:"test_code" gorm:"type:text"`
	Points      []ChapterPoint `json:"points,omitempty" gorm:"foreignKey:ChapterID"`
	Timestamps
}

func (c *Chapter) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ChapterCreate does not accept a chapter number. The position is
// always assigned server side.
type ChapterCreate struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description *string `json:"description"`
	Exercise    *string `json:"exercise"`
	TestCode    *string `json:"test_code"`
}

type ChapterUpdate struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Exercise    *string `json:"exercise"`
	TestCode    *string `json:"test_code"`
}

type ChapterPublic struct {
	ID          uuid.UUID `json:"id"`
	CourseID    uuid.UUID `json:"course_id"`
	ChapterNum  int       `json:"chapter_num"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Exercise    *string   `json:"exercise"`
	TestCode    *string   `json:"test_code"`
}

type ChapterWithPoints struct {
	ChapterPublic
	Points []ChapterPointPublic `json:"points"`
}

type ChaptersPublic struct {
	Data  []ChapterPublic `json:"data"`
	Count *int64          `json:"count"`
}

type ChaptersWithPointsPublic struct {
	Data  []ChapterWithPoints `json:"data"`
	Count *int64              `json:"count"`
}

func (c *Chapter) ToPublic() ChapterPublic {
	return ChapterPublic{
		ID:          c.ID,
		CourseID:    c.CourseID,
		ChapterNum:  c.ChapterNum,
		Title:       c.Title,
		Description: c.Description,
		Exercise:    c.Exercise,
		TestCode:    c.TestCode,
	}
}

func (c *Chapter) ToPublicWithPoints() ChapterWithPoints {
	points := make([]ChapterPointPublic, 0, len(c.Points))
	for i := range c.Points {
		points = append(points, c.Points[i].ToPublic())
	}
	return ChapterWithPoints{
		ChapterPublic: c.ToPublic(),
		Points:        points,
	}
}
