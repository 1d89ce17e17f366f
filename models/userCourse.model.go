package models

import "github.com/google/uuid"

const (
	EnrollmentStatusEnrolled   = "enrolled"
	EnrollmentStatusInProgress = "in_progress"
	EnrollmentStatusCompleted  = "completed"
)

// EnrollmentStatuses lists the accepted values for UserCourse.Status.
var EnrollmentStatuses = []string{
	EnrollmentStatusEnrolled,
	EnrollmentStatusInProgress,
	EnrollmentStatusCompleted,
}

// UserCourse is an enrollment. The (user, course) pair is the identity,
// so one user enrolls in one course at most once.
type UserCourse struct {
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	CourseID       uuid.UUID `json:"course_id" gorm:"type:uuid;primaryKey"`
	Status         string    `json:"status" gorm:"not null;default:'enrolled'"`
	CurrentChapter int       `json:"current_chapter" gorm:"not null;default:1"`
	Progress       int       `json:"progress" gorm:"not null;default:0"`
	Timestamps
}

// OwnerID marks the enrollment as owned by its user for permission checks.
func (uc *UserCourse) OwnerID() uuid.UUID {
	return uc.UserID
}

// UserCourseFinishedChapter marks one chapter as finished inside one
// enrollment. Rows are reconciled as a set, never duplicated.
type UserCourseFinishedChapter struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	CourseID  uuid.UUID `json:"course_id" gorm:"type:uuid;primaryKey"`
	ChapterID uuid.UUID `json:"chapter_id" gorm:"type:uuid;primaryKey"`
	Timestamps
}

type UserCourseUpdate struct {
	Status           *string      `json:"status" validate:"omitempty,oneof=enrolled in_progress completed"`
	CurrentChapter   *int         `json:"current_chapter" validate:"omitempty,min=1"`
	Progress         *int         `json:"progress" validate:"omitempty,min=0,max=100"`
	FinishedChapters *[]uuid.UUID `json:"finished_chapters"`
}

type UserCoursePublic struct {
	UserID         uuid.UUID `json:"user_id"`
	CourseID       uuid.UUID `json:"course_id"`
	Status         string    `json:"status"`
	CurrentChapter int       `json:"current_chapter"`
	Progress       int       `json:"progress"`
	Timestamps
}

// UserCourseDetail is the single-enrollment view, with the ids of every
// chapter the user finished in this course.
type UserCourseDetail struct {
	UserCoursePublic
	FinishedChapterIDs []uuid.UUID `json:"finished_chapter_ids"`
}

type UserCoursesPublic struct {
	Data  []UserCoursePublic `json:"data"`
	Count *int64             `json:"count"`
}

func (uc *UserCourse) ToPublic() UserCoursePublic {
	return UserCoursePublic{
		UserID:         uc.UserID,
		CourseID:       uc.CourseID,
		Status:         uc.Status,
		CurrentChapter: uc.CurrentChapter,
		Progress:       uc.Progress,
		Timestamps:     uc.Timestamps,
	}
}
