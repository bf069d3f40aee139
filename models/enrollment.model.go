package models

import "time"

const (
	EnrollmentInProgress = "in_progress"
	EnrollmentCompleted  = "completed"
)

// Enrollment links a student to a course. A user may hold at most one
// enrollment per course.
type Enrollment struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID    uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	Status      string     `json:"status" gorm:"not null;default:'in_progress'"`
	EnrolledAt  time.Time  `json:"enrolled_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time `json:"completed_at"`
}

// ValidEnrollmentStatus reports whether status is a known progress state.
func ValidEnrollmentStatus(status string) bool {
	return status == EnrollmentInProgress || status == EnrollmentCompleted
}
