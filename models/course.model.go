package models

import "time"

// Course is owned by the instructor that created it.
type Course struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	InstructorID uint      `json:"instructor_id" gorm:"not null;index"`
	CreatedAt    time.Time `json:"created_at"`

	Enrollments []Enrollment `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
