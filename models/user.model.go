package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User is an account holder. Instructors are users with the admin role.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"not null;default:'student'"`
	CreatedAt time.Time `json:"created_at"`

	Courses     []Course     `json:"-" gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE"`
	Enrollments []Enrollment `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// ValidRole reports whether role is one of the accepted account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStudent
}
