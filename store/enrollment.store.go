package store

import (
	"time"

	"lms/models"

	"gorm.io/gorm"
)

// StudentEnrollment is an enrollment joined with the course it belongs to,
// as returned to the enrolled student.
type StudentEnrollment struct {
	ID                uint       `json:"id"`
	UserID            uint       `json:"user_id"`
	CourseID          uint       `json:"course_id"`
	Status            string     `json:"status"`
	EnrolledAt        time.Time  `json:"enrolled_at"`
	CompletedAt       *time.Time `json:"completed_at"`
	CourseTitle       string     `json:"course_title"`
	CourseDescription string     `json:"course_description"`
}

// RosterEntry is an enrollment joined with the enrolled student, as returned
// to the course instructor.
type RosterEntry struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	CourseID    uint       `json:"course_id"`
	Status      string     `json:"status"`
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
}

// EnrollmentStore persists enrollments.
type EnrollmentStore struct {
	db *gorm.DB
}

func NewEnrollmentStore(db *gorm.DB) *EnrollmentStore {
	return &EnrollmentStore{db: db}
}

// Create inserts a new enrollment. Returns ErrDuplicate when the user is
// already enrolled in the course.
func (s *EnrollmentStore) Create(enrollment *models.Enrollment) error {
	return classify(s.db.Create(enrollment).Error)
}

func (s *EnrollmentStore) FindByID(id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, id).Error; err != nil {
		return nil, classify(err)
	}
	return &enrollment, nil
}

func (s *EnrollmentStore) FindByUserAndCourse(userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err != nil {
		return nil, classify(err)
	}
	return &enrollment, nil
}

// ListByUser returns the user's enrollments joined with course title and
// description, most recently enrolled first.
func (s *EnrollmentStore) ListByUser(userID uint) ([]StudentEnrollment, error) {
	rows := []StudentEnrollment{}
	err := s.db.Table("enrollments").
		Select("enrollments.id, enrollments.user_id, enrollments.course_id, " +
			"enrollments.status, enrollments.enrolled_at, enrollments.completed_at, " +
			"courses.title AS course_title, courses.description AS course_description").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("enrollments.user_id = ?", userID).
		Order("enrollments.enrolled_at DESC").
		Scan(&rows).Error
	return rows, classify(err)
}

// ListByCourse returns the course roster joined with student name and email,
// most recently enrolled first.
func (s *EnrollmentStore) ListByCourse(courseID uint) ([]RosterEntry, error) {
	rows := []RosterEntry{}
	err := s.db.Table("enrollments").
		Select("enrollments.id, enrollments.user_id, enrollments.course_id, " +
			"enrollments.status, enrollments.enrolled_at, enrollments.completed_at, " +
			"users.name AS name, users.email AS email").
		Joins("JOIN users ON users.id = enrollments.user_id").
		Where("enrollments.course_id = ?", courseID).
		Order("enrollments.enrolled_at DESC").
		Scan(&rows).Error
	return rows, classify(err)
}

// SetStatus updates the progress state. Completion stamps completed_at;
// moving back to in_progress clears it.
func (s *EnrollmentStore) SetStatus(enrollment *models.Enrollment, status string) error {
	enrollment.Status = status
	if status == models.EnrollmentCompleted {
		now := time.Now()
		enrollment.CompletedAt = &now
	} else {
		enrollment.CompletedAt = nil
	}
	err := s.db.Model(enrollment).Updates(map[string]interface{}{
		"status":       enrollment.Status,
		"completed_at": enrollment.CompletedAt,
	}).Error
	return classify(err)
}

func (s *EnrollmentStore) Delete(id uint) error {
	return classify(s.db.Delete(&models.Enrollment{}, id).Error)
}

func (s *EnrollmentStore) Count() (int64, error) {
	var total int64
	err := s.db.Model(&models.Enrollment{}).Count(&total).Error
	return total, classify(err)
}
