package store

import (
	"lms/models"

	"gorm.io/gorm"
)

// CourseStore persists courses.
type CourseStore struct {
	db *gorm.DB
}

func NewCourseStore(db *gorm.DB) *CourseStore {
	return &CourseStore{db: db}
}

func (s *CourseStore) Create(course *models.Course) error {
	return classify(s.db.Create(course).Error)
}

func (s *CourseStore) FindByID(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		return nil, classify(err)
	}
	return &course, nil
}

// List returns all courses, most recently created first.
func (s *CourseStore) List() ([]models.Course, error) {
	courses := []models.Course{}
	err := s.db.Order("created_at DESC").Find(&courses).Error
	return courses, classify(err)
}

// ListByInstructor returns the courses owned by the given instructor,
// most recently created first.
func (s *CourseStore) ListByInstructor(instructorID uint) ([]models.Course, error) {
	courses := []models.Course{}
	err := s.db.Where("instructor_id = ?", instructorID).
		Order("created_at DESC").Find(&courses).Error
	return courses, classify(err)
}

func (s *CourseStore) Update(course *models.Course) error {
	return classify(s.db.Save(course).Error)
}

// Delete removes a course and its enrollments in one transaction, so no
// orphaned enrollment survives regardless of driver-level cascade support.
func (s *CourseStore) Delete(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, id).Error
	})
	return classify(err)
}

func (s *CourseStore) Count() (int64, error) {
	var total int64
	err := s.db.Model(&models.Course{}).Count(&total).Error
	return total, classify(err)
}
