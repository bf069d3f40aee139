package store

import (
	"lms/models"

	"gorm.io/gorm"
)

// UserStore persists user accounts.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user. Returns ErrDuplicate when the email is taken.
func (s *UserStore) Create(user *models.User) error {
	return classify(s.db.Create(user).Error)
}

func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (s *UserStore) Count() (int64, error) {
	var total int64
	err := s.db.Model(&models.User{}).Count(&total).Error
	return total, classify(err)
}
