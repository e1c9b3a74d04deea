package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/c41m07/sf-restaurant/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindByID renvoie (nil, nil) quand l'utilisateur n'existe pas.
func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.DB.Preload("Restaurant").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail renvoie (nil, nil) quand l'email est inconnu.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}
