package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/c41m07/sf-restaurant/entity"
)

type PictureRepository struct {
	DB *gorm.DB
}

func NewPictureRepository(db *gorm.DB) *PictureRepository {
	return &PictureRepository{DB: db}
}

func (r *PictureRepository) FindAll() ([]entity.Picture, error) {
	var pictures []entity.Picture
	err := r.DB.Find(&pictures).Error
	return pictures, err
}

// FindByID renvoie (nil, nil) quand l'image n'existe pas.
func (r *PictureRepository) FindByID(id uint) (*entity.Picture, error) {
	var picture entity.Picture
	err := r.DB.Preload("Restaurant").First(&picture, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &picture, nil
}

func (r *PictureRepository) Create(picture *entity.Picture) error {
	return r.DB.Create(picture).Error
}

func (r *PictureRepository) Update(picture *entity.Picture) error {
	return r.DB.Omit(clause.Associations).Save(picture).Error
}

func (r *PictureRepository) Delete(picture *entity.Picture) error {
	return r.DB.Delete(picture).Error
}
