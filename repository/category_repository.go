package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/c41m07/sf-restaurant/entity"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.Find(&categories).Error
	return categories, err
}

// FindByID renvoie (nil, nil) quand la catégorie n'existe pas.
func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.DB.
		Preload("Restaurant").
		Preload("Dishes").
		First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) Update(category *entity.Category) error {
	return r.DB.Omit(clause.Associations).Save(category).Error
}

func (r *CategoryRepository) Delete(category *entity.Category) error {
	return r.DB.Select("Dishes").Delete(category).Error
}
