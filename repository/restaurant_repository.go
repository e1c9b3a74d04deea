package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/c41m07/sf-restaurant/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var restaurants []entity.Restaurant
	err := r.DB.Find(&restaurants).Error
	return restaurants, err
}

// FindByID renvoie (nil, nil) quand le restaurant n'existe pas.
func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.DB.
		Preload("Owner").
		Preload("Categories").
		Preload("Dishes").
		Preload("Menus").
		Preload("Pictures").
		First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// FindByOwner renvoie le restaurant possédé par l'utilisateur, (nil, nil) sinon.
func (r *RestaurantRepository) FindByOwner(ownerID uint) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.DB.Where("owner_id = ?", ownerID).First(&restaurant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Create(restaurant *entity.Restaurant) error {
	return r.DB.Omit(clause.Associations).Create(restaurant).Error
}

func (r *RestaurantRepository) Update(restaurant *entity.Restaurant) error {
	return r.DB.Omit(clause.Associations).Save(restaurant).Error
}
