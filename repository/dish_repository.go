package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/c41m07/sf-restaurant/entity"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) FindAll() ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Find(&dishes).Error
	return dishes, err
}

// FindByID renvoie (nil, nil) quand le plat n'existe pas.
func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var dish entity.Dish
	err := r.DB.
		Preload("Restaurant").
		Preload("Categories").
		First(&dish, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) Create(dish *entity.Dish) error {
	return r.DB.Create(dish).Error
}

func (r *DishRepository) Update(dish *entity.Dish) error {
	return r.DB.Omit(clause.Associations).Save(dish).Error
}

// Delete retire aussi les lignes de jonction des deux associations.
func (r *DishRepository) Delete(dish *entity.Dish) error {
	return r.DB.Select("Categories", "Menus").Delete(dish).Error
}

// AttachCategory crée la ligne de jonction; paire déjà présente = sans effet.
func (r *DishRepository) AttachCategory(dishID, categoryID uint) error {
	link := entity.DishCategory{DishID: dishID, CategoryID: categoryID}
	return r.DB.FirstOrCreate(&link, link).Error
}

func (r *DishRepository) DetachCategory(dishID, categoryID uint) error {
	return r.DB.Delete(&entity.DishCategory{DishID: dishID, CategoryID: categoryID}).Error
}
