package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/c41m07/sf-restaurant/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindAll() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Find(&menus).Error
	return menus, err
}

// FindByID renvoie (nil, nil) quand le menu n'existe pas.
func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.
		Preload("Restaurant").
		Preload("Dishes").
		First(&menu, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

func (r *MenuRepository) Update(menu *entity.Menu) error {
	return r.DB.Omit(clause.Associations).Save(menu).Error
}

func (r *MenuRepository) Delete(menu *entity.Menu) error {
	return r.DB.Select("Dishes").Delete(menu).Error
}

// AttachDish crée la ligne de jonction; paire déjà présente = sans effet.
func (r *MenuRepository) AttachDish(menuID, dishID uint) error {
	link := entity.MenuDish{MenuID: menuID, DishID: dishID}
	return r.DB.FirstOrCreate(&link, link).Error
}

func (r *MenuRepository) DetachDish(menuID, dishID uint) error {
	return r.DB.Delete(&entity.MenuDish{MenuID: menuID, DishID: dishID}).Error
}
