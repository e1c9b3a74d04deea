package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/c41m07/sf-restaurant/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) error {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

// SetupDatabase branche les tables de jonction explicites puis migre le schéma.
func SetupDatabase(database *gorm.DB) error {
	if err := database.SetupJoinTable(&entity.Dish{}, "Categories", &entity.DishCategory{}); err != nil {
		return err
	}
	if err := database.SetupJoinTable(&entity.Category{}, "Dishes", &entity.DishCategory{}); err != nil {
		return err
	}
	if err := database.SetupJoinTable(&entity.Menu{}, "Dishes", &entity.MenuDish{}); err != nil {
		return err
	}
	if err := database.SetupJoinTable(&entity.Dish{}, "Menus", &entity.MenuDish{}); err != nil {
		return err
	}

	return database.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Category{}, &entity.Dish{}, &entity.DishCategory{},
		&entity.Menu{}, &entity.MenuDish{},
		&entity.Picture{},
		&entity.Reservation{},
	)
}
