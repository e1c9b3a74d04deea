package entity

// MenuDish est l'entité de jonction Menu<->Dish à clé composite.
type MenuDish struct {
	MenuID uint `gorm:"primaryKey" json:"menu_id"`
	DishID uint `gorm:"primaryKey" json:"dish_id"`
}
