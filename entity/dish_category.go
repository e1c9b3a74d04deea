package entity

// DishCategory est l'entité de jonction Dish<->Category à clé composite.
// Modélisée explicitement pour pouvoir porter des attributs plus tard
// sans migration d'identité.
type DishCategory struct {
	DishID     uint `gorm:"primaryKey" json:"dish_id"`
	CategoryID uint `gorm:"primaryKey" json:"category_id"`
}
