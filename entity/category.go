package entity

import "time"

// Category regroupe les plats d'un restaurant (entrées, desserts, ...).
type Category struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UUID      string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	Title     string     `gorm:"type:varchar(32);not null" json:"title"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`

	RestaurantID *uint       `json:"restaurant_id,omitempty"`
	Restaurant   *Restaurant `json:"-"`

	Dishes []Dish `gorm:"many2many:dish_categories;" json:"-"`
}
