package entity

import "time"

// Menu est un ensemble de plats vendu à un prix fixe.
type Menu struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UUID        string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	Title       string     `gorm:"type:varchar(32);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Price       Price      `gorm:"not null" json:"price"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`

	RestaurantID *uint       `json:"restaurant_id,omitempty"`
	Restaurant   *Restaurant `json:"-"`

	Dishes []Dish `gorm:"many2many:menu_dishes;" json:"-"`
}
