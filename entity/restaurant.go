package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// HourList représente les créneaux d'ouverture ("11:30-14:00"), stockés en JSON.
type HourList []string

func (h HourList) Value() (driver.Value, error) {
	if h == nil {
		h = HourList{}
	}
	b, err := json.Marshal(h)
	return string(b), err
}

func (h *HourList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*h = HourList{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), h)
	case []byte:
		return json.Unmarshal(v, h)
	default:
		return fmt.Errorf("type %T non supporté pour HourList", value)
	}
}

// Validate vérifie le format "HH:MM-HH:MM" et que la fermeture suit l'ouverture.
func (h HourList) Validate() error {
	for _, slot := range h {
		open, close, ok := cutSlot(slot)
		if !ok {
			return fmt.Errorf("créneau invalide %q, format attendu HH:MM-HH:MM", slot)
		}
		to, err1 := time.Parse("15:04", open)
		tc, err2 := time.Parse("15:04", close)
		if err1 != nil || err2 != nil {
			return fmt.Errorf("créneau invalide %q, format attendu HH:MM-HH:MM", slot)
		}
		if !tc.After(to) {
			return fmt.Errorf("créneau invalide %q, fermeture avant ouverture", slot)
		}
	}
	return nil
}

func cutSlot(s string) (open, close string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

type Restaurant struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UUID           string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	Name           string     `gorm:"type:varchar(32);not null" json:"name"`
	Description    string     `gorm:"type:text" json:"description"`
	OpeningHoursAm HourList   `gorm:"type:text" json:"opening_hours_am"`
	OpeningHoursPm HourList   `gorm:"type:text" json:"opening_hours_pm"`
	MaxGuests      int        `gorm:"type:smallint" json:"max_guests"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`

	// owner_id est unique : un restaurant par propriétaire.
	OwnerID uint  `gorm:"uniqueIndex;not null" json:"-"`
	Owner   *User `gorm:"foreignKey:OwnerID" json:"-"`

	Pictures     []Picture     `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	Menus        []Menu        `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	Categories   []Category    `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	Dishes       []Dish        `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	Reservations []Reservation `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
}

// AttachOwner synchronise les deux côtés du lien de propriété en un seul appel.
// L'ancien propriétaire perd sa référence, le nouveau la gagne.
func (r *Restaurant) AttachOwner(u *User) {
	if r.Owner == u {
		return
	}
	prev := r.Owner
	r.Owner = u
	if u != nil {
		r.OwnerID = u.ID
	} else {
		r.OwnerID = 0
	}
	if prev != nil && prev.Restaurant == r {
		prev.Restaurant = nil
	}
	if u != nil && u.Restaurant != r {
		u.AttachRestaurant(r)
	}
}
