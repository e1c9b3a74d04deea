package entity

import "time"

// ReservationStatus est tiré d'un petit ensemble fixe.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Reservation struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	UUID            string            `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	GuestNumber     int               `gorm:"type:smallint;not null" json:"guest_number"`
	ReservationDate string            `gorm:"type:date;not null" json:"reservation_date"`
	ReservationTime string            `gorm:"type:time;not null" json:"reservation_time"`
	AllergyNote     *string           `gorm:"type:varchar(255)" json:"allergy_note,omitempty"`
	Status          ReservationStatus `gorm:"type:varchar(16);not null" json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       *time.Time        `gorm:"autoUpdateTime:false" json:"updatedAt"`

	UserID uint  `gorm:"not null" json:"user_id"`
	User   *User `json:"-"`

	RestaurantID *uint       `json:"restaurant_id,omitempty"`
	Restaurant   *Restaurant `json:"-"`
}
