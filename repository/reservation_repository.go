package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/c41m07/sf-restaurant/entity"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) FindAll() ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := r.DB.Find(&reservations).Error
	return reservations, err
}

// FindByID renvoie (nil, nil) quand la réservation n'existe pas.
func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := r.DB.
		Preload("User").
		Preload("Restaurant").
		First(&reservation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *ReservationRepository) Update(reservation *entity.Reservation) error {
	return r.DB.Omit(clause.Associations).Save(reservation).Error
}

func (r *ReservationRepository) Delete(reservation *entity.Reservation) error {
	return r.DB.Delete(reservation).Error
}
