package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/c41m07/sf-restaurant/entity"
	"github.com/c41m07/sf-restaurant/repository"
)

var (
	ErrUnknownStatus   = errors.New("statut de réservation inconnu")
	ErrTooManyGuests   = errors.New("nombre de couverts supérieur à la capacité du restaurant")
	ErrBadDate         = errors.New("date attendue au format AAAA-MM-JJ")
	ErrBadTime         = errors.New("heure attendue au format HH:MM")
	ErrNoRestaurant    = errors.New("restaurant cible requis")
	ErrGuestsNotNumber = errors.New("nombre de couverts invalide")
)

// ReservationNotifier pousse les événements vers le flux temps réel.
type ReservationNotifier interface {
	ReservationEvent(restaurantID uint, event string, reservation *entity.Reservation)
}

type ReservationService struct {
	Repo        *repository.ReservationRepository
	Restaurants *repository.RestaurantRepository
	DB          *gorm.DB
	Notifier    ReservationNotifier
}

func NewReservationService(repo *repository.ReservationRepository, restaurants *repository.RestaurantRepository, db *gorm.DB) *ReservationService {
	return &ReservationService{Repo: repo, Restaurants: restaurants, DB: db}
}

// Create valide la réservation puis l'insère, le tout dans une transaction
// pour que la vérification de capacité et l'écriture restent cohérentes.
func (s *ReservationService) Create(reservation *entity.Reservation) error {
	if reservation.RestaurantID == nil {
		return ErrNoRestaurant
	}
	if err := s.validate(reservation); err != nil {
		return err
	}

	if reservation.UUID == "" {
		reservation.UUID = uuid.NewString()
	}
	if reservation.Status == "" {
		reservation.Status = entity.ReservationPending
	}
	reservation.CreatedAt = time.Now()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var restaurant entity.Restaurant
		if err := tx.First(&restaurant, *reservation.RestaurantID).Error; err != nil {
			return fmt.Errorf("restaurant introuvable: %w", err)
		}
		if reservation.GuestNumber > restaurant.MaxGuests {
			return ErrTooManyGuests
		}
		return tx.Create(reservation).Error
	})
	if err != nil {
		return err
	}

	s.notify("reservation.created", reservation)
	return nil
}

func (s *ReservationService) Update(reservation *entity.Reservation) error {
	if err := s.validate(reservation); err != nil {
		return err
	}
	now := time.Now()
	reservation.UpdatedAt = &now

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if reservation.RestaurantID != nil {
			var restaurant entity.Restaurant
			if err := tx.First(&restaurant, *reservation.RestaurantID).Error; err != nil {
				return fmt.Errorf("restaurant introuvable: %w", err)
			}
			if reservation.GuestNumber > restaurant.MaxGuests {
				return ErrTooManyGuests
			}
		}
		return tx.Omit(clause.Associations).Save(reservation).Error
	})
	if err != nil {
		return err
	}

	s.notify("reservation.updated", reservation)
	return nil
}

func (s *ReservationService) Delete(reservation *entity.Reservation) error {
	if err := s.Repo.Delete(reservation); err != nil {
		return err
	}
	s.notify("reservation.deleted", reservation)
	return nil
}

func (s *ReservationService) validate(reservation *entity.Reservation) error {
	if reservation.GuestNumber <= 0 {
		return ErrGuestsNotNumber
	}
	if reservation.Status != "" && !reservation.Status.Valid() {
		return ErrUnknownStatus
	}
	if _, err := time.Parse(entity.DateLayout, reservation.ReservationDate); err != nil {
		return ErrBadDate
	}
	if _, err := time.Parse(entity.TimeLayout, reservation.ReservationTime); err != nil {
		return ErrBadTime
	}
	return nil
}

func (s *ReservationService) notify(event string, reservation *entity.Reservation) {
	if s.Notifier == nil || reservation.RestaurantID == nil {
		return
	}
	s.Notifier.ReservationEvent(*reservation.RestaurantID, event, reservation)
}
