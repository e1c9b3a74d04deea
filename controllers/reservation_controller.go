package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/c41m07/sf-restaurant/entity"
	"github.com/c41m07/sf-restaurant/middlewares"
	"github.com/c41m07/sf-restaurant/pkg/resp"
	"github.com/c41m07/sf-restaurant/repository"
	"github.com/c41m07/sf-restaurant/services"
)

type reservationWrite struct {
	UUID            *string     `json:"uuid"`
	GuestNumber     *int        `json:"guest_number"`
	ReservationDate *string     `json:"reservation_date"`
	ReservationTime *string     `json:"reservation_time"`
	AllergyNote     *string     `json:"allergy_note"`
	Status          *string     `json:"status"`
	RestaurantID    *uint       `json:"restaurant_id"`
	Restaurant      *refPayload `json:"restaurant"`
}

type reservationList struct {
	ID              uint                     `json:"id"`
	UUID            string                   `json:"uuid"`
	GuestNumber     int                      `json:"guest_number"`
	ReservationDate string                   `json:"reservation_date"`
	ReservationTime string                   `json:"reservation_time"`
	Status          entity.ReservationStatus `json:"status"`
	CreatedAt       time.Time                `json:"createdAt"`
}

type reservationDetail struct {
	reservationList
	AllergyNote *string        `json:"allergy_note"`
	UpdatedAt   *time.Time     `json:"updatedAt"`
	User        *userRef       `json:"user"`
	Restaurant  *restaurantRef `json:"restaurant"`
}

type ReservationController struct {
	Repo        *repository.ReservationRepository
	Restaurants *repository.RestaurantRepository
	Service     *services.ReservationService
	Logger      *zap.Logger
}

func NewReservationController(db *gorm.DB, logger *zap.Logger, notifier services.ReservationNotifier) *ReservationController {
	repo := repository.NewReservationRepository(db)
	restaurants := repository.NewRestaurantRepository(db)
	service := services.NewReservationService(repo, restaurants, db)
	service.Notifier = notifier
	return &ReservationController{
		Repo:        repo,
		Restaurants: restaurants,
		Service:     service,
		Logger:      logger,
	}
}

// GET /api/reservation/
func (ctl *ReservationController) List(c *gin.Context) {
	reservations, err := ctl.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	items := make([]reservationList, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, reservationList{
			ID: r.ID, UUID: r.UUID, GuestNumber: r.GuestNumber,
			ReservationDate: r.ReservationDate, ReservationTime: r.ReservationTime,
			Status: r.Status, CreatedAt: r.CreatedAt,
		})
	}
	resp.OK(c, items)
}

// POST /api/reservation/add
func (ctl *ReservationController) Create(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		resp.Unauthorized(c, "authentification requise")
		return
	}

	var req reservationWrite
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.GuestNumber == nil || req.ReservationDate == nil || req.ReservationTime == nil {
		resp.BadRequest(c, "guest_number, reservation_date et reservation_time sont requis")
		return
	}

	restaurant, err := resolveRestaurant(c, req.RestaurantID, req.Restaurant, ctl.Restaurants)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if restaurant == nil {
		resp.BadRequest(c, "restaurant cible requis")
		return
	}

	reservation := entity.Reservation{
		GuestNumber:     *req.GuestNumber,
		ReservationDate: *req.ReservationDate,
		ReservationTime: *req.ReservationTime,
		AllergyNote:     req.AllergyNote,
		UserID:          user.ID,
		RestaurantID:    &restaurant.ID,
	}
	if req.UUID != nil && *req.UUID != "" {
		reservation.UUID = *req.UUID
	}
	if req.Status != nil {
		reservation.Status = entity.ReservationStatus(*req.Status)
	}

	if err := ctl.Service.Create(&reservation); err != nil {
		if isReservationInputError(err) {
			resp.BadRequest(c, err.Error())
			return
		}
		ctl.Logger.Error("création réservation", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": fmt.Sprintf("réservation créée avec succès %d id", reservation.ID)})
}

// GET /api/reservation/:id
func (ctl *ReservationController) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	reservation, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if reservation == nil {
		resp.NotFound(c, fmt.Sprintf("Réservation d'id %d introuvable", id))
		return
	}

	resp.OK(c, reservationDetail{
		reservationList: reservationList{
			ID: reservation.ID, UUID: reservation.UUID, GuestNumber: reservation.GuestNumber,
			ReservationDate: reservation.ReservationDate, ReservationTime: reservation.ReservationTime,
			Status: reservation.Status, CreatedAt: reservation.CreatedAt,
		},
		AllergyNote: reservation.AllergyNote,
		UpdatedAt:   reservation.UpdatedAt,
		User:        newUserRef(reservation.User),
		Restaurant:  newRestaurantRef(reservation.Restaurant),
	})
}

// PUT /api/reservation/:id
func (ctl *ReservationController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	reservation, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if reservation == nil {
		resp.NotFound(c, fmt.Sprintf("Réservation d'id %d introuvable", id))
		return
	}

	var req reservationWrite
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.GuestNumber != nil {
		reservation.GuestNumber = *req.GuestNumber
	}
	if req.ReservationDate != nil {
		reservation.ReservationDate = *req.ReservationDate
	}
	if req.ReservationTime != nil {
		reservation.ReservationTime = *req.ReservationTime
	}
	if req.AllergyNote != nil {
		reservation.AllergyNote = req.AllergyNote
	}
	if req.Status != nil {
		reservation.Status = entity.ReservationStatus(*req.Status)
	}
	if req.UUID != nil && *req.UUID != "" {
		reservation.UUID = *req.UUID
	}
	if req.RestaurantID != nil || req.Restaurant != nil {
		restaurant, err := resolveRestaurant(c, req.RestaurantID, req.Restaurant, ctl.Restaurants)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if restaurant != nil {
			reservation.RestaurantID = &restaurant.ID
			reservation.Restaurant = restaurant
		}
	}

	if err := ctl.Service.Update(reservation); err != nil {
		if isReservationInputError(err) {
			resp.BadRequest(c, err.Error())
			return
		}
		ctl.Logger.Error("mise à jour réservation", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Réservation mise à jour", "id": reservation.ID, "status": reservation.Status})
}

// DELETE /api/reservation/:id
func (ctl *ReservationController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	reservation, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if reservation == nil {
		resp.NotFound(c, fmt.Sprintf("Réservation d'id %d introuvable", id))
		return
	}

	if err := ctl.Service.Delete(reservation); err != nil {
		ctl.Logger.Error("suppression réservation", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("Réservation d'id %d supprimée avec succès", id))
}

func isReservationInputError(err error) bool {
	return errors.Is(err, services.ErrUnknownStatus) ||
		errors.Is(err, services.ErrTooManyGuests) ||
		errors.Is(err, services.ErrBadDate) ||
		errors.Is(err, services.ErrBadTime) ||
		errors.Is(err, services.ErrNoRestaurant) ||
		errors.Is(err, services.ErrGuestsNotNumber)
}
