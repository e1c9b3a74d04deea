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

type restaurantWrite struct {
	UUID           *string          `json:"uuid"`
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	OpeningHoursAm *entity.HourList `json:"opening_hours_am"`
	OpeningHoursPm *entity.HourList `json:"opening_hours_pm"`
	MaxGuests      *int             `json:"max_guests"`
}

type restaurantList struct {
	ID        uint      `json:"id"`
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	MaxGuests int       `json:"max_guests"`
	CreatedAt time.Time `json:"createdAt"`
}

type restaurantDetail struct {
	restaurantList
	Description    string          `json:"description"`
	OpeningHoursAm entity.HourList `json:"opening_hours_am"`
	OpeningHoursPm entity.HourList `json:"opening_hours_pm"`
	UpdatedAt      *time.Time      `json:"updatedAt"`
	Owner          *userRef        `json:"owner"`
	Categories     []categoryRef   `json:"categories"`
	Dishes         []dishRef       `json:"dishes"`
	Menus          []menuRef       `json:"menus"`
	Pictures       []pictureRef    `json:"pictures"`
}

type RestaurantController struct {
	Repo    *repository.RestaurantRepository
	Service *services.RestaurantService
	Logger  *zap.Logger
}

func NewRestaurantController(db *gorm.DB, logger *zap.Logger) *RestaurantController {
	repo := repository.NewRestaurantRepository(db)
	return &RestaurantController{
		Repo:    repo,
		Service: services.NewRestaurantService(repo, db),
		Logger:  logger,
	}
}

// GET /api/restaurant/
func (ctl *RestaurantController) List(c *gin.Context) {
	restaurants, err := ctl.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	items := make([]restaurantList, 0, len(restaurants))
	for _, r := range restaurants {
		items = append(items, restaurantList{ID: r.ID, UUID: r.UUID, Name: r.Name, MaxGuests: r.MaxGuests, CreatedAt: r.CreatedAt})
	}
	resp.OK(c, items)
}

// POST /api/restaurant/add
func (ctl *RestaurantController) Create(c *gin.Context) {
	owner := middlewares.CurrentUser(c)
	if owner == nil {
		resp.Unauthorized(c, "authentification requise")
		return
	}

	var req restaurantWrite
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Name == nil || *req.Name == "" {
		resp.BadRequest(c, "nom requis")
		return
	}

	restaurant := entity.Restaurant{Name: *req.Name}
	if req.UUID != nil {
		restaurant.UUID = *req.UUID
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.OpeningHoursAm != nil {
		restaurant.OpeningHoursAm = *req.OpeningHoursAm
	}
	if req.OpeningHoursPm != nil {
		restaurant.OpeningHoursPm = *req.OpeningHoursPm
	}
	if req.MaxGuests != nil {
		restaurant.MaxGuests = *req.MaxGuests
	}

	if err := ctl.Service.Create(owner, &restaurant); err != nil {
		if errors.Is(err, services.ErrOwnerAlreadyHasRestaurant) {
			resp.BadRequest(c, err.Error())
			return
		}
		ctl.Logger.Error("création restaurant", zap.Error(err))
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"message": fmt.Sprintf("restaurant créé avec succès %d id", restaurant.ID)})
}

// GET /api/restaurant/:id
func (ctl *RestaurantController) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	restaurant, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if restaurant == nil {
		resp.NotFound(c, fmt.Sprintf("Restaurant d'id %d introuvable", id))
		return
	}

	pictures := make([]pictureRef, 0, len(restaurant.Pictures))
	for _, p := range restaurant.Pictures {
		pictures = append(pictures, pictureRef{ID: p.ID, UUID: p.UUID, Title: p.Title})
	}
	menus := make([]menuRef, 0, len(restaurant.Menus))
	for _, m := range restaurant.Menus {
		menus = append(menus, menuRef{ID: m.ID, UUID: m.UUID, Title: m.Title, Price: m.Price})
	}

	resp.OK(c, restaurantDetail{
		restaurantList: restaurantList{ID: restaurant.ID, UUID: restaurant.UUID, Name: restaurant.Name, MaxGuests: restaurant.MaxGuests, CreatedAt: restaurant.CreatedAt},
		Description:    restaurant.Description,
		OpeningHoursAm: restaurant.OpeningHoursAm,
		OpeningHoursPm: restaurant.OpeningHoursPm,
		UpdatedAt:      restaurant.UpdatedAt,
		Owner:          newUserRef(restaurant.Owner),
		Categories:     newCategoryRefs(restaurant.Categories),
		Dishes:         newDishRefs(restaurant.Dishes),
		Menus:          menus,
		Pictures:       pictures,
	})
}

// PUT /api/restaurant/:id
func (ctl *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	restaurant, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if restaurant == nil {
		resp.NotFound(c, fmt.Sprintf("Restaurant d'id %d introuvable", id))
		return
	}

	var req restaurantWrite
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.OpeningHoursAm != nil {
		restaurant.OpeningHoursAm = *req.OpeningHoursAm
	}
	if req.OpeningHoursPm != nil {
		restaurant.OpeningHoursPm = *req.OpeningHoursPm
	}
	if req.MaxGuests != nil {
		restaurant.MaxGuests = *req.MaxGuests
	}
	if req.UUID != nil && *req.UUID != "" {
		restaurant.UUID = *req.UUID
	}

	if err := ctl.Service.Update(restaurant); err != nil {
		ctl.Logger.Error("mise à jour restaurant", zap.Error(err))
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Message(c, fmt.Sprintf("Restaurant d'id %d modifié avec succès", id))
}

// DELETE /api/restaurant/:id
func (ctl *RestaurantController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	restaurant, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if restaurant == nil {
		resp.NotFound(c, fmt.Sprintf("Restaurant d'id %d introuvable", id))
		return
	}

	if err := ctl.Service.Delete(restaurant); err != nil {
		ctl.Logger.Error("suppression restaurant", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("Restaurant d'id %d supprimé avec succès", id))
}
