package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/c41m07/sf-restaurant/entity"
	"github.com/c41m07/sf-restaurant/pkg/resp"
	"github.com/c41m07/sf-restaurant/repository"
)

type pictureWrite struct {
	UUID         *string     `json:"uuid"`
	Title        *string     `json:"title"`
	RestaurantID *uint       `json:"restaurant_id"`
	Restaurant   *refPayload `json:"restaurant"`
}

type pictureList struct {
	ID        uint      `json:"id"`
	UUID      string    `json:"uuid"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type pictureDetail struct {
	pictureList
	UpdatedAt  *time.Time     `json:"updatedAt"`
	Restaurant *restaurantRef `json:"restaurant"`
}

type PictureController struct {
	Repo        *repository.PictureRepository
	Restaurants *repository.RestaurantRepository
	Logger      *zap.Logger
}

func NewPictureController(db *gorm.DB, logger *zap.Logger) *PictureController {
	return &PictureController{
		Repo:        repository.NewPictureRepository(db),
		Restaurants: repository.NewRestaurantRepository(db),
		Logger:      logger,
	}
}

// GET /api/picture/
func (ctl *PictureController) List(c *gin.Context) {
	pictures, err := ctl.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	items := make([]pictureList, 0, len(pictures))
	for _, p := range pictures {
		items = append(items, pictureList{ID: p.ID, UUID: p.UUID, Title: p.Title, CreatedAt: p.CreatedAt})
	}
	resp.OK(c, items)
}

// POST /api/picture/add
func (ctl *PictureController) Create(c *gin.Context) {
	var req pictureWrite
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Title == nil || *req.Title == "" {
		resp.BadRequest(c, "titre requis")
		return
	}

	restaurant, err := resolveRestaurant(c, req.RestaurantID, req.Restaurant, ctl.Restaurants)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	picture := entity.Picture{
		UUID:      uuid.NewString(),
		Title:     *req.Title,
		CreatedAt: time.Now(),
	}
	if req.UUID != nil && *req.UUID != "" {
		picture.UUID = *req.UUID
	}
	if restaurant != nil {
		picture.RestaurantID = &restaurant.ID
	}

	if err := ctl.Repo.Create(&picture); err != nil {
		ctl.Logger.Error("création image", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": fmt.Sprintf("image créée avec succès %d id", picture.ID)})
}

// GET /api/picture/:id
func (ctl *PictureController) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	picture, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if picture == nil {
		resp.NotFound(c, fmt.Sprintf("Image d'id %d introuvable", id))
		return
	}

	resp.OK(c, pictureDetail{
		pictureList: pictureList{ID: picture.ID, UUID: picture.UUID, Title: picture.Title, CreatedAt: picture.CreatedAt},
		UpdatedAt:   picture.UpdatedAt,
		Restaurant:  newRestaurantRef(picture.Restaurant),
	})
}

// PUT /api/picture/:id
func (ctl *PictureController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	picture, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if picture == nil {
		resp.NotFound(c, fmt.Sprintf("Image d'id %d introuvable", id))
		return
	}

	var req pictureWrite
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Title != nil {
		picture.Title = *req.Title
	}
	if req.UUID != nil && *req.UUID != "" {
		picture.UUID = *req.UUID
	}
	if req.RestaurantID != nil || req.Restaurant != nil {
		restaurant, err := resolveRestaurant(c, req.RestaurantID, req.Restaurant, ctl.Restaurants)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if restaurant != nil {
			picture.RestaurantID = &restaurant.ID
			picture.Restaurant = restaurant
		}
	}
	touch(&picture.UpdatedAt)

	if err := ctl.Repo.Update(picture); err != nil {
		ctl.Logger.Error("mise à jour image", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Image mise à jour", "id": picture.ID, "title": picture.Title})
}

// DELETE /api/picture/:id
func (ctl *PictureController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	picture, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if picture == nil {
		resp.NotFound(c, fmt.Sprintf("Image d'id %d introuvable", id))
		return
	}

	if err := ctl.Repo.Delete(picture); err != nil {
		ctl.Logger.Error("suppression image", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("Image d'id %d supprimée avec succès", id))
}
