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

type dishWrite struct {
	UUID         *string       `json:"uuid"`
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	Price        *entity.Price `json:"price"`
	RestaurantID *uint         `json:"restaurant_id"`
	Restaurant   *refPayload   `json:"restaurant"`
}

type dishList struct {
	ID        uint         `json:"id"`
	UUID      string       `json:"uuid"`
	Title     string       `json:"title"`
	Price     entity.Price `json:"price"`
	CreatedAt time.Time    `json:"createdAt"`
}

type dishDetail struct {
	dishList
	Description string         `json:"description"`
	UpdatedAt   *time.Time     `json:"updatedAt"`
	Restaurant  *restaurantRef `json:"restaurant"`
	Categories  []categoryRef  `json:"categories"`
}

type DishController struct {
	Repo        *repository.DishRepository
	Categories  *repository.CategoryRepository
	Restaurants *repository.RestaurantRepository
	Logger      *zap.Logger
}

func NewDishController(db *gorm.DB, logger *zap.Logger) *DishController {
	return &DishController{
		Repo:        repository.NewDishRepository(db),
		Categories:  repository.NewCategoryRepository(db),
		Restaurants: repository.NewRestaurantRepository(db),
		Logger:      logger,
	}
}

// GET /api/dish/
func (ctl *DishController) List(c *gin.Context) {
	dishes, err := ctl.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	items := make([]dishList, 0, len(dishes))
	for _, d := range dishes {
		items = append(items, dishList{ID: d.ID, UUID: d.UUID, Title: d.Title, Price: d.Price, CreatedAt: d.CreatedAt})
	}
	resp.OK(c, items)
}

// POST /api/dish/add
func (ctl *DishController) Create(c *gin.Context) {
	var req dishWrite
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Title == nil || *req.Title == "" {
		resp.BadRequest(c, "titre requis")
		return
	}
	if req.Price == nil {
		resp.BadRequest(c, "prix requis")
		return
	}

	restaurant, err := resolveRestaurant(c, req.RestaurantID, req.Restaurant, ctl.Restaurants)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	dish := entity.Dish{
		UUID:      uuid.NewString(),
		Title:     *req.Title,
		Price:     *req.Price,
		CreatedAt: time.Now(),
	}
	if req.UUID != nil && *req.UUID != "" {
		dish.UUID = *req.UUID
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if restaurant != nil {
		dish.RestaurantID = &restaurant.ID
	}

	if err := ctl.Repo.Create(&dish); err != nil {
		ctl.Logger.Error("création plat", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": fmt.Sprintf("plat créé avec succès %d id", dish.ID)})
}

// GET /api/dish/:id
func (ctl *DishController) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	dish, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if dish == nil {
		resp.NotFound(c, fmt.Sprintf("Plat d'id %d introuvable", id))
		return
	}

	resp.OK(c, dishDetail{
		dishList:    dishList{ID: dish.ID, UUID: dish.UUID, Title: dish.Title, Price: dish.Price, CreatedAt: dish.CreatedAt},
		Description: dish.Description,
		UpdatedAt:   dish.UpdatedAt,
		Restaurant:  newRestaurantRef(dish.Restaurant),
		Categories:  newCategoryRefs(dish.Categories),
	})
}

// PUT /api/dish/:id
func (ctl *DishController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	dish, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if dish == nil {
		resp.NotFound(c, fmt.Sprintf("Plat d'id %d introuvable", id))
		return
	}

	var req dishWrite
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Title != nil {
		dish.Title = *req.Title
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.Price != nil {
		dish.Price = *req.Price
	}
	if req.UUID != nil && *req.UUID != "" {
		dish.UUID = *req.UUID
	}
	if req.RestaurantID != nil || req.Restaurant != nil {
		restaurant, err := resolveRestaurant(c, req.RestaurantID, req.Restaurant, ctl.Restaurants)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if restaurant != nil {
			dish.RestaurantID = &restaurant.ID
			dish.Restaurant = restaurant
		}
	}
	touch(&dish.UpdatedAt)

	if err := ctl.Repo.Update(dish); err != nil {
		ctl.Logger.Error("mise à jour plat", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Plat mis à jour", "id": dish.ID, "title": dish.Title})
}

// DELETE /api/dish/:id
func (ctl *DishController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	dish, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if dish == nil {
		resp.NotFound(c, fmt.Sprintf("Plat d'id %d introuvable", id))
		return
	}

	if err := ctl.Repo.Delete(dish); err != nil {
		ctl.Logger.Error("suppression plat", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("Plat d'id %d supprimé avec succès", id))
}

// POST /api/dish/:id/category/:categoryId
func (ctl *DishController) AttachCategory(c *gin.Context) {
	dishID, _ := strconv.Atoi(c.Param("id"))
	categoryID, _ := strconv.Atoi(c.Param("categoryId"))

	dish, err := ctl.Repo.FindByID(uint(dishID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if dish == nil {
		resp.NotFound(c, fmt.Sprintf("Plat d'id %d introuvable", dishID))
		return
	}
	category, err := ctl.Categories.FindByID(uint(categoryID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if category == nil {
		resp.NotFound(c, fmt.Sprintf("Catégorie d'id %d introuvable", categoryID))
		return
	}

	if err := ctl.Repo.AttachCategory(dish.ID, category.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("Plat %d associé à la catégorie %d", dish.ID, category.ID))
}

// DELETE /api/dish/:id/category/:categoryId
func (ctl *DishController) DetachCategory(c *gin.Context) {
	dishID, _ := strconv.Atoi(c.Param("id"))
	categoryID, _ := strconv.Atoi(c.Param("categoryId"))

	dish, err := ctl.Repo.FindByID(uint(dishID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if dish == nil {
		resp.NotFound(c, fmt.Sprintf("Plat d'id %d introuvable", dishID))
		return
	}

	if err := ctl.Repo.DetachCategory(uint(dishID), uint(categoryID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("Plat %d dissocié de la catégorie %d", dishID, categoryID))
}
