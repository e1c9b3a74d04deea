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

type menuWrite struct {
	UUID         *string       `json:"uuid"`
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	Price        *entity.Price `json:"price"`
	RestaurantID *uint         `json:"restaurant_id"`
	Restaurant   *refPayload   `json:"restaurant"`
}

type menuList struct {
	ID        uint         `json:"id"`
	UUID      string       `json:"uuid"`
	Title     string       `json:"title"`
	Price     entity.Price `json:"price"`
	CreatedAt time.Time    `json:"createdAt"`
}

type menuDetail struct {
	menuList
	Description string         `json:"description"`
	UpdatedAt   *time.Time     `json:"updatedAt"`
	Restaurant  *restaurantRef `json:"restaurant"`
	Dishes      []dishRef      `json:"dishes"`
}

type MenuController struct {
	Repo        *repository.MenuRepository
	Dishes      *repository.DishRepository
	Restaurants *repository.RestaurantRepository
	Logger      *zap.Logger
}

func NewMenuController(db *gorm.DB, logger *zap.Logger) *MenuController {
	return &MenuController{
		Repo:        repository.NewMenuRepository(db),
		Dishes:      repository.NewDishRepository(db),
		Restaurants: repository.NewRestaurantRepository(db),
		Logger:      logger,
	}
}

// GET /api/menu/
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	items := make([]menuList, 0, len(menus))
	for _, m := range menus {
		items = append(items, menuList{ID: m.ID, UUID: m.UUID, Title: m.Title, Price: m.Price, CreatedAt: m.CreatedAt})
	}
	resp.OK(c, items)
}

// POST /api/menu/add
func (ctl *MenuController) Create(c *gin.Context) {
	var req menuWrite
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

	menu := entity.Menu{
		UUID:      uuid.NewString(),
		Title:     *req.Title,
		Price:     *req.Price,
		CreatedAt: time.Now(),
	}
	if req.UUID != nil && *req.UUID != "" {
		menu.UUID = *req.UUID
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if restaurant != nil {
		menu.RestaurantID = &restaurant.ID
	}

	if err := ctl.Repo.Create(&menu); err != nil {
		ctl.Logger.Error("création menu", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": fmt.Sprintf("menu créé avec succès %d id", menu.ID)})
}

// GET /api/menu/:id
func (ctl *MenuController) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	menu, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if menu == nil {
		resp.NotFound(c, fmt.Sprintf("Menu d'id %d introuvable", id))
		return
	}

	resp.OK(c, menuDetail{
		menuList:    menuList{ID: menu.ID, UUID: menu.UUID, Title: menu.Title, Price: menu.Price, CreatedAt: menu.CreatedAt},
		Description: menu.Description,
		UpdatedAt:   menu.UpdatedAt,
		Restaurant:  newRestaurantRef(menu.Restaurant),
		Dishes:      newDishRefs(menu.Dishes),
	})
}

// PUT /api/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	menu, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if menu == nil {
		resp.NotFound(c, fmt.Sprintf("Menu d'id %d introuvable", id))
		return
	}

	var req menuWrite
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Title != nil {
		menu.Title = *req.Title
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.Price != nil {
		menu.Price = *req.Price
	}
	if req.UUID != nil && *req.UUID != "" {
		menu.UUID = *req.UUID
	}
	if req.RestaurantID != nil || req.Restaurant != nil {
		restaurant, err := resolveRestaurant(c, req.RestaurantID, req.Restaurant, ctl.Restaurants)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if restaurant != nil {
			menu.RestaurantID = &restaurant.ID
			menu.Restaurant = restaurant
		}
	}
	touch(&menu.UpdatedAt)

	if err := ctl.Repo.Update(menu); err != nil {
		ctl.Logger.Error("mise à jour menu", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Menu mis à jour", "id": menu.ID, "title": menu.Title})
}

// DELETE /api/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	menu, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if menu == nil {
		resp.NotFound(c, fmt.Sprintf("Menu d'id %d introuvable", id))
		return
	}

	if err := ctl.Repo.Delete(menu); err != nil {
		ctl.Logger.Error("suppression menu", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("Menu d'id %d supprimé avec succès", id))
}

// POST /api/menu/:id/dish/:dishId
func (ctl *MenuController) AttachDish(c *gin.Context) {
	menuID, _ := strconv.Atoi(c.Param("id"))
	dishID, _ := strconv.Atoi(c.Param("dishId"))

	menu, err := ctl.Repo.FindByID(uint(menuID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if menu == nil {
		resp.NotFound(c, fmt.Sprintf("Menu d'id %d introuvable", menuID))
		return
	}
	dish, err := ctl.Dishes.FindByID(uint(dishID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if dish == nil {
		resp.NotFound(c, fmt.Sprintf("Plat d'id %d introuvable", dishID))
		return
	}

	if err := ctl.Repo.AttachDish(menu.ID, dish.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("Plat %d ajouté au menu %d", dish.ID, menu.ID))
}

// DELETE /api/menu/:id/dish/:dishId
func (ctl *MenuController) DetachDish(c *gin.Context) {
	menuID, _ := strconv.Atoi(c.Param("id"))
	dishID, _ := strconv.Atoi(c.Param("dishId"))

	menu, err := ctl.Repo.FindByID(uint(menuID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if menu == nil {
		resp.NotFound(c, fmt.Sprintf("Menu d'id %d introuvable", menuID))
		return
	}

	if err := ctl.Repo.DetachDish(uint(menuID), uint(dishID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("Plat %d retiré du menu %d", dishID, menuID))
}
