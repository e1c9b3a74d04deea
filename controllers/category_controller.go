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

// categoryWrite est la projection d'écriture : seuls ces champs sont acceptés
// en entrée, les champs gérés côté serveur (id, timestamps) sont ignorés.
type categoryWrite struct {
	UUID         *string     `json:"uuid"`
	Title        *string     `json:"title"`
	RestaurantID *uint       `json:"restaurant_id"`
	Restaurant   *refPayload `json:"restaurant"`
}

type categoryList struct {
	ID        uint      `json:"id"`
	UUID      string    `json:"uuid"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type categoryDetail struct {
	categoryList
	UpdatedAt  *time.Time     `json:"updatedAt"`
	Restaurant *restaurantRef `json:"restaurant"`
	Dishes     []dishRef      `json:"dishes"`
}

type CategoryController struct {
	Repo        *repository.CategoryRepository
	Restaurants *repository.RestaurantRepository
	Logger      *zap.Logger
}

func NewCategoryController(db *gorm.DB, logger *zap.Logger) *CategoryController {
	return &CategoryController{
		Repo:        repository.NewCategoryRepository(db),
		Restaurants: repository.NewRestaurantRepository(db),
		Logger:      logger,
	}
}

// GET /api/category/
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	items := make([]categoryList, 0, len(categories))
	for _, cat := range categories {
		items = append(items, categoryList{ID: cat.ID, UUID: cat.UUID, Title: cat.Title, CreatedAt: cat.CreatedAt})
	}
	resp.OK(c, items)
}

// POST /api/category/add
func (ctl *CategoryController) Create(c *gin.Context) {
	var req categoryWrite
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

	category := entity.Category{
		UUID:      uuid.NewString(),
		Title:     *req.Title,
		CreatedAt: time.Now(),
	}
	if req.UUID != nil && *req.UUID != "" {
		category.UUID = *req.UUID
	}
	if restaurant != nil {
		category.RestaurantID = &restaurant.ID
	}

	if err := ctl.Repo.Create(&category); err != nil {
		ctl.Logger.Error("création catégorie", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"message": fmt.Sprintf("catégorie créée avec succès %d id", category.ID)})
}

// GET /api/category/:id
func (ctl *CategoryController) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	category, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if category == nil {
		resp.NotFound(c, fmt.Sprintf("Catégorie d'id %d introuvable", id))
		return
	}

	resp.OK(c, categoryDetail{
		categoryList: categoryList{ID: category.ID, UUID: category.UUID, Title: category.Title, CreatedAt: category.CreatedAt},
		UpdatedAt:    category.UpdatedAt,
		Restaurant:   newRestaurantRef(category.Restaurant),
		Dishes:       newDishRefs(category.Dishes),
	})
}

// PUT /api/category/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	category, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if category == nil {
		resp.NotFound(c, fmt.Sprintf("Catégorie d'id %d introuvable", id))
		return
	}

	var req categoryWrite
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// Fusion partielle : seuls les champs fournis écrasent l'existant.
	if req.Title != nil {
		category.Title = *req.Title
	}
	if req.UUID != nil && *req.UUID != "" {
		category.UUID = *req.UUID
	}
	if req.RestaurantID != nil || req.Restaurant != nil {
		restaurant, err := resolveRestaurant(c, req.RestaurantID, req.Restaurant, ctl.Restaurants)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		if restaurant != nil {
			category.RestaurantID = &restaurant.ID
			category.Restaurant = restaurant
		}
	}
	touch(&category.UpdatedAt)

	if err := ctl.Repo.Update(category); err != nil {
		ctl.Logger.Error("mise à jour catégorie", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Catégorie mise à jour", "id": category.ID, "title": category.Title})
}

// DELETE /api/category/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	category, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if category == nil {
		resp.NotFound(c, fmt.Sprintf("Catégorie d'id %d introuvable", id))
		return
	}

	if err := ctl.Repo.Delete(category); err != nil {
		ctl.Logger.Error("suppression catégorie", zap.Error(err))
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, fmt.Sprintf("Catégorie d'id %d supprimée avec succès", id))
}
