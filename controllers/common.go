package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/c41m07/sf-restaurant/entity"
	"github.com/c41m07/sf-restaurant/middlewares"
	"github.com/c41m07/sf-restaurant/repository"
)

// refPayload porte la forme imbriquée {"restaurant": {"id": 1}} des payloads d'écriture.
type refPayload struct {
	ID uint `json:"id"`
}

// Projections partagées entre les réponses detail.
type restaurantRef struct {
	ID   uint   `json:"id"`
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

type userRef struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type dishRef struct {
	ID    uint         `json:"id"`
	UUID  string       `json:"uuid"`
	Title string       `json:"title"`
	Price entity.Price `json:"price"`
}

type categoryRef struct {
	ID    uint   `json:"id"`
	UUID  string `json:"uuid"`
	Title string `json:"title"`
}

type menuRef struct {
	ID    uint         `json:"id"`
	UUID  string       `json:"uuid"`
	Title string       `json:"title"`
	Price entity.Price `json:"price"`
}

type pictureRef struct {
	ID    uint   `json:"id"`
	UUID  string `json:"uuid"`
	Title string `json:"title"`
}

func newRestaurantRef(r *entity.Restaurant) *restaurantRef {
	if r == nil {
		return nil
	}
	return &restaurantRef{ID: r.ID, UUID: r.UUID, Name: r.Name}
}

func newUserRef(u *entity.User) *userRef {
	if u == nil {
		return nil
	}
	return &userRef{ID: u.ID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}

func newDishRefs(dishes []entity.Dish) []dishRef {
	refs := make([]dishRef, 0, len(dishes))
	for _, d := range dishes {
		refs = append(refs, dishRef{ID: d.ID, UUID: d.UUID, Title: d.Title, Price: d.Price})
	}
	return refs
}

func newCategoryRefs(categories []entity.Category) []categoryRef {
	refs := make([]categoryRef, 0, len(categories))
	for _, c := range categories {
		refs = append(refs, categoryRef{ID: c.ID, UUID: c.UUID, Title: c.Title})
	}
	return refs
}

// resolveRestaurant résout le restaurant propriétaire d'une ressource enfant :
// restaurant_id explicite, puis restaurant.id imbriqué, puis le restaurant
// possédé par l'appelant authentifié.
func resolveRestaurant(c *gin.Context, restaurantID *uint, nested *refPayload, repo *repository.RestaurantRepository) (*entity.Restaurant, error) {
	if restaurantID != nil {
		return repo.FindByID(*restaurantID)
	}
	if nested != nil && nested.ID != 0 {
		return repo.FindByID(nested.ID)
	}
	if user := middlewares.CurrentUser(c); user != nil {
		return repo.FindByOwner(user.ID)
	}
	return nil, nil
}

func touch(updatedAt **time.Time) {
	now := time.Now()
	*updatedAt = &now
}
