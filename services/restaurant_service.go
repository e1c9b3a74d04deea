package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/c41m07/sf-restaurant/entity"
	"github.com/c41m07/sf-restaurant/repository"
)

var (
	ErrOwnerAlreadyHasRestaurant = errors.New("cet utilisateur possède déjà un restaurant")
	ErrMissingOwner              = errors.New("propriétaire requis")
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
	DB   *gorm.DB
}

func NewRestaurantService(repo *repository.RestaurantRepository, db *gorm.DB) *RestaurantService {
	return &RestaurantService{Repo: repo, DB: db}
}

// Create attache le propriétaire (1:1 strict) et valide les horaires.
func (s *RestaurantService) Create(owner *entity.User, restaurant *entity.Restaurant) error {
	if owner == nil {
		return ErrMissingOwner
	}
	if err := restaurant.OpeningHoursAm.Validate(); err != nil {
		return err
	}
	if err := restaurant.OpeningHoursPm.Validate(); err != nil {
		return err
	}

	existing, err := s.Repo.FindByOwner(owner.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrOwnerAlreadyHasRestaurant
	}

	if restaurant.UUID == "" {
		restaurant.UUID = uuid.NewString()
	}
	restaurant.CreatedAt = time.Now()
	restaurant.AttachOwner(owner)
	return s.Repo.Create(restaurant)
}

func (s *RestaurantService) Update(restaurant *entity.Restaurant) error {
	if err := restaurant.OpeningHoursAm.Validate(); err != nil {
		return err
	}
	if err := restaurant.OpeningHoursPm.Validate(); err != nil {
		return err
	}
	now := time.Now()
	restaurant.UpdatedAt = &now
	return s.Repo.Update(restaurant)
}

// Delete supprime le restaurant, ses enfants et les lignes de jonction
// qui référencent ses plats et catégories, dans une seule transaction.
func (s *RestaurantService) Delete(restaurant *entity.Restaurant) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		dishIDs := tx.Model(&entity.Dish{}).Select("id").Where("restaurant_id = ?", restaurant.ID)
		if err := tx.Where("dish_id IN (?)", dishIDs).Delete(&entity.DishCategory{}).Error; err != nil {
			return err
		}
		dishIDsForMenus := tx.Model(&entity.Dish{}).Select("id").Where("restaurant_id = ?", restaurant.ID)
		if err := tx.Where("dish_id IN (?)", dishIDsForMenus).Delete(&entity.MenuDish{}).Error; err != nil {
			return err
		}
		menuIDs := tx.Model(&entity.Menu{}).Select("id").Where("restaurant_id = ?", restaurant.ID)
		if err := tx.Where("menu_id IN (?)", menuIDs).Delete(&entity.MenuDish{}).Error; err != nil {
			return err
		}
		categoryIDs := tx.Model(&entity.Category{}).Select("id").Where("restaurant_id = ?", restaurant.ID)
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&entity.DishCategory{}).Error; err != nil {
			return err
		}

		for _, child := range []any{
			&entity.Reservation{}, &entity.Picture{}, &entity.Menu{},
			&entity.Dish{}, &entity.Category{},
		} {
			if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(child).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&entity.Restaurant{}, restaurant.ID).Error
	})
}
