package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/c41m07/sf-restaurant/configs"
	"github.com/c41m07/sf-restaurant/controllers"
	"github.com/c41m07/sf-restaurant/middlewares"
	"github.com/c41m07/sf-restaurant/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, logger *zap.Logger, hub *ws.ReservationHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := middlewares.AuthMiddleware(db)

	securityCtrl := controllers.NewSecurityController(db, cfg.JWTSecret, cfg.TicketTTL, logger)
	restaurantCtrl := controllers.NewRestaurantController(db, logger)
	categoryCtrl := controllers.NewCategoryController(db, logger)
	dishCtrl := controllers.NewDishController(db, logger)
	menuCtrl := controllers.NewMenuController(db, logger)
	pictureCtrl := controllers.NewPictureController(db, logger)
	reservationCtrl := controllers.NewReservationController(db, logger, hub)

	api := r.Group("/api")

	security := api.Group("/security")
	{
		security.POST("/register", securityCtrl.Register)
		security.POST("/login", securityCtrl.Login)
		security.GET("/me", auth, securityCtrl.Me)
		security.GET("/ticket", auth, securityCtrl.Ticket)
	}

	restaurant := api.Group("/restaurant")
	{
		restaurant.GET("/", restaurantCtrl.List)
		restaurant.POST("/add", auth, restaurantCtrl.Create)
		restaurant.GET("/:id", restaurantCtrl.Show)
		restaurant.PUT("/:id", auth, restaurantCtrl.Update)
		restaurant.DELETE("/:id", auth, restaurantCtrl.Delete)
	}

	category := api.Group("/category")
	{
		category.GET("/", categoryCtrl.List)
		category.POST("/add", auth, categoryCtrl.Create)
		category.GET("/:id", categoryCtrl.Show)
		category.PUT("/:id", auth, categoryCtrl.Update)
		category.DELETE("/:id", auth, categoryCtrl.Delete)
	}

	dish := api.Group("/dish")
	{
		dish.GET("/", dishCtrl.List)
		dish.POST("/add", auth, dishCtrl.Create)
		dish.GET("/:id", dishCtrl.Show)
		dish.PUT("/:id", auth, dishCtrl.Update)
		dish.DELETE("/:id", auth, dishCtrl.Delete)
		dish.POST("/:id/category/:categoryId", auth, dishCtrl.AttachCategory)
		dish.DELETE("/:id/category/:categoryId", auth, dishCtrl.DetachCategory)
	}

	menu := api.Group("/menu")
	{
		menu.GET("/", menuCtrl.List)
		menu.POST("/add", auth, menuCtrl.Create)
		menu.GET("/:id", menuCtrl.Show)
		menu.PUT("/:id", auth, menuCtrl.Update)
		menu.DELETE("/:id", auth, menuCtrl.Delete)
		menu.POST("/:id/dish/:dishId", auth, menuCtrl.AttachDish)
		menu.DELETE("/:id/dish/:dishId", auth, menuCtrl.DetachDish)
	}

	picture := api.Group("/picture")
	{
		picture.GET("/", pictureCtrl.List)
		picture.POST("/add", auth, pictureCtrl.Create)
		picture.GET("/:id", pictureCtrl.Show)
		picture.PUT("/:id", auth, pictureCtrl.Update)
		picture.DELETE("/:id", auth, pictureCtrl.Delete)
	}

	reservation := api.Group("/reservation")
	{
		reservation.GET("/", auth, reservationCtrl.List)
		reservation.POST("/add", auth, reservationCtrl.Create)
		reservation.GET("/:id", auth, reservationCtrl.Show)
		reservation.PUT("/:id", auth, reservationCtrl.Update)
		reservation.DELETE("/:id", auth, reservationCtrl.Delete)
	}

	r.GET("/ws/reservations/:restaurantId", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
