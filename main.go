package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/c41m07/sf-restaurant/configs"
	"github.com/c41m07/sf-restaurant/middlewares"
	"github.com/c41m07/sf-restaurant/repository"
	"github.com/c41m07/sf-restaurant/routes"
	"github.com/c41m07/sf-restaurant/ws"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := configs.InitLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := configs.ConnectionDB(cfg.DBSource); err != nil {
		logger.Fatal("connexion base de données", zap.Error(err))
	}
	db := configs.DB()

	if err := configs.SetupDatabase(db); err != nil {
		logger.Fatal("migration du schéma", zap.Error(err))
	}
	if err := configs.SeedAdmin(cfg, logger); err != nil {
		logger.Fatal("seed admin", zap.Error(err))
	}

	hub := ws.NewReservationHub(repository.NewRestaurantRepository(db), logger)
	go hub.Run()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, logger, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("serveur démarré", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("arrêt du serveur", zap.Error(err))
	}
}
