package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cloverwhale/cafe-and-wifi/config"
	"github.com/cloverwhale/cafe-and-wifi/database"
	"github.com/cloverwhale/cafe-and-wifi/route"
	"github.com/cloverwhale/cafe-and-wifi/store"
	"github.com/cloverwhale/cafe-and-wifi/utils"
)

// The session-authenticated surface: registration, login, and the
// curated listing with add/edit/delete.
func main() {
	cfg := config.Load("8081", "cafes.db")

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	db, err := database.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.MigrateWeb(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	origins := []string{"http://localhost:3000"}
	if cfg.AllowedOrigin != "" {
		origins = append(origins, cfg.AllowedOrigin)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(utils.RequestLogger(log))

	route.WebRoutes(router, store.NewUserStore(db), store.NewCafeStore(db), cfg.SessionSecret)

	log.Infof("Web server running on port %s", cfg.AppPort)
	if err := router.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
