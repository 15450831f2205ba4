package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/medconnect/telemed-api/internal/config"
	dbpkg "github.com/medconnect/telemed-api/internal/db"
	"github.com/medconnect/telemed-api/internal/identity"
	"github.com/medconnect/telemed-api/internal/middleware"
	"github.com/medconnect/telemed-api/internal/routes"
	"github.com/medconnect/telemed-api/internal/session"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	sessions := session.NewRedisStore(rdb)

	idp := identity.NewHTTPProvider(cfg.IdentityProviderURL)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, sessions, idp)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
