package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"hrms-lite/internal/config"
	"hrms-lite/internal/db"
	"hrms-lite/internal/router"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool := db.NewPool(ctx, cfg.DatabaseURL)
	defer pool.Close()

	db.EnsureSchema(ctx, pool)

	r := gin.Default()
	router.Setup(r, pool)

	log.Printf("listening on :%s ...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
