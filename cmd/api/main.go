package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zugflow/zugflow-api/internal/cache"
	"github.com/zugflow/zugflow-api/internal/config"
	dbpkg "github.com/zugflow/zugflow-api/internal/db"
	"github.com/zugflow/zugflow-api/internal/jobs"
	"github.com/zugflow/zugflow-api/internal/notify"
	"github.com/zugflow/zugflow-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	store := cache.New(cfg.RedisAddr)
	mailer := notify.NewMailer(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store, mailer)

	jobs.StartReminderJob(db, mailer)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
