package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/rocgym/jobboard/internal/config"
	"github.com/rocgym/jobboard/internal/database"
	"github.com/rocgym/jobboard/internal/handler"
	"github.com/rocgym/jobboard/internal/middleware"
	"github.com/rocgym/jobboard/internal/queue"
	"github.com/rocgym/jobboard/internal/repository"
	"github.com/rocgym/jobboard/internal/router"
	"github.com/rocgym/jobboard/internal/service"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis is optional: with no client the rate limiter and the job-list
	// cache become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)

	users := repository.NewUserRepo(db)
	jobs := repository.NewJobRepo(db)
	apps := repository.NewApplicationRepo(db)
	members := repository.NewMemberRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users)
	jobHandler := handler.NewJobHandler(cfg, jobs)
	appHandler := handler.NewApplicationHandler(jobs, apps, service.QueuePublisher{})
	memberHandler := handler.NewMemberHandler(members)
	healthHandler := handler.NewHealthHandler(db)

	e := echo.New()
	router.RegisterPublic(e, jobHandler, healthHandler, cache)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret, limiter)
	router.RegisterJobs(e, jobHandler, appHandler, cfg.JWTSecret)
	router.RegisterMembers(e, memberHandler, cfg.JWTSecret)

	// Background consumer writing the application audit log.  It keeps
	// reconnecting on its own; the API stays up without a broker.
	go func() {
		if err := queue.StartApplicationConsumer(); err != nil {
			log.Printf("application consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
