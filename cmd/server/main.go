package main

import (
	"context"
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"member_portal/internal/app/di"
	"member_portal/internal/app/router"
	authadapters "member_portal/internal/feature/auth/adapters"
	authhandler "member_portal/internal/feature/auth/transport/handler"
	authusecase "member_portal/internal/feature/auth/usecase"
	homehandler "member_portal/internal/feature/home/transport/handler"
	"member_portal/internal/platform/config"
	platformmongo "member_portal/internal/platform/mongo"
	platformredis "member_portal/internal/platform/redis"
	"member_portal/internal/platform/token"
)

func main() {
	cfg := config.Load()

	// MongoDB
	client, err := platformmongo.NewClient(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("[ERROR] Failed to disconnect MongoDB client:", err)
		}
	}()
	db := client.Database(cfg.MongoDatabase)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions are held in process memory.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMongo(db)
	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		cancel()
		log.Fatal("Failed to create user indexes:", err)
	}
	cancel()
	sessionRepo := di.NewSessionRepository(rdb)

	// Usecase
	signer := token.NewSigner(cfg.SessionSecret, cfg.SessionTTL)
	authUC := authusecase.NewAuthUsecase(userRepo)
	sessionUC := authusecase.NewSessionUsecase(sessionRepo, userRepo, signer, cfg.SessionTTL)

	// Handler
	cookies := authhandler.NewCookieHelper(cfg.SessionTTL, cfg.CookieSecure)
	authH := authhandler.NewAuthHandler(authUC, sessionUC, cookies)
	homeH := homehandler.NewHomeHandler()

	r := router.NewRouter(authH, homeH, sessionUC)

	// SESSION_SECRET check (development reminder)
	if cfg.SessionSecret == "" {
		log.Println("[WARN] SESSION_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
