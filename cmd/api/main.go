package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/cache"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/config"
	externalservices "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/external_services"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/jwt"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/logger"
	passwordservice "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/password_service"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/persistence"
	randomgenerator "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/random_generator"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/uuidgen"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/infrastructure/validator"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()

	// Select and wire the persistence backend. This must complete before the
	// first request is accepted; a MONGO connect failure aborts startup.
	store, err := persistence.New(context.Background(), appConfig, appLogger)
	if err != nil {
		appLogger.Fatalf("persistence setup failed: %v", err)
	}
	defer store.Close()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		appLogger.Fatalf("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret)
	jwtService := jwt.NewJWTService(jwtManager)

	smtpHost := os.Getenv("EMAIL_HOST")
	smtpPort := os.Getenv("EMAIL_PORT")
	smtpUsername := os.Getenv("EMAIL_USERNAME")
	smtpPassword := os.Getenv("EMAIL_APP_PASSWORD")
	smtpFrom := os.Getenv("EMAIL_FROM")
	mailService := externalservices.NewEmailService(smtpHost, smtpPort, smtpUsername, smtpPassword, smtpFrom)

	hasher := passwordservice.NewHasher()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	randomGenerator := randomgenerator.NewRandomGenerator()

	userUsecase := usecase.NewUserUsecase(
		store.Users, store.Tokens, hasher, jwtService, mailService,
		appLogger, appConfig, appValidator, uuidGenerator, randomGenerator,
	)
	productUsecase := usecase.NewProductUsecase(store.Products, uuidGenerator, appLogger)
	cartUsecase := usecase.NewCartUsecase(store.Carts, store.Products, uuidGenerator, appLogger)
	chatUsecase := usecase.NewChatUsecase(store.Chats, uuidGenerator, appLogger)

	// Optional Redis product cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		if rdb := cache.NewRedisFromURL(context.Background(), redisURL); rdb != nil {
			defer cache.Close(rdb)
			productUsecase.SetProductCache(cache.NewProductCacheStore(rdb))
		}
	}

	router := gin.Default()
	appRouter := handlerHttp.NewRouter(userUsecase, productUsecase, cartUsecase, chatUsecase, jwtService, appConfig)
	appRouter.SetupRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	appLogger.Infof("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}
