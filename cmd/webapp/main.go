package main

import (
	authController "chess_backend/internal/auth/controller"
	authRepository "chess_backend/internal/auth/repository"
	authUsecase "chess_backend/internal/auth/usecase"

	gameController "chess_backend/internal/game/controller"
	gameRepository "chess_backend/internal/game/repository"
	gameUsecase "chess_backend/internal/game/usecase"

	"chess_backend/internal/service/logger"
	"chess_backend/internal/service/middleware"
	"chess_backend/internal/service/router"
	"chess_backend/internal/service/session"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	db := middleware.DbConnect()
	redisClient := middleware.InitRedis()
	sessions := session.NewRedisSessionStore(redisClient)

	jwtToken, err := middleware.NewJwtToken(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("Failed to create JWT token: %v", err)
	}

	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		err := logger.SyncLoggers()
		if err != nil {
			log.Fatalf("Failed to sync loggers: %v", err)
		}
	}()

	authRepo := authRepository.NewAuthRepository(db)
	authUC := authUsecase.NewAuthUsecase(authRepo)
	authHandler := authController.NewAuthHandler(authUC, jwtToken, sessions)

	gameRepo := gameRepository.NewGameRepository(db)
	gameUC := gameUsecase.NewGameUsecase(gameRepo)
	gameHandler := gameController.NewGameHandler(gameUC, jwtToken, sessions)

	mainRouter := router.SetUpRoutes(authHandler, gameHandler)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)
	http.Handle("/", middleware.EnableCORS(mainRouter))
	fmt.Printf("Starting HTTP server on adress %s\n", os.Getenv("BACKEND_URL"))
	if err := http.ListenAndServe(os.Getenv("BACKEND_URL"), nil); err != nil {
		fmt.Printf("Error on starting server: %s", err)
	}
}
