package router

import (
	auth "chess_backend/internal/auth/controller"
	game "chess_backend/internal/game/controller"

	"github.com/gorilla/mux"
)

func SetUpRoutes(authHandler *auth.AuthHandler, gameHandler *game.GameHandler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/login/", authHandler.LoginUser).Methods("POST")
	router.HandleFunc("/register/", authHandler.RegisterUser).Methods("POST")
	router.HandleFunc("/logout/", authHandler.LogoutUser).Methods("POST")

	router.HandleFunc("/games/", gameHandler.ListGames).Methods("GET")
	router.HandleFunc("/games/", gameHandler.CreateGame).Methods("POST")
	router.HandleFunc("/games/{id}/", gameHandler.GetGame).Methods("GET")
	router.HandleFunc("/games/{id}/", gameHandler.UpdateGame).Methods("PUT", "PATCH")
	router.HandleFunc("/games/{id}/", gameHandler.DeleteGame).Methods("DELETE")
	router.HandleFunc("/games/{id}/result/", gameHandler.ReportResult).Methods("POST")
	return router
}
