package routes

import (
	"net/http"

	"studyaid/internal/handlers"
	"studyaid/internal/middleware"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

func InitRoutes(
	router *mux.Router,
	authMW func(http.Handler) http.Handler,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	fileHandler *handlers.FileHandler,
	quizHandler *handlers.QuizHandler,
	summaryHandler *handlers.SummaryHandler,
	assistantHandler *handlers.AssistantHandler,
) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging)

	router.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMW)

	protected.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet)

	protected.HandleFunc("/file/upload", fileHandler.Upload).Methods(http.MethodPost)
	protected.HandleFunc("/file", fileHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/file/{id}", fileHandler.Get).Methods(http.MethodGet)

	protected.HandleFunc("/quizzes", quizHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/quizzes", quizHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/quizzes/{id}", quizHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/quizzes/{id}", quizHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/quizzes/{id}", quizHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/summary", summaryHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/summary", summaryHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/summary/stats", summaryHandler.Stats).Methods(http.MethodGet)
	protected.HandleFunc("/summary/{id}", summaryHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/summary/{id}", summaryHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/gemini/ask", assistantHandler.Ask).Methods(http.MethodPost)
}
