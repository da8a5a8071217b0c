package app

import (
	"context"
	"fmt"
	"net/http"

	"studyaid/internal/ai"
	"studyaid/internal/config"
	"studyaid/internal/db"
	"studyaid/internal/extract"
	"studyaid/internal/handlers"
	"studyaid/internal/logger"
	"studyaid/internal/middleware"
	"studyaid/internal/repository"
	"studyaid/internal/routes"
	"studyaid/internal/services"
	"studyaid/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Deps: внешние зависимости приложения. В тестах подменяются заглушками.
type Deps struct {
	Users     services.UserRepo
	Files     services.FileRepo
	Quizzes   services.QuizRepo
	Summaries services.SummaryRepo
	Store     storage.FileStore
	AI        ai.Generator
	DB        handlers.Pinger
}

// InitApp поднимает пул БД, хранилище файлов и клиента модели и собирает HTTP-обработчик.
// Возвращаемая функция закрывает ресурсы.
func InitApp(ctx context.Context, cfg *config.Config) (http.Handler, func(), error) {
	conn, err := db.NewPostgresConnection(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect db: %w", err)
	}

	store, err := NewStore(cfg)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	gemini := ai.NewGeminiClient(ai.Config{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Timeout: cfg.AITimeoutDuration(),
	})

	handler := NewRouter(cfg, Deps{
		Users:     repository.NewUserRepository(conn),
		Files:     repository.NewFileRepository(conn),
		Quizzes:   repository.NewQuizRepository(conn),
		Summaries: repository.NewSummaryRepository(conn),
		Store:     store,
		AI:        gemini,
		DB:        conn,
	})
	return handler, conn.Close, nil
}

// NewStore выбирает хранилище файлов по STORAGE_DRIVER.
func NewStore(cfg *config.Config) (storage.FileStore, error) {
	switch cfg.StorageDriver {
	case config.StorageS3:
		store, err := storage.NewS3Store(storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			Prefix:    "uploads",
		})
		if err != nil {
			return nil, fmt.Errorf("init s3 storage: %w", err)
		}
		logger.Log.Info("Хранилище файлов: S3", zap.String("bucket", cfg.S3Bucket))
		return store, nil
	case config.StorageDisk, "":
		store, err := storage.NewDiskStore(cfg.UploadDir)
		if err != nil {
			return nil, fmt.Errorf("init disk storage: %w", err)
		}
		logger.Log.Info("Хранилище файлов: диск", zap.String("dir", store.Dir()))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

// NewRouter собирает сервисы, хендлеры и маршруты поверх переданных зависимостей.
func NewRouter(cfg *config.Config, d Deps) http.Handler {
	// Сервисы
	authService := services.NewAuthService(d.Users, cfg.JWTSecret, cfg.AccessTTL())
	fileService := services.NewFileService(d.Files, d.Store)
	extractor := extract.NewService(d.Store, cfg.MaxUploadBytes())
	quizService := services.NewQuizService(d.Quizzes, d.AI, cfg.AIMaxInputChars)
	summaryService := services.NewSummaryService(d.Summaries, fileService, extractor, d.AI, cfg.AIMaxInputChars)
	statsService := services.NewStatsService(d.Summaries, d.Quizzes, d.Files)
	askService := services.NewAskService(d.AI)

	// Хендлеры
	healthHandler := handlers.NewHealthHandler(d.DB)
	authHandler := handlers.NewAuthHandler(authService)
	fileHandler := handlers.NewFileHandler(fileService, cfg.MaxUploadBytes())
	quizHandler := handlers.NewQuizHandler(quizService)
	summaryHandler := handlers.NewSummaryHandler(summaryService, statsService)
	assistantHandler := handlers.NewAssistantHandler(askService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router,
		middleware.JWTAuth(cfg.JWTSecret, authService),
		healthHandler, authHandler, fileHandler, quizHandler, summaryHandler, assistantHandler,
	)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSAllowedOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
	})
	return corsMiddleware.Handler(router)
}
