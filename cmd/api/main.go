package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/triviahub/trivia-api/internal/config"
	"github.com/triviahub/trivia-api/internal/handler"
	"github.com/triviahub/trivia-api/internal/middleware"
	pgRepo "github.com/triviahub/trivia-api/internal/repository/postgres"
	"github.com/triviahub/trivia-api/internal/service"
	"github.com/triviahub/trivia-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Loading configuration from %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции (схема + стартовый набор вопросов)
	if err := database.MigrateDB(db, "file://migrations"); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo)
	questionService := service.NewQuestionService(questionRepo)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики
	categoryHandler := handler.NewCategoryHandler(categoryService)
	questionHandler := handler.NewQuestionHandler(questionService, categoryService)
	quizHandler := handler.NewQuizHandler(quizService)

	isProduction := gin.Mode() == gin.ReleaseMode

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if isProduction {
		// Production: не доверять прокси-заголовкам.
		// При деплое за балансировщиком замените nil на его адреса.
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	allowOrigins := cfg.CORS.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.RequestID())

	// Rate limiting поверх Redis; без Redis API поднимается без лимитера
	if cfg.RateLimit.Enabled {
		redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis, rate limiting disabled: %v", err)
		} else {
			log.Println("Successfully connected to Redis")
			defer redisClient.Close()

			limitCfg := middleware.DefaultAPIRateLimitConfig()
			if cfg.RateLimit.MaxRequests > 0 {
				limitCfg.MaxRequests = cfg.RateLimit.MaxRequests
			}
			if cfg.RateLimit.WindowSec > 0 {
				limitCfg.Window = time.Duration(cfg.RateLimit.WindowSec) * time.Second
			}
			router.Use(middleware.NewRateLimiter(redisClient).Limit(limitCfg))
		}
	}

	// Liveness: отвечает 200 только при живом подключении к БД
	router.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Маршруты API
	router.GET("/categories", categoryHandler.GetCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		questionHandler.GetQuestionsByCategory)

	router.GET("/questions", questionHandler.GetQuestions)
	router.POST("/questions", questionHandler.CreateQuestion)
	router.POST("/questions/search", questionHandler.SearchQuestions)
	router.GET("/questions/export", questionHandler.ExportQuestions)
	router.DELETE("/questions/:id",
		middleware.ExtractUintParam("id", "questionID"),
		questionHandler.DeleteQuestion)

	router.POST("/quizzes", quizHandler.NextQuestion)

	// HTTP сервер с таймаутами из конфигурации
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown по SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	log.Println("Server stopped")
}
