package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/taskhub/taskhub-api/internal/auth"
	"github.com/taskhub/taskhub-api/internal/config"
	"github.com/taskhub/taskhub-api/internal/handler"
	"github.com/taskhub/taskhub-api/internal/repo"
	"github.com/taskhub/taskhub-api/internal/service"
	"github.com/taskhub/taskhub-api/internal/worker"
)

func main() {
	// Подключаем логгер
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключаем БД
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to Database.") // Fatal потому что дальнейшая работа теряет смысл
	}
	defer client.Disconnect(context.Background()) // Запланированное закрытие соединения

	if err := client.Ping(ctx, nil); err != nil { // Пытаемся пингануть БД
		log.Fatal("Failed to ping the Database.")
	}
	logger.Info("Successfully connected to the Database!")

	db := client.Database(cfg.MongoDB)
	if err := repo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to ensure indexes.")
	}

	userRepo := repo.NewUserRepo(db)
	groupRepo := repo.NewGroupRepo(db)
	taskRepo := repo.NewTaskRepo(db)

	tokens := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	groupService := service.NewGroupService(groupRepo, userRepo)
	taskService := service.NewTaskService(taskRepo, groupRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	groupHandler := handler.NewGroupHandler(groupService, logger)
	taskHandler := handler.NewTaskHandler(taskService, logger)

	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Все остальное - только с валидным токеном
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokens.JWTAuth()))
			r.Use(auth.Authenticator)

			r.Get("/currentUser", userHandler.Current)
			r.Get("/users", userHandler.List)
			r.Put("/users/{id}", userHandler.UpdateRole)

			r.Post("/tasks", taskHandler.Create)
			r.Get("/tasks", taskHandler.List)
			r.Put("/tasks/{id}/status", taskHandler.UpdateStatus)

			r.Post("/groups", groupHandler.Create)
			r.Get("/groups/me", groupHandler.Mine)
			r.Delete("/groups/{id}", groupHandler.Delete)
		})
	})

	// Пул воркеров для напоминаний
	pool := worker.NewPool(taskRepo, logger, cfg.WorkerCount)
	pool.Start(context.Background())

	srv := http.Server{ // Создаем сервер
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() { // Запуск сервера и обработка ошибок
		logger.Info("Server started at ", zap.String("port", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed: ", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	pool.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Shutdown error: ", zap.Error(err))
	}
	logger.Info("Server stopped succsessfully!")
}
