package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tasktracker/internal/config"
	"tasktracker/internal/handler"
	"tasktracker/internal/middleware"
	"tasktracker/internal/repository"
	"tasktracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Server struct {
	Engine *gin.Engine
	Client *mongo.Client
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("❌ failed to ping MongoDB: %w", err)
	}
	log.Println("✅ Connected to MongoDB")

	db := client.Database(cfg.DBName)

	// Setup Gin
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, taskRepo)
	taskService := service.NewTaskService(taskRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService, userRepo)
	taskHandler := handler.NewTaskHandler(taskService, taskRepo)

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)

		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.GetByID)
		api.POST("/users", userHandler.Create)
		api.PUT("/users/:id", userHandler.Update)
		api.DELETE("/users/:id", userHandler.Delete)

		api.GET("/tasks", taskHandler.List)
		api.GET("/tasks/:id", taskHandler.GetByID)
		api.POST("/tasks", taskHandler.Create)
		api.PUT("/tasks/:id", taskHandler.Update)
		api.DELETE("/tasks/:id", taskHandler.Delete)
	}

	// Any unmatched /api route gets the enveloped 404.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, handler.Envelope{Message: "Not found", Data: nil})
			return
		}
		c.Status(http.StatusNotFound)
	})

	return &Server{
		Engine: r,
		Client: client,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}
	if err := s.Client.Disconnect(ctx); err != nil {
		log.Printf("⚠️  MongoDB disconnect: %s", err)
	}

	log.Println("✅ Server exited properly")
}
