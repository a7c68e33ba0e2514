package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-crud-api/config"
	"gin-crud-api/controllers"
	"gin-crud-api/infra"
	"gin-crud-api/middlewares"
	"gin-crud-api/models"
	"gin-crud-api/repositories"
	"gin-crud-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	userRepository := repositories.NewUserRepository(db)
	itemRepository := repositories.NewItemRepository(db)
	tokenRepository := repositories.NewTokenRepository(db)

	userService := services.NewUserService(userRepository)
	itemService := services.NewItemService(itemRepository)
	authService := services.NewAuthService(userRepository, tokenRepository, cfg.SecretKey)

	userController := controllers.NewUserController(userService)
	itemController := controllers.NewItemController(itemService)
	authController := controllers.NewAuthController(authService)

	identity := middlewares.CurrentUser(authService, cfg.AuthMode)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userRouter := r.Group("/users")
	userRouterWithIdentity := r.Group("/users", identity)
	userRouter.POST("", userController.Create)
	userRouter.GET("/:id", userController.FindById)
	userRouterWithIdentity.GET("", userController.FindAll)
	userRouterWithIdentity.PUT("/:id", userController.Update)
	userRouterWithIdentity.DELETE("/:id", userController.Delete)

	itemRouter := r.Group("/items")
	itemRouterWithIdentity := r.Group("/items", identity)
	itemRouter.GET("", itemController.FindAll)
	itemRouter.GET("/:id", itemController.FindById)
	itemRouterWithIdentity.POST("", itemController.Create)
	itemRouterWithIdentity.PUT("/:id", itemController.Update)
	itemRouterWithIdentity.DELETE("/:id", itemController.Delete)

	authRouter := r.Group("/auth")
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)

	return r
}

func main() {
	cfg := config.Load()
	db := infra.SetupDB(cfg)

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.BlacklistedToken{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	r := setupRouter(db, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
