package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abdulaziz1812/service-review-system-server/config"
	"github.com/abdulaziz1812/service-review-system-server/database"
	reviewRepo "github.com/abdulaziz1812/service-review-system-server/database/repository/review"
	serviceRepo "github.com/abdulaziz1812/service-review-system-server/database/repository/service"
	userRepo "github.com/abdulaziz1812/service-review-system-server/database/repository/user"
	"github.com/abdulaziz1812/service-review-system-server/handlers"
	"github.com/abdulaziz1812/service-review-system-server/middleware"
	"github.com/abdulaziz1812/service-review-system-server/routes"
	"github.com/abdulaziz1812/service-review-system-server/services/account"
	"github.com/abdulaziz1812/service-review-system-server/services/catalog"
	"github.com/abdulaziz1812/service-review-system-server/services/review"
	"github.com/abdulaziz1812/service-review-system-server/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(context.Background(), config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := client.Database(config.AppConfig.DatabaseName)
	logger.Sugar().Infof("Connected to MongoDB, database %q", config.AppConfig.DatabaseName)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())

	// repositories.
	svcRepo := serviceRepo.NewMongoServiceRepo(db)
	revRepo := reviewRepo.NewMongoReviewRepo(db)
	usrRepo := userRepo.NewMongoUserRepo(db)

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo: svcRepo,
	}
	reviewService := &review.DefaultReviewService{
		Repo:     revRepo,
		Services: svcRepo,
	}
	accountService := &account.DefaultAccountService{
		Users:    usrRepo,
		Services: svcRepo,
		Reviews:  revRepo,
	}

	serviceHandler := handlers.NewServiceHandler(catalogService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	userHandler := handlers.NewUserHandler(accountService)
	authHandler := handlers.NewAuthHandler()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListServicesHandler:   serviceHandler.ListServicesHandler,
		ListFeaturedHandler:   serviceHandler.ListFeaturedHandler,
		GetServiceHandler:     serviceHandler.GetServiceHandler,
		CreateServiceHandler:  serviceHandler.CreateServiceHandler,
		ListMyServicesHandler: serviceHandler.ListMyServicesHandler,
		UpdateServiceHandler:  serviceHandler.UpdateServiceHandler,
		DeleteServiceHandler:  serviceHandler.DeleteServiceHandler,

		CreateReviewHandler:         reviewHandler.CreateReviewHandler,
		ListReviewsByServiceHandler: reviewHandler.ListReviewsByServiceHandler,
		ListMyReviewsHandler:        reviewHandler.ListMyReviewsHandler,
		UpdateReviewHandler:         reviewHandler.UpdateReviewHandler,
		DeleteReviewHandler:         reviewHandler.DeleteReviewHandler,

		RegisterUserHandler: userHandler.RegisterUserHandler,
		CountsHandler:       userHandler.CountsHandler,

		IssueTokenHandler: authHandler.IssueTokenHandler,
		LogoutHandler:     authHandler.LogoutHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
