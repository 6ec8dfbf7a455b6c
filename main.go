// main.go
package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shopprr-backend/config"
	"shopprr-backend/controllers"
	"shopprr-backend/middleware"
	"shopprr-backend/routes"
	"shopprr-backend/services"
	"shopprr-backend/store"
	"shopprr-backend/utils"
)

func main() {
	// Load environment variables from .env file. A missing file is fine,
	// the process environment is used instead.
	envErr := godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	if envErr != nil {
		logger.Info("no .env file found, using environment variables")
	}
	defer logger.Sync()

	cfg := config.Load()

	// Connect to MongoDB
	client, err := store.Connect(cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	db := client.Database(cfg.DBName)

	// Stores
	users := store.NewUsers(db)
	products := store.NewProducts(db)
	orders := store.NewOrders(db)
	reviews := store.NewReviews(db)
	categories := store.NewCategories(db)

	// Services
	sessionService := services.NewSessionService(users, []byte(cfg.JWTSecret), cfg.Session)
	userService := services.NewUserService(users)
	cartService := services.NewCartService(users)
	orderService := services.NewOrderService(orders, products, users)
	discountService := services.NewDiscountService(products)
	reviewService := services.NewReviewService(reviews, users)
	categoryService := services.NewCategoryService(categories)
	emailService := utils.NewEmailService(logger)

	// Router
	router := mux.NewRouter()
	sessions := middleware.NewSessions(sessionService)
	routes.RegisterRoutes(router, sessions, routes.Controllers{
		Users:      controllers.NewUserController(userService, sessionService, logger),
		Admin:      controllers.NewAdminController(users, sessionService, logger),
		Products:   controllers.NewProductController(products, discountService, logger),
		Carts:      controllers.NewCartController(cartService),
		Orders:     controllers.NewOrderController(orderService, emailService, logger),
		Categories: controllers.NewCategoryController(categoryService),
		Reviews:    controllers.NewReviewController(reviewService),
	})

	// Start the server
	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
