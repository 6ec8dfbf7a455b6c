// routes/routes.go
package routes

import (
	"shopprr-backend/controllers"
	"shopprr-backend/middleware"
	"shopprr-backend/models"

	"github.com/gorilla/mux"
)

// Controllers bundles all the handlers the router wires up.
type Controllers struct {
	Users      *controllers.UserController
	Admin      *controllers.AdminController
	Products   *controllers.ProductController
	Carts      *controllers.CartController
	Orders     *controllers.OrderController
	Categories *controllers.CategoryController
	Reviews    *controllers.ReviewController
}

// RegisterRoutes sets up all the routes for the application. The session
// middleware resolves the cookie on every request; auth and role checks
// are applied per subrouter.
func RegisterRoutes(router *mux.Router, sessions *middleware.Sessions, c Controllers) {
	router.Use(sessions.WithUser)
	api := router.PathPrefix("/api").Subrouter()

	// User routes
	user := api.PathPrefix("/user").Subrouter()
	user.HandleFunc("/register", c.Users.Register).Methods("POST")
	user.HandleFunc("/login", c.Users.Login).Methods("POST")
	user.HandleFunc("/is-auth", c.Users.IsAuth).Methods("GET")
	user.HandleFunc("/logout", c.Users.Logout).Methods("POST")

	userAuth := api.PathPrefix("/user").Subrouter()
	userAuth.Use(middleware.RequireAuth)
	userAuth.HandleFunc("/update/{id}", c.Users.UpdateProfile).Methods("PUT")

	// Admin console auth
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/login", c.Admin.Login).Methods("POST")
	admin.HandleFunc("/is-auth", c.Admin.IsAuth).Methods("GET")
	admin.HandleFunc("/logout", c.Admin.Logout).Methods("POST")

	// Customer management (admin console)
	customers := api.PathPrefix("/user").Subrouter()
	customers.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleStaff))
	customers.HandleFunc("/list-all", c.Users.ListAll).Methods("GET")
	customers.HandleFunc("/update", c.Users.UpdateCustomer).Methods("POST")
	customers.HandleFunc("/delete", c.Users.DeleteCustomer).Methods("POST")

	// Cart routes
	cart := api.PathPrefix("/cart").Subrouter()
	cart.Use(middleware.RequireAuth)
	cart.HandleFunc("/add", c.Carts.Add).Methods("POST")
	cart.HandleFunc("/update", c.Carts.Update).Methods("POST")
	cart.HandleFunc("/get", c.Carts.Get).Methods("GET")

	// Order routes
	order := api.PathPrefix("/order").Subrouter()
	order.Use(middleware.RequireAuth)
	order.HandleFunc("/cod", c.Orders.PlaceCOD).Methods("POST")
	order.HandleFunc("/stripe", c.Orders.PlaceStripe).Methods("POST")
	order.HandleFunc("/userorders", c.Orders.UserOrders).Methods("GET")

	orderAdmin := api.PathPrefix("/order").Subrouter()
	orderAdmin.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleStaff))
	orderAdmin.HandleFunc("/list", c.Orders.ListAll).Methods("GET")
	orderAdmin.HandleFunc("/status", c.Orders.UpdateStatus).Methods("POST")
	orderAdmin.HandleFunc("/update", c.Orders.Update).Methods("POST")
	orderAdmin.HandleFunc("/delete", c.Orders.Delete).Methods("POST")

	// Product routes
	product := api.PathPrefix("/product").Subrouter()
	product.HandleFunc("/list", c.Products.List).Methods("GET")
	product.HandleFunc("/popular", c.Products.Popular).Methods("GET")
	product.HandleFunc("/category/{category}", c.Products.ByCategory).Methods("GET")
	product.HandleFunc("/{id}", c.Products.GetByID).Methods("GET")

	productAdmin := api.PathPrefix("/product").Subrouter()
	productAdmin.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleStaff))
	productAdmin.HandleFunc("/add", c.Products.Create).Methods("POST")
	productAdmin.HandleFunc("/update", c.Products.Update).Methods("POST")
	productAdmin.HandleFunc("/delete", c.Products.Delete).Methods("POST")
	productAdmin.HandleFunc("/apply-discount", c.Products.ApplyDiscount).Methods("POST")
	productAdmin.HandleFunc("/remove-discount", c.Products.RemoveDiscount).Methods("POST")

	// Category routes
	category := api.PathPrefix("/category").Subrouter()
	category.HandleFunc("/list", c.Categories.List).Methods("GET")
	category.HandleFunc("/slug/{slug}", c.Categories.GetBySlug).Methods("GET")
	category.HandleFunc("/{id}", c.Categories.GetByID).Methods("GET")

	categoryAdmin := api.PathPrefix("/category").Subrouter()
	categoryAdmin.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleStaff))
	categoryAdmin.HandleFunc("/add", c.Categories.Create).Methods("POST")
	categoryAdmin.HandleFunc("/update", c.Categories.Update).Methods("POST")
	categoryAdmin.HandleFunc("/delete", c.Categories.Delete).Methods("POST")

	// Review routes
	review := api.PathPrefix("/review").Subrouter()
	review.HandleFunc("/product/{productId}", c.Reviews.ProductReviews).Methods("GET")
	review.HandleFunc("/stats/{productId}", c.Reviews.Stats).Methods("GET")

	reviewAuth := api.PathPrefix("/review").Subrouter()
	reviewAuth.Use(middleware.RequireAuth)
	reviewAuth.HandleFunc("/add", c.Reviews.Create).Methods("POST")
	reviewAuth.HandleFunc("/user", c.Reviews.UserReviews).Methods("GET")

	reviewAdmin := api.PathPrefix("/review").Subrouter()
	reviewAdmin.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleStaff))
	reviewAdmin.HandleFunc("/delete", c.Reviews.Delete).Methods("POST")
}
