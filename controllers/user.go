package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"shopprr-backend/middleware"
	"shopprr-backend/models"
	"shopprr-backend/services"
)

// UserController handles registration, login, and account management.
type UserController struct {
	Accounts *services.UserService
	Sessions *services.SessionService
	Logger   *zap.Logger
}

func NewUserController(accounts *services.UserService, sessions *services.SessionService, logger *zap.Logger) *UserController {
	return &UserController{Accounts: accounts, Sessions: sessions, Logger: logger}
}

// Register creates a customer account.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decodeBody(w, r, &user) {
		return
	}
	if user.Email == "" || user.Password == "" {
		respondFail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	created, err := uc.Accounts.Register(r.Context(), user)
	if err != nil {
		respondError(w, "Error registering user", err)
		return
	}

	respondCreated(w, "User registered successfully", map[string]interface{}{
		"id":    created.ID.Hex(),
		"email": created.Email,
		"name":  created.Name,
	})
}

// Login authenticates a customer and issues the 7-day session cookie.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &creds) {
		return
	}

	user, err := uc.Accounts.VerifyCredentials(r.Context(), creds.Email, creds.Password)
	if err != nil {
		respondError(w, "Error during login", err)
		return
	}
	if user == nil {
		respondFail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	policy := uc.Sessions.Policy
	token, err := uc.Sessions.IssueToken(user.ID.Hex(), policy.CustomerTTL)
	if err != nil {
		respondError(w, "Error during login", err)
		return
	}
	setSessionCookie(w, policy, token, policy.CustomerTTL)

	cart := user.CartData
	if cart == nil {
		cart = models.CartData{}
	}
	respondOK(w, "Login successful", map[string]interface{}{
		"user": map[string]interface{}{
			"id":       user.ID.Hex(),
			"email":    user.Email,
			"name":     user.Name,
			"role":     user.Role,
			"cartData": cart,
		},
	})
}

// IsAuth reports whether the request carries a valid session. Anonymous
// requests get a 200 with success=false rather than a 401.
func (uc *UserController) IsAuth(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		respond(w, http.StatusOK, false, "Not authenticated", nil)
		return
	}
	respondOK(w, "User authenticated", map[string]interface{}{
		"id":       user.ID.Hex(),
		"email":    user.Email,
		"name":     user.Name,
		"role":     user.Role,
		"cartData": user.CartData,
	})
}

// Logout clears the session cookie.
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, uc.Sessions.Policy)
	respondOK(w, "Logout successful", nil)
}

// UpdateProfile applies a partial update to the user in the path.
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update services.UserUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	user, err := uc.Accounts.Update(r.Context(), id, update)
	if err != nil {
		respondError(w, "Error updating user", err)
		return
	}
	respondOK(w, "User updated successfully", map[string]interface{}{"user": user})
}

// ListAll returns every account. Admin console only.
func (uc *UserController) ListAll(w http.ResponseWriter, r *http.Request) {
	users, err := uc.Accounts.List(r.Context())
	if err != nil {
		respondError(w, "Error retrieving users", err)
		return
	}
	respondOK(w, "Users retrieved successfully", map[string]interface{}{"users": users})
}

// UpdateCustomer applies a partial update identified by customerId in
// the body. Admin console only.
func (uc *UserController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID string `json:"customerId"`
		services.UserUpdate
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CustomerID == "" {
		respondFail(w, http.StatusBadRequest, "customerId is required")
		return
	}

	user, err := uc.Accounts.Update(r.Context(), req.CustomerID, req.UserUpdate)
	if err != nil {
		respondError(w, "Error updating customer", err)
		return
	}
	respondOK(w, "Customer updated successfully", map[string]interface{}{"user": user})
}

// DeleteCustomer removes an account permanently. Admin console only.
func (uc *UserController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID string `json:"customerId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CustomerID == "" {
		respondFail(w, http.StatusBadRequest, "customerId is required")
		return
	}

	if err := uc.Accounts.Delete(r.Context(), req.CustomerID); err != nil {
		respondError(w, "Error deleting customer", err)
		return
	}
	uc.Logger.Info("customer deleted", zap.String("customer_id", req.CustomerID))
	respondOK(w, "Customer deleted successfully", nil)
}
