package controllers

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"shopprr-backend/middleware"
	"shopprr-backend/models"
	"shopprr-backend/services"
	"shopprr-backend/store"
)

// AdminController handles the admin console login flow. Admin sessions
// use the shorter TTL from the shared session policy.
type AdminController struct {
	Users    *store.Users
	Sessions *services.SessionService
	Logger   *zap.Logger
}

func NewAdminController(users *store.Users, sessions *services.SessionService, logger *zap.Logger) *AdminController {
	return &AdminController{Users: users, Sessions: sessions, Logger: logger}
}

// Login authenticates an admin or staff member and issues the 24-hour
// session cookie.
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &creds) {
		return
	}

	user, err := ac.Users.FindByEmail(r.Context(), creds.Email)
	if err != nil {
		respondError(w, "Login failed", err)
		return
	}
	if user == nil {
		respondFail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if user.Role != models.RoleAdmin && user.Role != models.RoleStaff {
		respondFail(w, http.StatusForbidden, "Access denied. Admin or staff role required.")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)) != nil {
		respondFail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	policy := ac.Sessions.Policy
	token, err := ac.Sessions.IssueToken(user.ID.Hex(), policy.AdminTTL)
	if err != nil {
		respondError(w, "Login failed", err)
		return
	}
	setSessionCookie(w, policy, token, policy.AdminTTL)
	ac.Logger.Info("admin login", zap.String("user_id", user.ID.Hex()), zap.String("role", user.Role))

	respondOK(w, "Login successful", map[string]interface{}{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	})
}

// IsAuth reports whether the request carries a valid admin session.
// Anonymous and non-admin requests get a 200 with success=false.
func (ac *AdminController) IsAuth(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	if user == nil {
		respond(w, http.StatusOK, false, "Not authenticated", nil)
		return
	}
	if user.Role != models.RoleAdmin {
		respond(w, http.StatusOK, false, "Not authorized as admin", nil)
		return
	}
	respondOK(w, "Admin authenticated", map[string]interface{}{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	})
}

// Logout clears the session cookie.
func (ac *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, ac.Sessions.Policy)
	respondOK(w, "Logout successful", nil)
}
