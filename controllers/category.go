package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"shopprr-backend/models"
	"shopprr-backend/services"
)

// CategoryController handles category reads and management.
type CategoryController struct {
	Categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{Categories: categories}
}

// List returns the active categories sorted by name.
func (cc *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	categories, err := cc.Categories.ListActive(r.Context())
	if err != nil {
		respondError(w, "Error fetching categories", err)
		return
	}
	respondOK(w, "Categories fetched successfully", map[string]interface{}{"categories": categories})
}

// GetByID returns a single category.
func (cc *CategoryController) GetByID(w http.ResponseWriter, r *http.Request) {
	category, err := cc.Categories.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, "Error fetching category", err)
		return
	}
	respondOK(w, "Category fetched successfully", map[string]interface{}{"category": category})
}

// GetBySlug resolves a category by its URL slug.
func (cc *CategoryController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := cc.Categories.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		respondError(w, "Error fetching category", err)
		return
	}
	respondOK(w, "Category fetched successfully", map[string]interface{}{"category": category})
}

type categoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Create adds a category. The slug is derived from the name when omitted.
func (cc *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	category, err := cc.Categories.Create(r.Context(), models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(w, "Error creating category", err)
		return
	}
	respondCreated(w, "Category created successfully", map[string]interface{}{"category": category})
}

type categoryUpdateRequest struct {
	CategoryID  string  `json:"categoryId"`
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"isActive"`
}

// Update applies a partial update to a category.
func (cc *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	var req categoryUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CategoryID == "" {
		respondFail(w, http.StatusBadRequest, "Category ID is required")
		return
	}

	category, err := cc.Categories.Update(r.Context(), req.CategoryID, services.CategoryUpdate{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(w, "Error updating category", err)
		return
	}
	respondOK(w, "Category updated successfully", map[string]interface{}{"category": category})
}

// Delete removes a category.
func (cc *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID string `json:"categoryId"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CategoryID == "" {
		respondFail(w, http.StatusBadRequest, "Category ID is required")
		return
	}

	if err := cc.Categories.Delete(r.Context(), req.CategoryID); err != nil {
		respondError(w, "Error deleting category", err)
		return
	}
	respondOK(w, "Category deleted successfully", nil)
}
