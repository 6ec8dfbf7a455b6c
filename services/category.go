package services

import (
	"context"
	"strings"
	"time"
	"unicode"

	"shopprr-backend/models"
)

// CategoryService manages catalog categories and their unique URL slugs.
type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

// CategoryUpdate enumerates the fields a category update may change.
type CategoryUpdate struct {
	Name        *string
	Slug        *string
	Description *string
	Image       *string
	IsActive    *bool
}

func (s *CategoryService) ListActive(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Resource: "Category"}
	}
	return category, nil
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categories.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Resource: "Category"}
	}
	return category, nil
}

// Create stores a new category, deriving the slug from the name when not
// provided. Slugs are unique.
func (s *CategoryService) Create(ctx context.Context, category models.Category) (*models.Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, &ValidationError{Field: "name", Message: "Category name is required"}
	}
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}

	existing, err := s.categories.FindBySlug(ctx, category.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Field: "slug", Message: "Category slug already exists"}
	}

	now := time.Now()
	category.IsActive = true
	category.CreatedAt = now
	category.UpdatedAt = now
	if _, err := s.categories.Insert(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update applies the provided fields only and bumps updatedAt.
func (s *CategoryService) Update(ctx context.Context, id string, update CategoryUpdate) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &NotFoundError{Resource: "Category"}
	}

	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Slug != nil {
		category.Slug = Slugify(*update.Slug)
	}
	if update.Description != nil {
		category.Description = *update.Description
	}
	if update.Image != nil {
		category.Image = *update.Image
	}
	if update.IsActive != nil {
		category.IsActive = *update.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := s.categories.Update(ctx, id, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category permanently. Products keep their category
// string; no cascading update is performed.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	deleted, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{Resource: "Category"}
	}
	return nil
}

// Slugify lowercases the name and collapses every non-alphanumeric run
// into a single hyphen: "Shirts & Polos" -> "shirts-polos".
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
