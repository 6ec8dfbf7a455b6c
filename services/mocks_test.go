package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopprr-backend/models"
)

// In-memory store fakes backing the service tests. Lookups mirror the
// mongo-backed stores and return (nil, nil) when nothing matches.

type fakeUserStore struct {
	users       map[string]*models.User
	cartWrites  int
	lastCart    models.CartData
	lastCartFor string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) add(user *models.User) string {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID.Hex()] = user
	return user.ID.Hex()
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	return f.add(user), nil
}

func (f *fakeUserStore) Update(ctx context.Context, id string, user *models.User) error {
	copied := *user
	f.users[id] = &copied
	return nil
}

func (f *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	var all []models.User
	for _, user := range f.users {
		all = append(all, *user)
	}
	return all, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

func (f *fakeUserStore) UpdateCart(ctx context.Context, id string, cart models.CartData) error {
	f.cartWrites++
	f.lastCart = cart
	f.lastCartFor = id
	if user, ok := f.users[id]; ok {
		user.CartData = cart
	}
	return nil
}

type fakeProductStore struct {
	products   map[string]*models.Product
	batchCalls int
	updates    int
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[string]*models.Product{}}
}

func (f *fakeProductStore) add(product *models.Product) string {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	f.products[product.ID.Hex()] = product
	return product.ID.Hex()
}

func (f *fakeProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductStore) FindByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	f.batchCalls++
	var found []models.Product
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			found = append(found, *product)
		}
	}
	return found, nil
}

func (f *fakeProductStore) Update(ctx context.Context, id string, product *models.Product) error {
	f.updates++
	copied := *product
	f.products[id] = &copied
	return nil
}

type fakeOrderStore struct {
	orders  map[string]*models.Order
	inserts int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[string]*models.Order{}}
}

func (f *fakeOrderStore) Insert(ctx context.Context, order *models.Order) (string, error) {
	f.inserts++
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	copied := *order
	f.orders[order.ID.Hex()] = &copied
	return order.ID.Hex(), nil
}

func (f *fakeOrderStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderStore) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var found []models.Order
	for _, order := range f.orders {
		if order.UserID.Hex() == userID {
			found = append(found, *order)
		}
	}
	return found, nil
}

func (f *fakeOrderStore) FindAll(ctx context.Context) ([]models.Order, error) {
	var all []models.Order
	for _, order := range f.orders {
		all = append(all, *order)
	}
	return all, nil
}

func (f *fakeOrderStore) Update(ctx context.Context, id string, order *models.Order) error {
	copied := *order
	f.orders[id] = &copied
	return nil
}

func (f *fakeOrderStore) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	delete(f.orders, id)
	return true, nil
}

type fakeReviewStore struct {
	reviews []models.Review
	inserts int
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{}
}

func (f *fakeReviewStore) add(review models.Review) string {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	f.reviews = append(f.reviews, review)
	return review.ID.Hex()
}

func (f *fakeReviewStore) Insert(ctx context.Context, review *models.Review) (string, error) {
	f.inserts++
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	f.reviews = append(f.reviews, *review)
	return review.ID.Hex(), nil
}

// Finds return newest first, matching the created_at sort of the mongo
// store.
func (f *fakeReviewStore) FindByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	var found []models.Review
	for _, review := range f.reviews {
		if review.ProductID == productID {
			found = append(found, review)
		}
	}
	sortNewestFirst(found)
	return found, nil
}

func (f *fakeReviewStore) FindByUser(ctx context.Context, userID string) ([]models.Review, error) {
	var found []models.Review
	for _, review := range f.reviews {
		if review.UserID == userID {
			found = append(found, review)
		}
	}
	sortNewestFirst(found)
	return found, nil
}

func sortNewestFirst(reviews []models.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}

func (f *fakeReviewStore) Delete(ctx context.Context, id string) (bool, error) {
	for i, review := range f.reviews {
		if review.ID.Hex() == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeCategoryStore struct {
	categories map[string]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[string]*models.Category{}}
}

func (f *fakeCategoryStore) ListActive(ctx context.Context) ([]models.Category, error) {
	var active []models.Category
	for _, category := range f.categories {
		if category.IsActive {
			active = append(active, *category)
		}
	}
	return active, nil
}

func (f *fakeCategoryStore) FindByID(ctx context.Context, id string) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCategoryStore) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, category := range f.categories {
		if category.Slug == slug {
			copied := *category
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) Insert(ctx context.Context, category *models.Category) (string, error) {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	copied := *category
	f.categories[category.ID.Hex()] = &copied
	return category.ID.Hex(), nil
}

func (f *fakeCategoryStore) Update(ctx context.Context, id string, category *models.Category) error {
	copied := *category
	f.categories[id] = &copied
	return nil
}

func (f *fakeCategoryStore) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.categories[id]; !ok {
		return false, nil
	}
	delete(f.categories, id)
	return true, nil
}
