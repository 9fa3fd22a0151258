package repositories

import (
	"fmt"
	"sort"
	"sync"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of
// ProductRepository. It enforces the same title/slug uniqueness and
// image ownership rules as the GORM implementation, so wiring-level
// tests can run without a database.
type MockProductRepository struct {
	products map[string]models.Product
	images   map[string][]models.ProductImage
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
		images:   make(map[string][]models.ProductImage),
	}
}

// List returns active products ordered by id, with their images attached.
func (r *MockProductRepository) List(limit, offset int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.products))
	for id, p := range r.products {
		if p.IsActive {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	products := make([]models.Product, 0, limit)
	for i := offset; i < len(ids) && len(products) < limit; i++ {
		p := r.products[ids[i]]
		p.Images = append([]models.ProductImage(nil), r.images[p.ID]...)
		products = append(products, p)
	}
	return products, nil
}

// GetByID returns a product with its images, active or not.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	product.Images = append([]models.ProductImage(nil), r.images[id]...)
	return &product, nil
}

// Create adds a new product and its staged images.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if r.titleOrSlugTaken(product.Title, product.Slug, product.ID) {
		return fmt.Errorf("title or slug taken: %w", ErrDuplicateProduct)
	}

	r.images[product.ID] = r.assignImages(product.ID, product.Images)
	product.Images = append([]models.ProductImage(nil), r.images[product.ID]...)
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product, optionally replacing its images.
// Like the GORM implementation it is all-or-nothing: a uniqueness
// violation leaves the prior image set intact.
func (r *MockProductRepository) Update(product *models.Product, images []models.ProductImage, replaceImages bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, ErrProductNotFound)
	}
	if r.titleOrSlugTaken(product.Title, product.Slug, product.ID) {
		return fmt.Errorf("title or slug taken: %w", ErrDuplicateProduct)
	}

	if replaceImages {
		r.images[product.ID] = r.assignImages(product.ID, images)
		product.Images = append([]models.ProductImage(nil), r.images[product.ID]...)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product and its images.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	delete(r.products, id)
	delete(r.images, id)
	return nil
}

// DeleteAll removes every product and image.
func (r *MockProductRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make(map[string]models.Product)
	r.images = make(map[string][]models.ProductImage)
	return nil
}

// titleOrSlugTaken reports whether another product already holds the
// title or slug. Caller must hold the lock.
func (r *MockProductRepository) titleOrSlugTaken(title, slug, selfID string) bool {
	for id, p := range r.products {
		if id == selfID {
			continue
		}
		if p.Title == title || p.Slug == slug {
			return true
		}
	}
	return false
}

// assignImages stamps ownership and fresh ids onto a staged image set.
// Caller must hold the lock.
func (r *MockProductRepository) assignImages(productID string, images []models.ProductImage) []models.ProductImage {
	owned := make([]models.ProductImage, 0, len(images))
	for _, img := range images {
		r.nextID++
		img.ID = r.nextID
		img.ProductID = productID
		owned = append(owned, img)
	}
	return owned
}
