package repositories

import (
	"errors"

	"katalog/internal/models"
)

// Sentinel errors returned by repository implementations. Callers
// classify failures with errors.Is; anything that does not match one of
// these is an internal storage failure and must not be shown to clients
// verbatim.
var (
	// ErrProductNotFound is returned when an identifier matches no record.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when the unique constraint on title
	// or slug is violated.
	ErrDuplicateProduct = errors.New("product already exists")
)

// ProductRepository defines the interface for product aggregate data access.
type ProductRepository interface {
	// List returns active products with their images preloaded, ordered by
	// ascending id, windowed by limit/offset.
	List(limit, offset int) ([]models.Product, error)
	// GetByID returns the product with its images preloaded, regardless of
	// the active flag.
	GetByID(id string) (*models.Product, error)
	// Create persists the product together with its staged images as one
	// atomic write.
	Create(product *models.Product) error
	// Update saves the product's scalar fields. When replaceImages is set
	// the existing image collection is deleted and replaced with images
	// inside the same transaction; an empty set just removes all images.
	Update(product *models.Product, images []models.ProductImage, replaceImages bool) error
	// Delete removes the product and all its images.
	Delete(id string) error
	// DeleteAll removes every product and image. Used by the reseed tool only.
	DeleteAll() error
}
