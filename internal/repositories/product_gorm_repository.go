package repositories

import (
	"errors"
	"fmt"

	"katalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
// The database must be opened with gorm.Config{TranslateError: true} so
// unique constraint violations surface as gorm.ErrDuplicatedKey on every
// supported driver.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List retrieves active products with their images, ordered by ascending
// id so limit/offset windows are stable across requests.
func (r *GORMProductRepository) List(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Where("is_active = ?", true).
		Preload("Images").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID, images included. The
// active flag is not filtered here.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Images").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create persists the product and its staged images. GORM writes the
// association inside a single transaction, so a duplicate title or slug
// leaves no orphan image rows behind.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("title or slug taken: %w", ErrDuplicateProduct)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update saves the product's scalar fields and, when replaceImages is
// set, swaps the whole image collection. Image deletion, image insertion
// and the scalar save commit or roll back as one unit: if the save fails
// (for example on a duplicate title) the prior image set stays intact.
func (r *GORMProductRepository) Update(product *models.Product, images []models.ProductImage, replaceImages bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if replaceImages {
			if err := replaceProductImages(tx, product.ID, images); err != nil {
				return err
			}
			product.Images = images
		}
		if err := tx.Omit("Images").Save(product).Error; err != nil {
			return fmt.Errorf("failed to save product %s: %w", product.ID, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("title or slug taken: %w", ErrDuplicateProduct)
		}
		return err
	}
	return nil
}

// replaceProductImages deletes every image owned by productID and stages
// the new set. The deletion is unconditional: an identical URL list still
// causes a full delete and reinsert, and an empty list just clears the
// collection. Must run inside an open transaction.
func replaceProductImages(tx *gorm.DB, productID string, images []models.ProductImage) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
		return fmt.Errorf("failed to delete images for product %s: %w", productID, err)
	}
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].ID = 0
		images[i].ProductID = productID
	}
	if err := tx.Create(&images).Error; err != nil {
		return fmt.Errorf("failed to insert images for product %s: %w", productID, err)
	}
	return nil
}

// Delete removes a product and its images, children first, in one
// transaction. The explicit two-step keeps the cascade working on
// engines where the foreign key ON DELETE rule is not enforced.
func (r *GORMProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete images for product %s: %w", id, err)
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product %s: %w", id, ErrProductNotFound)
		}
		return nil
	})
}

// DeleteAll wipes every product and image. Backing for the reseed tool.
func (r *GORMProductRepository) DeleteAll() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete all images: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to delete all products: %w", err)
		}
		return nil
	})
}
