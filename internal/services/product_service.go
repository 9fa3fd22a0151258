package services

import (
	"errors"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"
	"katalog/pkg/slug"

	"github.com/rs/zerolog"
)

// Catalog event names published after successful writes.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// ProductService handles business logic for the product aggregate:
// slug derivation, defaulting, partial merges and image replacement
// semantics. Storage and logging are plain constructor parameters.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
	logger   zerolog.Logger
}

// NewProductService creates a new ProductService. mqClient may be nil,
// in which case no catalog events are published.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client, logger zerolog.Logger) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
		logger:   logger,
	}
}

// CreateProduct builds a product from the payload and persists it
// together with its images in one write. The slug is derived from the
// explicit slug when present, from the title otherwise. New products
// are active with the "unisex" gender unless told otherwise.
func (s *ProductService) CreateProduct(input *models.CreateProductInput) (*models.PlainProduct, error) {
	slugSource := input.Slug
	if slugSource == "" {
		slugSource = input.Title
	}

	gender := input.Gender
	if gender == "" {
		gender = "unisex"
	}

	urls := input.Images
	if urls == nil {
		urls = []string{}
	}

	product := &models.Product{
		Title:       input.Title,
		Price:       input.Price,
		Description: input.Description,
		Slug:        slug.Normalize(slugSource),
		Stock:       input.Stock,
		Sizes:       orEmpty(input.Sizes),
		Gender:      gender,
		Tags:        orEmpty(input.Tags),
		IsActive:    true,
		Images:      models.NewImages(urls),
	}

	if err := s.repo.Create(product); err != nil {
		s.logStorageFailure("create", err)
		return nil, err
	}

	s.publish(EventProductCreated, product.ID)

	plain := product.Flatten()
	plain.Images = urls
	return plain, nil
}

// ListProducts returns the window of active products in flattened shape.
func (s *ProductService) ListProducts(pagination models.Pagination) ([]models.PlainProduct, error) {
	limit, offset := pagination.Window()

	products, err := s.repo.List(limit, offset)
	if err != nil {
		s.logStorageFailure("list", err)
		return nil, err
	}

	plain := make([]models.PlainProduct, 0, len(products))
	for i := range products {
		plain = append(plain, *products[i].Flatten())
	}
	return plain, nil
}

// GetProductByID returns the raw record with nested image records.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		s.logStorageFailure("get", err)
		return nil, err
	}
	return product, nil
}

// GetProductPlain returns the product in flattened shape, images reduced
// to their URL strings.
func (s *ProductService) GetProductPlain(id string) (*models.PlainProduct, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	return product.Flatten(), nil
}

// UpdateProduct merges the supplied fields into the stored product and
// saves it. The slug is always re-derived from the merged title; an
// explicit slug in the payload is ignored. A nil Images field leaves the
// collection untouched, while an empty one removes every image; when
// present, the whole collection is replaced inside one transaction with
// the scalar save, so a failed save keeps the prior images.
func (s *ProductService) UpdateProduct(id string, input *models.UpdateProductInput) (*models.PlainProduct, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		s.logStorageFailure("update", err)
		return nil, err
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Gender != nil {
		product.Gender = *input.Gender
	}
	if input.Sizes != nil {
		product.Sizes = input.Sizes
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	product.Slug = slug.Normalize(product.Title)

	replaceImages := input.Images != nil
	var staged []models.ProductImage
	if replaceImages {
		staged = models.NewImages(input.Images)
	}

	if err := s.repo.Update(product, staged, replaceImages); err != nil {
		s.logStorageFailure("update", err)
		return nil, err
	}

	s.publish(EventProductUpdated, product.ID)

	plain := product.Flatten()
	if replaceImages {
		// Mirror the URL list the caller supplied, not a post-commit read.
		plain.Images = input.Images
	}
	return plain, nil
}

// DeleteProduct removes a product and all its images.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		s.logStorageFailure("delete", err)
		return err
	}
	s.publish(EventProductDeleted, id)
	return nil
}

// PurgeProducts wipes the whole catalog. Only the reseed tool calls this.
func (s *ProductService) PurgeProducts() error {
	if err := s.repo.DeleteAll(); err != nil {
		s.logStorageFailure("purge", err)
		return err
	}
	return nil
}

// logStorageFailure records unexpected storage errors in full. Lookup
// misses and uniqueness rejections are expected outcomes and logged at
// debug only.
func (s *ProductService) logStorageFailure(op string, err error) {
	if errors.Is(err, repositories.ErrProductNotFound) || errors.Is(err, repositories.ErrDuplicateProduct) {
		s.logger.Debug().Err(err).Str("op", op).Msg("product operation rejected")
		return
	}
	s.logger.Error().Err(err).Str("op", op).Msg("product storage failure")
}

// publish sends a catalog event. Publishing is best effort: a missing
// client or broker error never fails the write that triggered it.
func (s *ProductService) publish(event, productID string) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishProductEvent(event, productID); err != nil {
		s.logger.Warn().Err(err).Str("event", event).Str("product_id", productID).Msg("failed to publish catalog event")
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
