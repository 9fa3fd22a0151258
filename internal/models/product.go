package models

import "time"

// Product is the aggregate root of the catalog. It owns its Images
// exclusively: they are created with it, replaced wholesale on update,
// and destroyed with it.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string         `json:"title" gorm:"uniqueIndex;type:varchar(255);not null"`
	Price       float64        `json:"price" gorm:"default:0"`
	Description string         `json:"description" gorm:"type:text"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;type:varchar(255);not null"`
	Stock       int            `json:"stock" gorm:"default:0"`
	Sizes       []string       `json:"sizes" gorm:"type:text;serializer:json"`
	Gender      string         `json:"gender" gorm:"type:varchar(16);default:unisex"`
	Tags        []string       `json:"tags" gorm:"type:text;serializer:json"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	IsDeleted   bool           `json:"is_deleted" gorm:"default:false"`
	Images      []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// No gorm.Model embed here: its DeletedAt field would make GORM filter
// "deleted" rows out of every query, while IsDeleted is an inert flag
// that no read path enforces.

// ProductImage is an image owned by exactly one Product. It cannot
// outlive or be shared by its owner.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	URL       string `json:"url" gorm:"type:text;not null"`
	ProductID string `json:"-" gorm:"type:varchar(36);index;not null"`
}

// NewImages builds one ProductImage per URL, preserving input order.
// The owning product is assigned when the images are persisted.
func NewImages(urls []string) []ProductImage {
	images := make([]ProductImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, ProductImage{URL: url})
	}
	return images
}

// ImageURLs flattens the owned images to their URL strings, in storage order.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

// PlainProduct is the flattened read shape: the same scalars as Product,
// with each image reduced to its URL string.
type PlainProduct struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	Stock       int       `json:"stock"`
	Sizes       []string  `json:"sizes"`
	Gender      string    `json:"gender"`
	Tags        []string  `json:"tags"`
	IsActive    bool      `json:"is_active"`
	IsDeleted   bool      `json:"is_deleted"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Flatten converts a Product to its flattened read shape.
func (p *Product) Flatten() *PlainProduct {
	return &PlainProduct{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Slug:        p.Slug,
		Stock:       p.Stock,
		Sizes:       p.Sizes,
		Gender:      p.Gender,
		Tags:        p.Tags,
		IsActive:    p.IsActive,
		IsDeleted:   p.IsDeleted,
		Images:      p.ImageURLs(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CreateProductInput is the payload accepted when creating a product.
type CreateProductInput struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Price       float64  `json:"price" validate:"gte=0"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Slug        string   `json:"slug" validate:"omitempty,max=255"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Sizes       []string `json:"sizes" validate:"omitempty,dive,max=16"`
	Gender      string   `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=64"`
	Images      []string `json:"images" validate:"omitempty,dive,min=1"`
}

// UpdateProductInput is the partial-patch payload for updating a product.
// Scalars are pointers so an absent field can be told apart from a zero
// value; for the slices, nil means "leave untouched" while an empty,
// non-nil slice is an explicit empty value. Slug is accepted but ignored:
// the slug is always re-derived from the title on update.
type UpdateProductInput struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Slug        *string  `json:"slug" validate:"omitempty,max=255"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string `json:"sizes" validate:"omitempty,dive,max=16"`
	Gender      *string  `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=64"`
	Images      []string `json:"images" validate:"omitempty,dive,min=1"`
}
