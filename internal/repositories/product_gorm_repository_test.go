package repositories_test

import (
	"fmt"
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory SQLite database per test. A unique
// shared-cache name keeps the database alive across the pool's
// connections without leaking state between tests.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.ProductImage{}))
	return db
}

func newProduct(id, title string, urls ...string) *models.Product {
	return &models.Product{
		ID:       id,
		Title:    title,
		Slug:     fmt.Sprintf("slug_%s", id),
		IsActive: true,
		Images:   models.NewImages(urls),
	}
}

func imageCount(t *testing.T, db *gorm.DB, productID string) int64 {
	t.Helper()
	var count int64
	q := db.Model(&models.ProductImage{})
	if productID != "" {
		q = q.Where("product_id = ?", productID)
	}
	require.NoError(t, q.Count(&count).Error)
	return count
}

func TestGORMProductRepository_CreateWithImages(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	product := newProduct("p1", "Men's Chill Crew", "a.jpg", "b.jpg")
	require.NoError(t, repo.Create(product))

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	require.Len(t, got.Images, 2)
	assert.Equal(t, "a.jpg", got.Images[0].URL)
	assert.Equal(t, "b.jpg", got.Images[1].URL)
	assert.Equal(t, "p1", got.Images[0].ProductID)
	assert.Equal(t, "p1", got.Images[1].ProductID)
}

func TestGORMProductRepository_CreateAssignsID(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	product := &models.Product{Title: "No ID", Slug: "no_id", IsActive: true}
	require.NoError(t, repo.Create(product))

	_, err := uuid.Parse(product.ID)
	assert.NoError(t, err)
}

func TestGORMProductRepository_CreateDuplicateTitle(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	require.NoError(t, repo.Create(newProduct("p1", "Same Title", "a.jpg")))

	err := repo.Create(newProduct("p2", "Same Title", "x.jpg", "y.jpg"))
	assert.ErrorIs(t, err, repositories.ErrDuplicateProduct)

	// The rejected product must not leave partial image rows behind.
	assert.EqualValues(t, 0, imageCount(t, db, "p2"))
	assert.EqualValues(t, 1, imageCount(t, db, "p1"))
}

func TestGORMProductRepository_CreateDuplicateSlug(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	first := newProduct("p1", "Title One")
	first.Slug = "shared_slug"
	require.NoError(t, repo.Create(first))

	second := newProduct("p2", "Title Two")
	second.Slug = "shared_slug"
	assert.ErrorIs(t, repo.Create(second), repositories.ErrDuplicateProduct)
}

func TestGORMProductRepository_GetByIDNotFound(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	got, err := repo.GetByID("missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestGORMProductRepository_GetByIDIgnoresActiveFlag(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	require.NoError(t, repo.Create(newProduct("p1", "Hidden")))
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", "p1").Update("is_active", false).Error)

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestGORMProductRepository_ListActiveOnlyOrderedWindow(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	for i := 1; i <= 4; i++ {
		id := fmt.Sprintf("p%d", i)
		require.NoError(t, repo.Create(newProduct(id, fmt.Sprintf("Product %d", i), "img.jpg")))
	}
	// p3 goes inactive and must disappear from listings.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", "p3").Update("is_active", false).Error)

	all, err := repo.List(10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p2", all[1].ID)
	assert.Equal(t, "p4", all[2].ID)
	assert.Len(t, all[0].Images, 1)

	// limit 2 offset 1 yields the 2nd and 3rd active products.
	window, err := repo.List(2, 1)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "p2", window[0].ID)
	assert.Equal(t, "p4", window[1].ID)
}

func TestGORMProductRepository_UpdateReplacesImages(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	product := newProduct("p1", "Product", "a.jpg", "b.jpg")
	require.NoError(t, repo.Create(product))

	stored, err := repo.GetByID("p1")
	require.NoError(t, err)

	require.NoError(t, repo.Update(stored, models.NewImages([]string{"c.jpg"}), true))

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "c.jpg", got.Images[0].URL)
	assert.EqualValues(t, 1, imageCount(t, db, "p1"))
}

func TestGORMProductRepository_UpdateEmptyImagesClearsCollection(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	require.NoError(t, repo.Create(newProduct("p1", "Product", "a.jpg", "b.jpg")))

	stored, err := repo.GetByID("p1")
	require.NoError(t, err)
	stored.Stock = 42

	require.NoError(t, repo.Update(stored, []models.ProductImage{}, true))

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Empty(t, got.Images)
	// Scalars written in the same unit survive.
	assert.Equal(t, 42, got.Stock)
	assert.Equal(t, "Product", got.Title)
}

func TestGORMProductRepository_UpdateWithoutReplaceKeepsImages(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	require.NoError(t, repo.Create(newProduct("p1", "Product", "a.jpg")))

	stored, err := repo.GetByID("p1")
	require.NoError(t, err)
	stored.Price = 99

	require.NoError(t, repo.Update(stored, nil, false))

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 99.0, got.Price)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "a.jpg", got.Images[0].URL)
}

func TestGORMProductRepository_UpdateRollbackKeepsPriorImages(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	require.NoError(t, repo.Create(newProduct("p1", "Taken Title")))
	require.NoError(t, repo.Create(newProduct("p2", "Other Title", "x.jpg")))

	stored, err := repo.GetByID("p2")
	require.NoError(t, err)
	// Collides with p1's unique title, so the save must fail after the
	// image swap already ran inside the transaction.
	stored.Title = "Taken Title"

	err = repo.Update(stored, models.NewImages([]string{"c.jpg"}), true)
	assert.ErrorIs(t, err, repositories.ErrDuplicateProduct)

	got, err := repo.GetByID("p2")
	require.NoError(t, err)
	assert.Equal(t, "Other Title", got.Title)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "x.jpg", got.Images[0].URL)
}

func TestGORMProductRepository_DeleteCascades(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	require.NoError(t, repo.Create(newProduct("p1", "Product", "a.jpg", "b.jpg")))

	require.NoError(t, repo.Delete("p1"))

	_, err := repo.GetByID("p1")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.EqualValues(t, 0, imageCount(t, db, "p1"))
}

func TestGORMProductRepository_DeleteNotFound(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	assert.ErrorIs(t, repo.Delete("missing"), repositories.ErrProductNotFound)
}

func TestGORMProductRepository_DeleteAll(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMProductRepository(db)

	require.NoError(t, repo.Create(newProduct("p1", "Product 1", "a.jpg")))
	require.NoError(t, repo.Create(newProduct("p2", "Product 2", "b.jpg")))

	require.NoError(t, repo.DeleteAll())

	products, err := repo.List(10, 0)
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.EqualValues(t, 0, imageCount(t, db, ""))
}
