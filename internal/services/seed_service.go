package services

import (
	"github.com/rs/zerolog"
)

// SeedService reloads the catalog from the embedded seed records.
type SeedService struct {
	productService *ProductService
	logger         zerolog.Logger
}

// NewSeedService creates a new SeedService.
func NewSeedService(productService *ProductService, logger zerolog.Logger) *SeedService {
	return &SeedService{
		productService: productService,
		logger:         logger,
	}
}

// Run wipes the catalog, then creates one product per seed record.
// Each insert is independent: a record that fails (a duplicate slug in
// the seed data, say) is logged and skipped, and the rest of the batch
// still goes in. Returns how many records were inserted and skipped.
func (s *SeedService) Run() (inserted, skipped int, err error) {
	if err := s.productService.PurgeProducts(); err != nil {
		return 0, 0, err
	}

	for i := range seedProducts {
		if _, createErr := s.productService.CreateProduct(&seedProducts[i]); createErr != nil {
			s.logger.Warn().Err(createErr).Str("title", seedProducts[i].Title).Msg("skipping seed record")
			skipped++
			continue
		}
		inserted++
	}

	s.logger.Info().Int("inserted", inserted).Int("skipped", skipped).Msg("catalog reseeded")
	return inserted, skipped, nil
}
