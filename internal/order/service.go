package order

import (
	"context"
	"fmt"
	"log/slog"

	"tacoloco/internal/menu"
)

// CatalogSource hands out the catalog view used for one pricing request.
type CatalogSource interface {
	Catalog(ctx context.Context) (menu.Catalog, error)
}

type Service struct {
	catalogs CatalogSource
	logger   *slog.Logger
}

func NewService(catalogs CatalogSource, logger *slog.Logger) *Service {
	return &Service{catalogs: catalogs, logger: logger}
}

// CalculateTotal validates lines and prices them against one catalog view.
// Validation failures come back as *ValidationError.
func (s *Service) CalculateTotal(ctx context.Context, lines []OrderLine) (*PricingResult, error) {
	catalog, err := s.catalogs.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if err := NewValidator(catalog).Validate(lines); err != nil {
		return nil, err
	}

	total, err := NewEngine(catalog).CalculateTotal(lines)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("order_priced", "lines", len(lines), "total_price", total)
	return &PricingResult{TotalPrice: total}, nil
}
