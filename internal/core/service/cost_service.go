package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizcore/erp-api/internal/core/domain"
	"github.com/bizcore/erp-api/internal/core/ports"
)

// CostService implements fixed cost and product cost CRUD. Both entity
// kinds are hard-deleted; product costs additionally require a live
// product reference.
type CostService struct {
	fixed    ports.FixedCostRepository
	perUnit  ports.ProductCostRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCostService(fixed ports.FixedCostRepository, perUnit ports.ProductCostRepository, products ports.ProductRepository, log zerolog.Logger) *CostService {
	return &CostService{fixed: fixed, perUnit: perUnit, products: products, log: log}
}

func (s *CostService) CreateFixed(ctx context.Context, in ports.FixedCostInput) (*domain.FixedCost, error) {
	now := time.Now().UTC()
	fc := &domain.FixedCost{
		CostName:  in.CostName,
		Month:     in.Month,
		Amount:    in.Amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.fixed.Create(ctx, fc)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("fixed_cost_id", created.ID).Str("month", created.Month).Msg("fixed cost created")
	return created, nil
}

func (s *CostService) ListFixed(ctx context.Context, month string) ([]domain.FixedCost, error) {
	return s.fixed.List(ctx, month)
}

func (s *CostService) UpdateFixed(ctx context.Context, id int64, in ports.FixedCostInput) (*domain.FixedCost, error) {
	current, err := s.fixed.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current.CostName = in.CostName
	current.Month = in.Month
	current.Amount = in.Amount
	current.UpdatedAt = time.Now().UTC()
	return s.fixed.Update(ctx, current)
}

func (s *CostService) DeleteFixed(ctx context.Context, id int64) error {
	if _, err := s.fixed.FindByID(ctx, id); err != nil {
		return err
	}
	return s.fixed.Delete(ctx, id)
}

func (s *CostService) CreateProductCost(ctx context.Context, in ports.ProductCostInput) (*domain.ProductCost, error) {
	if _, err := s.products.FindByID(ctx, in.ProductID); err != nil {
		return nil, domain.ErrProductReference
	}

	now := time.Now().UTC()
	pc := &domain.ProductCost{
		ProductID: in.ProductID,
		Month:     in.Month,
		UnitCost:  in.UnitCost,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.perUnit.Create(ctx, pc)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("product_cost_id", created.ID).Int64("product_id", created.ProductID).Msg("product cost created")
	return created, nil
}

func (s *CostService) ListProductCosts(ctx context.Context, f ports.ProductCostFilter) (*ports.ProductCostPage, error) {
	if f.Limit <= 0 {
		f.Limit = defaultPageLimit
	}
	costs, total, err := s.perUnit.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ports.ProductCostPage{Costs: costs, Total: total}, nil
}

func (s *CostService) UpdateProductCost(ctx context.Context, id int64, in ports.ProductCostInput) (*domain.ProductCost, error) {
	current, err := s.perUnit.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ProductID != current.ProductID {
		if _, err := s.products.FindByID(ctx, in.ProductID); err != nil {
			return nil, domain.ErrProductReference
		}
	}
	current.ProductID = in.ProductID
	current.Month = in.Month
	current.UnitCost = in.UnitCost
	current.UpdatedAt = time.Now().UTC()
	return s.perUnit.Update(ctx, current)
}

func (s *CostService) DeleteProductCost(ctx context.Context, id int64) error {
	if _, err := s.perUnit.FindByID(ctx, id); err != nil {
		return err
	}
	return s.perUnit.Delete(ctx, id)
}
