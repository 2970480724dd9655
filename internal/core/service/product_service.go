package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizcore/erp-api/internal/api/metrics"
	"github.com/bizcore/erp-api/internal/core/domain"
	"github.com/bizcore/erp-api/internal/core/ports"
)

// AuditEnqueuer accepts audit records for asynchronous, per-product
// ordered write-behind. Used by the bulk import path only.
type AuditEnqueuer interface {
	Enqueue(rec *domain.AuditRecord)
}

// ProductService implements audited product CRUD. Every successful
// mutation writes one audit record; a failed audit write is logged and
// counted but never rolls back or fails the mutation.
type ProductService struct {
	repo       ports.ProductRepository
	audit      ports.AuditRecorder
	auditQueue AuditEnqueuer
	log        zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, audit ports.AuditRecorder, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, audit: audit, log: log}
}

// WithAuditQueue routes bulk-import audit records through q instead of
// the synchronous recorder. Single mutations still record inline.
func (s *ProductService) WithAuditQueue(q AuditEnqueuer) *ProductService {
	s.auditQueue = q
	return s
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput, actorID int64) (*domain.Product, error) {
	return s.create(ctx, in, actorID, false)
}

func (s *ProductService) create(ctx context.Context, in ports.ProductInput, actorID int64, deferAudit bool) (*domain.Product, error) {
	if existing, err := s.repo.FindByCode(ctx, in.ProductCode); err == nil && existing != nil {
		return nil, domain.ErrDuplicateProductCode
	} else if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ProductName:        in.ProductName,
		ProductCode:        in.ProductCode,
		ProductCategory:    in.ProductCategory,
		Unit:               in.Unit,
		CriticalStockLevel: in.CriticalStockLevel,
		CurrentStock:       in.CurrentStock,
		Brand:              in.Brand,
		IsActive:           true,
		CreatedBy:          actorID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	rec := &domain.AuditRecord{
		ProductID: created.ID,
		Action:    domain.AuditCreate,
		ChangedBy: actorID,
		NewValues: snapshot(created),
	}
	if deferAudit && s.auditQueue != nil {
		rec.Timestamp = time.Now().UTC()
		s.auditQueue.Enqueue(rec)
	} else {
		s.recordAudit(ctx, rec)
	}

	s.log.Info().Int64("product_id", created.ID).Str("product_code", created.ProductCode).Msg("product created")
	s.warnIfLow(created)
	metrics.ProductMutationsTotal.WithLabelValues("create").Inc()
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *ProductService) Brands(ctx context.Context) ([]string, error) {
	return s.repo.Brands(ctx)
}

func (s *ProductService) Update(ctx context.Context, id int64, in ports.ProductInput, actorID int64) (*domain.Product, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Code uniqueness, excluding the product itself.
	if other, err := s.repo.FindByCode(ctx, in.ProductCode); err == nil && other != nil && other.ID != id {
		return nil, domain.ErrDuplicateProductCode
	} else if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		return nil, err
	}

	before := snapshot(current)

	updated := *current
	updated.ProductName = in.ProductName
	updated.ProductCode = in.ProductCode
	updated.ProductCategory = in.ProductCategory
	updated.Unit = in.Unit
	updated.CriticalStockLevel = in.CriticalStockLevel
	updated.CurrentStock = in.CurrentStock
	updated.Brand = in.Brand
	updated.UpdatedAt = time.Now().UTC()

	after, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	s.recordAudit(ctx, &domain.AuditRecord{
		ProductID: id,
		Action:    domain.AuditUpdate,
		ChangedBy: actorID,
		OldValues: before,
		NewValues: snapshot(after),
	})

	s.warnIfLow(after)
	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()
	return after, nil
}

// warnIfLow flags products a mutation left at or below their alert
// threshold, so stock runs are visible in the log before anyone polls
// the low-stock listing.
func (s *ProductService) warnIfLow(p *domain.Product) {
	if p.LowOnStock() {
		s.log.Warn().
			Int64("product_id", p.ID).
			Str("product_code", p.ProductCode).
			Int64("current_stock", p.CurrentStock).
			Int64("critical_stock_level", p.CriticalStockLevel).
			Msg("product at or below critical stock level")
	}
}

// Delete deactivates the product. The row stays retrievable by id.
func (s *ProductService) Delete(ctx context.Context, id int64, actorID int64) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.recordAudit(ctx, &domain.AuditRecord{
		ProductID: id,
		Action:    domain.AuditDelete,
		ChangedBy: actorID,
		OldValues: snapshot(current),
	})

	s.log.Info().Int64("product_id", id).Msg("product deactivated")
	metrics.ProductMutationsTotal.WithLabelValues("delete").Inc()
	return nil
}

// BulkCreate attempts every item and reports per-item failures instead
// of aborting on the first bad row.
func (s *ProductService) BulkCreate(ctx context.Context, items []ports.ProductInput, actorID int64) (*ports.BulkResult, error) {
	result := &ports.BulkResult{}
	for i, item := range items {
		if _, err := s.create(ctx, item, actorID, true); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ports.BulkItemError{Index: i, Error: err.Error()})
			continue
		}
		result.Created++
	}
	return result, nil
}

// recordAudit applies the log-and-continue failure policy: the domain
// change is authoritative even when its trail write is lost.
func (s *ProductService) recordAudit(ctx context.Context, rec *domain.AuditRecord) {
	if _, err := s.audit.Record(ctx, rec); err != nil {
		s.log.Error().Err(err).
			Int64("product_id", rec.ProductID).
			Str("action", string(rec.Action)).
			Msg("audit record write failed")
		metrics.AuditFailuresTotal.Inc()
		return
	}
	metrics.AuditRecordsTotal.WithLabelValues(string(rec.Action)).Inc()
}
