package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizcore/erp-api/internal/core/domain"
)

const auditCollection = "product_audit_log"

// AuditRepository is the append-only audit store. Records are only ever
// inserted and read back in descending timestamp order; there is no
// update or delete path by design of the collection contract.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID int64              `bson:"product_id"`
	Action    string             `bson:"action"`
	ChangedBy int64              `bson:"changed_by"`
	OldValues map[string]any     `bson:"old_values,omitempty"`
	NewValues map[string]any     `bson:"new_values,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, rec *domain.AuditRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := auditDoc{
		ProductID: rec.ProductID,
		Action:    string(rec.Action),
		ChangedBy: rec.ChangedBy,
		OldValues: rec.OldValues,
		NewValues: rec.NewValues,
		Timestamp: rec.Timestamp,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid.Hex()
	}
	return nil
}

// FindByProduct returns all records for one product, newest first.
func (r *AuditRepository) FindByProduct(ctx context.Context, productID int64) ([]domain.AuditRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx,
		bson.M{"product_id": productID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find audit records: %w", err)
	}
	defer cur.Close(ctx)

	var records []domain.AuditRecord
	for cur.Next(ctx) {
		var doc auditDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit record: %w", err)
		}
		records = append(records, domain.AuditRecord{
			ID:        doc.ID.Hex(),
			ProductID: doc.ProductID,
			Action:    domain.AuditAction(doc.Action),
			ChangedBy: doc.ChangedBy,
			OldValues: doc.OldValues,
			NewValues: doc.NewValues,
			Timestamp: doc.Timestamp,
		})
	}
	return records, cur.Err()
}
