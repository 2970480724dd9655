package queue

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/bizcore/erp-api/internal/core/domain"
	"github.com/bizcore/erp-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit records to a fixed set of workers using
// consistent hashing on the product id, so records for one product are
// written in the order they were enqueued. It backs the bulk import
// path, where per-item synchronous audit writes would serialize the
// whole batch on the audit store.
type Dispatcher struct {
	workers  []chan *domain.AuditRecord
	recorder ports.AuditRecorder
	log      zerolog.Logger
	done     chan struct{}
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder ports.AuditRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan *domain.AuditRecord, numWorkers),
		recorder: recorder,
		log:      log,
		done:     make(chan struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.AuditRecord, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		close(d.done)
	}()
}

// Enqueue hands a record to the worker responsible for its product.
// Non-blocking up to channelBuffer capacity. Once the dispatcher is
// stopped the record is dropped and logged instead of blocking the
// caller on a full shard no worker will ever drain.
func (d *Dispatcher) Enqueue(rec *domain.AuditRecord) {
	select {
	case <-d.done:
		d.log.Error().
			Int64("product_id", rec.ProductID).
			Str("action", string(rec.Action)).
			Msg("dispatcher stopped, audit record dropped")
	case d.workers[d.shardIndex(rec.ProductID)] <- rec:
	}
}

// shardIndex maps a product id deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d", productID)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.AuditRecord) {
	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-ch:
			if !ok {
				return
			}
			if _, err := d.recorder.Record(ctx, rec); err != nil {
				d.log.Error().Err(err).
					Int64("product_id", rec.ProductID).
					Int("worker_id", id).
					Msg("queued audit write failed")
			}
		}
	}
}
