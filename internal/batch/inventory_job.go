package batch

import (
	"bank-services/internal/infrastructure/monitoring"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Counter is the part of a store the inventory job needs. Both the home loan
// and savings account repositories satisfy it.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// InventoryJob publishes the number of records held by each store to the
// bank_services_records_stored gauge.
type InventoryJob struct {
	stores map[string]Counter
	logger *slog.Logger
}

func NewInventoryJob(stores map[string]Counter, logger *slog.Logger) *InventoryJob {
	if len(stores) == 0 || logger == nil {
		panic("InventoryJob dependencies cannot be nil")
	}
	for resource, store := range stores {
		if store == nil {
			panic(fmt.Sprintf("InventoryJob store for %q cannot be nil", resource))
		}
	}
	return &InventoryJob{
		stores: stores,
		logger: logger.With("job", "Inventory"),
	}
}

func (j *InventoryJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.DebugContext(ctx, "Starting store inventory job.")

	resources := make([]string, 0, len(j.stores))
	for resource := range j.stores {
		resources = append(resources, resource)
	}
	sort.Strings(resources)

	var wg sync.WaitGroup
	var errorCount, total atomic.Int64

	for _, resource := range resources {
		wg.Add(1)
		go func(resource string, store Counter) {
			defer wg.Done()

			logCtx := j.logger.With(slog.String("resource", resource))
			count, err := store.Count(ctx)
			if err != nil {
				logCtx.ErrorContext(ctx, "Failed to count records", slog.Any("error", err))
				errorCount.Add(1)
				return
			}

			monitoring.SetRecordsStored(resource, count)
			total.Add(int64(count))
			logCtx.DebugContext(ctx, "Records counted.", slog.Int("count", count))
		}(resource, j.stores[resource])
	}

	wg.Wait()
	summaryLog := j.logger.With(
		slog.Duration("duration", time.Since(startTime)),
		slog.Int("stores", len(resources)),
		slog.Int64("records", total.Load()),
		slog.Int64("errors_encountered", errorCount.Load()),
	)

	if n := errorCount.Load(); n > 0 {
		summaryLog.WarnContext(ctx, "Store inventory job finished with errors.")
		return fmt.Errorf("job completed with %d errors", n)
	}
	summaryLog.DebugContext(ctx, "Store inventory job finished successfully.")
	return nil
}
