package main

import (
	"context"
	"github.com/Nami-00/cas/contracts"
	"github.com/rs/zerolog"
	"strings"
	"sync"
	"sync/atomic"
)

// LookupWorkersCount bounds the simultaneous PubChem requests of one batch.
const LookupWorkersCount = 4

type lookupJob struct {
	rowIndex  int
	casNumber string
}

type CasBatchDispatcher struct {
	overrides    contracts.OverrideTable
	resolver     contracts.CompoundResolver
	workersCount int
	logger       zerolog.Logger
}

func NewCasBatchDispatcher(
	overrides contracts.OverrideTable, resolver contracts.CompoundResolver,
	workersCount int, logger zerolog.Logger,
) *CasBatchDispatcher {
	if workersCount < 1 {
		workersCount = LookupWorkersCount
	}

	return &CasBatchDispatcher{
		overrides:    overrides,
		resolver:     resolver,
		workersCount: workersCount,
		logger:       logger,
	}
}

func (d *CasBatchDispatcher) RunBatch(ctx context.Context, casNumbers []string) ([]contracts.LookupResult, contracts.BatchCounts) {
	results := make([]contracts.LookupResult, len(casNumbers))
	counts := contracts.BatchCounts{}

	pending := make([]lookupJob, 0, len(casNumbers))
	for rowIndex, casNumber := range casNumbers {
		results[rowIndex] = contracts.LookupResult{CasNumber: casNumber}

		if strings.TrimSpace(casNumber) == "" {
			counts.Skipped++
			continue
		}

		if override, found := d.overrides.Lookup(casNumber); found {
			results[rowIndex] = override
			counts.Overridden++
			continue
		}

		pending = append(pending, lookupJob{rowIndex: rowIndex, casNumber: casNumber})
	}

	if len(pending) > 0 {
		d.resolvePending(ctx, pending, results, &counts)
	}

	d.logger.Info().
		Int("rows", len(casNumbers)).
		Int("overridden", counts.Overridden).
		Int("resolved", counts.Resolved).
		Int("not_found", counts.NotFound).
		Int("failed", counts.Failed).
		Int("skipped", counts.Skipped).
		Msg("batch lookup finished")

	return results, counts
}

// resolvePending fans the unresolved rows out to the worker pool and blocks
// until every lookup returned. Each worker writes only the indexes of its own
// jobs, so the results slice needs no locking.
func (d *CasBatchDispatcher) resolvePending(ctx context.Context, pending []lookupJob, results []contracts.LookupResult, counts *contracts.BatchCounts) {
	workersCount := d.workersCount
	if len(pending) < workersCount {
		workersCount = len(pending)
	}

	queue := make(chan lookupJob)

	var resolved, notFound, failed atomic.Int64

	var wg sync.WaitGroup
	wg.Add(workersCount)
	for i := 0; i < workersCount; i++ {
		go func() {
			defer wg.Done()
			for job := range queue {
				result, err := d.resolver.Resolve(ctx, job.casNumber)
				result.CasNumber = job.casNumber
				results[job.rowIndex] = result

				if err != nil {
					failed.Add(1)
					d.logger.Error().Err(err).Str("cas_number", job.casNumber).Msg("compound lookup failed")
				} else if result.Found() {
					resolved.Add(1)
				} else {
					notFound.Add(1)
				}
			}
		}()
	}

	for _, job := range pending {
		queue <- job
	}
	close(queue)
	wg.Wait()

	counts.Resolved = int(resolved.Load())
	counts.NotFound = int(notFound.Load())
	counts.Failed = int(failed.Load())
}
