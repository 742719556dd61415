package contracts

import "context"

// BatchDispatcher resolves an ordered list of CAS registry numbers.
// The output is parallel to the input: len(results) == len(casNumbers) and
// results[i] belongs to casNumbers[i] no matter in which order the concurrent
// lookups finish. A single failing number degrades to a blank row, never to a
// batch failure.
type BatchDispatcher interface {
	RunBatch(ctx context.Context, casNumbers []string) ([]LookupResult, BatchCounts)
}

// BatchCounts sums up how each row of a batch was settled.
type BatchCounts struct {
	Overridden int `json:"overridden"`
	Resolved   int `json:"resolved"`
	NotFound   int `json:"not_found"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}
