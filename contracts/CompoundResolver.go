package contracts

import "context"

// CompoundResolver looks one CAS registry number up in the remote compound
// database. A substance unknown to the database is a normal outcome: both
// result fields stay nil and the error is nil. A non-nil error means the
// lookup itself broke (network, timeout, unexpected payload) and the caller
// should log it, but the result is still usable as a blank row.
type CompoundResolver interface {
	Resolve(ctx context.Context, casNumber string) (LookupResult, error)
}
