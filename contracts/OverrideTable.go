package contracts

// OverrideTable is the manually curated fallback for substances PubChem does
// not know. A hit short-circuits the remote lookup, even when the stored
// result is intentionally blank.
type OverrideTable interface {
	Lookup(casNumber string) (LookupResult, bool)
}
