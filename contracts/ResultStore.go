package contracts

import "errors"

// ResultStore keeps finished workbooks between the upload response and the
// download click. Entries expire on their own; nothing survives a restart.
type ResultStore interface {
	Put(result *StoredResult) (lookupId string)
	Get(lookupId string) (*StoredResult, bool)
}

type StoredResult struct {
	Filename string
	Content  []byte
}

var ResultNotFoundError = errors.New("lookup result not found or expired")
