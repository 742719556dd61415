package main

import (
	"github.com/Nami-00/cas/contracts"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"time"
)

const ResultTtl = 15 * time.Minute
const ResultStoreSize = 16

// DownloadStore keeps finished workbooks in memory until the browser fetches
// them. Entries fall out after the TTL or when the store is full, whichever
// comes first; nothing survives a restart.
type DownloadStore struct {
	cache *expirable.LRU[string, *contracts.StoredResult]
}

func NewDownloadStore(ttl time.Duration, size int) *DownloadStore {
	return &DownloadStore{
		cache: expirable.NewLRU[string, *contracts.StoredResult](size, nil, ttl),
	}
}

func (s *DownloadStore) Put(result *contracts.StoredResult) string {
	lookupId := uuid.NewString()
	s.cache.Add(lookupId, result)

	return lookupId
}

func (s *DownloadStore) Get(lookupId string) (*contracts.StoredResult, bool) {
	return s.cache.Get(lookupId)
}
