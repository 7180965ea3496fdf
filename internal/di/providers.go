package di

import (
	"bguard/internal/providers"
	"bguard/internal/store"
)

// ProvideStoreStats narrows the store to the slice the metrics provider
// observes, keeping providers free of a store import.
func ProvideStoreStats(st store.Store) providers.StoreStats {
	return st
}
