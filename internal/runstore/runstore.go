// Package runstore persists forecast runs and their points.
package runstore

import (
	"sync"

	"github.com/huangsam/rollcast/internal/contract"
)

// RunStoreManager manages the RunStore instance used for run tracking.
type RunStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	runs         contract.RunStore
}

var _ contract.RunManager = &RunStoreManager{} // Compile-time check

// GetRunStore returns the run-tracking RunStore.
func (mgr *RunStoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
