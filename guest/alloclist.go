package guest

import (
	"sync"

	"go.uber.org/zap"

	"github.com/glotkit/ucbridge"
)

// Allocation records one guest-memory allocation made while lowering.
type Allocation struct {
	Ptr   uint32
	Size  uint32
	Align uint32
}

// AllocationList collects the allocations made while lowering a batch of
// strings so they can be freed as a unit once the guest call returns.
type AllocationList struct {
	allocations []Allocation
}

var allocationListPool = sync.Pool{
	New: func() any {
		return &AllocationList{allocations: make([]Allocation, 0, 8)}
	},
}

// NewAllocationList returns a pooled, empty list.
func NewAllocationList() *AllocationList {
	return allocationListPool.Get().(*AllocationList)
}

const maxPooledAllocationCapacity = 128

// Release returns the list to the pool. Must be called after Free; the list
// is invalid after Release.
func (al *AllocationList) Release() {
	// Only pool small lists to prevent memory bloat
	if cap(al.allocations) > maxPooledAllocationCapacity {
		return
	}
	al.Reset()
	allocationListPool.Put(al)
}

// FreeAndRelease frees every recorded allocation and returns the list to the
// pool.
func (al *AllocationList) FreeAndRelease(allocator ucbridge.Allocator) {
	al.Free(allocator)
	al.Release()
}

// Add records an allocation.
func (al *AllocationList) Add(ptr, size, align uint32) {
	al.allocations = append(al.allocations, Allocation{
		Ptr:   ptr,
		Size:  size,
		Align: align,
	})
}

// Free releases every recorded allocation back to the guest allocator.
func (al *AllocationList) Free(allocator ucbridge.Allocator) {
	if allocator == nil {
		return
	}
	for _, a := range al.allocations {
		if a.Ptr != 0 {
			allocator.Free(a.Ptr, a.Size, a.Align)
		}
	}
	if len(al.allocations) > 0 {
		Logger().Debug("freed guest allocations", zap.Int("count", len(al.allocations)))
	}
}

// Reset clears the list without freeing.
func (al *AllocationList) Reset() {
	al.allocations = al.allocations[:0]
}

// Count returns the number of recorded allocations.
func (al *AllocationList) Count() int {
	return len(al.allocations)
}
