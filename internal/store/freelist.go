package store

import "sync"

// freeList is a size-class-bucketed stack of reclaimed addresses: one LIFO
// stack per size class, rather than a single global list, so the common
// case of same-size-class churn (re-encoding a node that grew or shrank by
// a byte or two) reuses a region in O(1) without scanning buckets it
// cannot satisfy (spec §4.6's realization note in SPEC_FULL.md §4.6).
type freeList struct {
	mu      sync.Mutex
	buckets [maxSizeClass + 1][]uint64
}

func newFreeList() *freeList {
	return &freeList{}
}

// push returns address to the free list for reuse by a future allocation
// of the same size class.
func (f *freeList) push(class byte, address uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buckets[class] = append(f.buckets[class], address)
}

// pop removes and returns a previously freed address of the given size
// class, if one is available.
func (f *freeList) pop(class byte) (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bucket := f.buckets[class]
	if len(bucket) == 0 {
		return 0, false
	}
	addr := bucket[len(bucket)-1]
	f.buckets[class] = bucket[:len(bucket)-1]
	return addr, true
}
