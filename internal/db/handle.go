package db

import "sync"

// Handle is a ref-counted wrapper around a committed revision's root
// address: it realizes the "immutable once published" guarantee spec §5
// requires of a committed revision, adapted from the teacher's
// SetDirty/SetClean pair on substrate.Node. A Handle starts unpublished
// (mutable, owned by whoever is still building it) and is marked
// published exactly once; after that, concurrent readers may share it
// without a lock of their own: every accessor takes h's internal mutex.
type Handle struct {
	mu        sync.Mutex
	published bool
	refs      int

	rootAddress uint64
}

// NewHandle wraps rootAddress in a fresh, unpublished Handle.
func NewHandle(rootAddress uint64) *Handle {
	return &Handle{rootAddress: rootAddress}
}

// Publish marks h immutable. Calling it more than once is a no-op: once
// published, a Handle never goes back to being mutable.
func (h *Handle) Publish() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.published = true
}

// IsPublished reports whether h has been published.
func (h *Handle) IsPublished() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.published
}

// Acquire increments h's reader count. Safe to call only after Publish;
// callers that need the root address of an in-progress (unpublished)
// handle already hold whatever lock is building it.
func (h *Handle) Acquire() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refs++
}

// Release decrements h's reader count.
func (h *Handle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refs--
}

// RootAddress returns the root node address h wraps.
func (h *Handle) RootAddress() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rootAddress
}

// RefCount reports the current reader count, mainly for tests.
func (h *Handle) RefCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.refs
}
