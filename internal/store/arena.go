package store

import (
	"encoding/binary"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"

	"github.com/KushnerykPavel/firewood/internal/logging"
)

var log = logging.Module("store")

// headerLen reserves the arena's first 8 bytes for a persisted tail
// offset, so that address 0 is never handed out as a node address —
// matching node.ErrZeroAddress's invariant that zero is reserved and
// never a valid pointer.
const headerLen = 8

// initialArenaCapacity is the data region size a freshly created arena
// file starts with; grow doubles it on demand.
const initialArenaCapacity = 1 << 20

// arena is the memory-mapped linear byte region node regions are carved
// out of. It tracks only a monotonically increasing tail: reclaimed
// regions are handed back out by freeList, never by shrinking the tail.
type arena struct {
	mu   sync.Mutex
	file *os.File
	mm   mmap.MMap
	tail uint64
}

func openArena(path string) (*arena, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size() == 0 {
		if err := f.Truncate(headerLen + initialArenaCapacity); err != nil {
			f.Close()
			return nil, err
		}
	}

	mm, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	a := &arena{file: f, mm: mm}
	a.tail = binary.NativeEndian.Uint64(a.mm[:headerLen])
	if a.tail == 0 {
		a.tail = headerLen
		a.persistTail()
	}
	return a, nil
}

func (a *arena) persistTail() {
	binary.NativeEndian.PutUint64(a.mm[:headerLen], a.tail)
}

// alloc reserves n fresh bytes at the tail of the arena, growing the
// backing file and remapping it if the current mapping is too small.
func (a *arena) alloc(n int) (uint64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	needed := a.tail + uint64(n)
	if needed > uint64(len(a.mm)) {
		if err := a.grow(needed); err != nil {
			return 0, err
		}
	}

	address := a.tail
	a.tail = needed
	a.persistTail()
	return address, nil
}

// grow doubles the arena's backing file until it can hold atLeast bytes.
func (a *arena) grow(atLeast uint64) error {
	newSize := uint64(len(a.mm))
	if newSize == 0 {
		newSize = headerLen + initialArenaCapacity
	}
	for newSize < atLeast {
		newSize *= 2
	}
	log.Debug("growing arena", "from", len(a.mm), "to", newSize)

	if err := a.mm.Unmap(); err != nil {
		return err
	}
	if err := a.file.Truncate(int64(newSize)); err != nil {
		return err
	}
	mm, err := mmap.Map(a.file, mmap.RDWR, 0)
	if err != nil {
		return err
	}
	a.mm = mm
	return nil
}

// region returns the live byte slice for [address, address+n).
func (a *arena) region(address uint64, n int) []byte {
	return a.mm[address : address+uint64(n)]
}

func (a *arena) flush() error {
	return a.mm.Flush()
}

func (a *arena) close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.mm.Flush(); err != nil {
		return err
	}
	if err := a.mm.Unmap(); err != nil {
		return err
	}
	return a.file.Close()
}
