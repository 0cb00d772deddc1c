// Package store implements the linear storage arena internal/node's
// codec is bridged to: a byte stream with a one-byte size-class prefix
// per region and a free list that reuses reclaimed regions by size class
// (spec §4.6, carried as internal/store per SPEC_FULL.md §2/§4.6).
package store

import (
	"bytes"

	"github.com/KushnerykPavel/firewood/internal/node"
)

// LinearStore is the byte-stream abstraction node regions live in: Put
// serializes a node into a freshly allocated or reused region and returns
// its address, Get decodes the node at a previously returned address, and
// Delete reclaims a region for reuse (spec §2's "LinearStore I/F" row).
type LinearStore interface {
	Put(n *node.Node) (address uint64, err error)
	Get(address uint64) (*node.Node, error)
	Delete(address uint64) error
	Close() error
}

type linearStore struct {
	arena *arena
	free  *freeList
	codec node.Codec
}

// Open opens or creates the arena file at path and returns a LinearStore
// backed by it.
func Open(path string) (LinearStore, error) {
	a, err := openArena(path)
	if err != nil {
		return nil, err
	}
	return &linearStore{arena: a, free: newFreeList()}, nil
}

// Put encodes n and stores it in a region sized to its size class,
// reusing a freed region of the same class when the free list has one,
// and carving a new region from the arena tail otherwise.
func (s *linearStore) Put(n *node.Node) (uint64, error) {
	var buf bytes.Buffer
	if err := s.codec.Encode(0, n, &buf); err != nil {
		return 0, err
	}

	class, err := sizeClassFor(buf.Len())
	if err != nil {
		return 0, err
	}
	// The prefix byte IS the size class: the codec writes it literally
	// without interpreting it, so overwriting it here after encoding
	// costs nothing and avoids encoding twice.
	encoded := buf.Bytes()
	encoded[0] = class

	address, reused := s.free.pop(class)
	if !reused {
		address, err = s.arena.alloc(classCapacity(class))
		if err != nil {
			return 0, err
		}
	}

	copy(s.arena.region(address, classCapacity(class)), encoded)
	return address, nil
}

// Get decodes the node stored at address.
func (s *linearStore) Get(address uint64) (*node.Node, error) {
	class := s.arena.region(address, 1)[0]
	if class == freedAreaByte {
		return nil, node.ErrFreedArea
	}

	capacity := classCapacity(class)
	region := s.arena.region(address, capacity)
	reader := bytes.NewReader(region[1:])
	return s.codec.Decode(reader)
}

// Delete marks the region at address as freed and returns it to the free
// list for reuse by a future Put of the same size class.
func (s *linearStore) Delete(address uint64) error {
	class := s.arena.region(address, 1)[0]
	if class == freedAreaByte {
		return node.ErrFreedArea
	}
	s.arena.region(address, 1)[0] = freedAreaByte
	s.free.push(class, address)
	return nil
}

func (s *linearStore) Close() error {
	return s.arena.close()
}
