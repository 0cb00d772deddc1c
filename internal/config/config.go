// Package config provides the DbConfig builder every entry point into
// internal/db goes through, mirroring the original's
// firewood::db::DbConfig::builder() pattern (SPEC_FULL.md §10.2).
package config

import "fmt"

// DbConfig is the validated configuration a database open call accepts.
// It is only ever constructed via Builder.Build, so a DbConfig value in
// hand is known to already satisfy every invariant below.
type DbConfig struct {
	// Truncate removes the whole database directory (arena file and
	// revision index) at open time instead of loading it, matching firewood::db::DbConfig::builder().truncate(false)'s
	// default of false (never truncate) unless explicitly overridden.
	Truncate bool

	// NodeCachePages is the requested size of a decoded-node cache. Build
	// rejects 0; internal/db keeps no node cache and does not read this
	// setting.
	NodeCachePages uint

	// FreeListCacheBuckets is the requested number of size classes with a
	// warm in-memory free list. Build rejects values above 255;
	// internal/store keeps a free list for every size class and does not
	// read this setting.
	FreeListCacheBuckets uint
}

// Builder accumulates DbConfig settings via chained setter calls
// (Truncate, NodeCachePages, FreeListCacheBuckets), the same shape as the
// original's DbConfig::builder().
type Builder struct {
	cfg DbConfig
}

// NewBuilder returns a Builder seeded with this repository's defaults:
// no truncation, NodeCachePages 1024, and FreeListCacheBuckets 255 (one
// per size class).
func NewBuilder() *Builder {
	return &Builder{cfg: DbConfig{
		Truncate:             false,
		NodeCachePages:       1024,
		FreeListCacheBuckets: 255,
	}}
}

// Truncate sets whether Open removes an existing database directory.
func (b *Builder) Truncate(truncate bool) *Builder {
	b.cfg.Truncate = truncate
	return b
}

// NodeCachePages overrides the NodeCachePages setting.
func (b *Builder) NodeCachePages(pages uint) *Builder {
	b.cfg.NodeCachePages = pages
	return b
}

// FreeListCacheBuckets overrides the FreeListCacheBuckets setting.
func (b *Builder) FreeListCacheBuckets(buckets uint) *Builder {
	b.cfg.FreeListCacheBuckets = buckets
	return b
}

// Build validates the accumulated settings and returns the DbConfig, or
// an error naming the first invariant violated.
func (b *Builder) Build() (DbConfig, error) {
	if b.cfg.NodeCachePages == 0 {
		return DbConfig{}, fmt.Errorf("config: node cache must hold at least one page")
	}
	if b.cfg.FreeListCacheBuckets > 255 {
		return DbConfig{}, fmt.Errorf("config: free list cache buckets must be <= 255, got %d", b.cfg.FreeListCacheBuckets)
	}
	return b.cfg, nil
}
