// Package db is the database façade spec.md explicitly places outside
// the core and this repository realizes as a supporting package: Open,
// RootHash, Revision, and a Revision's Val, mirroring
// original_source/fwdctl/src/get.rs's Db::new / db.root_hash /
// db.revision(hash) / rev.val(key) call shape.
package db

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"

	"github.com/ChainSafe/chaindb"

	"github.com/KushnerykPavel/firewood/internal/config"
	"github.com/KushnerykPavel/firewood/internal/logging"
	"github.com/KushnerykPavel/firewood/internal/merkle"
	"github.com/KushnerykPavel/firewood/internal/node"
	"github.com/KushnerykPavel/firewood/internal/store"
)

var log = logging.Module("db")

// ErrEmptyDatabase is returned by RootHash when no revision has ever
// been committed, mirroring the original CLI's "Database is empty" case.
var ErrEmptyDatabase = errors.New("db: database is empty")

// ErrRevisionNotFound is returned by Revision when hash does not name a
// committed revision.
var ErrRevisionNotFound = errors.New("db: revision not found")

const currentRootKey = "current-root"

const revisionKeyPrefix = "rev:"

// DB is an open handle on a firewood-style node store: a LinearStore for
// node bytes plus a small index mapping committed root hashes to their
// root node's address.
type DB struct {
	store  store.LinearStore
	index  chaindb.Database
	hasher merkle.Hasher
}

// Open opens (or creates) the database rooted at dir, applying cfg.
func Open(dir string, cfg config.DbConfig) (*DB, error) {
	if cfg.Truncate {
		log.Debug("truncating database directory", "dir", dir)
		if err := os.RemoveAll(dir); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	st, err := store.Open(filepath.Join(dir, "arena.db"))
	if err != nil {
		return nil, err
	}

	idx, err := chaindb.NewBadgerDB(filepath.Join(dir, "index"))
	if err != nil {
		st.Close()
		return nil, err
	}

	log.Debug("opened database", "dir", dir)
	return &DB{store: st, index: idx, hasher: merkle.New()}, nil
}

// Close releases the arena and index resources.
func (d *DB) Close() error {
	indexErr := d.index.Close()
	storeErr := d.store.Close()
	if indexErr != nil {
		return indexErr
	}
	return storeErr
}

// RootHash returns the hash of the most recently committed revision.
func (d *DB) RootHash() (node.HashType, error) {
	raw, err := d.index.Get([]byte(currentRootKey))
	if err != nil {
		if errors.Is(err, chaindb.ErrKeyNotFound) {
			return nil, ErrEmptyDatabase
		}
		return nil, err
	}
	return node.ReadHashType(bytes.NewReader(raw))
}

// Revision opens a read-only handle on the committed revision identified
// by hash.
func (d *DB) Revision(hash node.HashType) (*Revision, error) {
	var hashBuf bytes.Buffer
	if err := hash.WriteTo(&hashBuf); err != nil {
		return nil, err
	}

	raw, err := d.index.Get(revisionKey(hashBuf.Bytes()))
	if err != nil {
		if errors.Is(err, chaindb.ErrKeyNotFound) {
			return nil, ErrRevisionNotFound
		}
		return nil, err
	}

	address := binary.NativeEndian.Uint64(raw)
	handle := NewHandle(address)
	handle.Publish()
	return &Revision{db: d, handle: handle, hash: hash}, nil
}

// commitRoot records address as the root of a newly committed revision
// identified by hash, and advances the current-root pointer to it. It
// exists to make Revision/RootHash testable without a full insertion
// path (insertion itself is a Non-goal, spec.md §1).
func (d *DB) commitRoot(hash node.HashType, address uint64) error {
	var hashBuf bytes.Buffer
	if err := hash.WriteTo(&hashBuf); err != nil {
		return err
	}

	var addrBuf [8]byte
	binary.NativeEndian.PutUint64(addrBuf[:], address)

	if err := d.index.Put(revisionKey(hashBuf.Bytes()), addrBuf[:]); err != nil {
		return err
	}
	return d.index.Put([]byte(currentRootKey), hashBuf.Bytes())
}

func revisionKey(hashBytes []byte) []byte {
	key := make([]byte, 0, len(revisionKeyPrefix)+len(hashBytes))
	key = append(key, revisionKeyPrefix...)
	return append(key, hashBytes...)
}
