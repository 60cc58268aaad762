package arccache

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"ori/internal/arc"
	"ori/internal/intern"
)

// Cache is the on-disk ArcIrCache: a directory of
// "functions/arc_ir/<hash>.bin" msgpack entries, keyed by the cached
// arc.Function's own content hash (a content-addressed store: the
// value's hash IS its key, so a caller only ever asks "do I already
// have the result of this exact computation").
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open creates (if absent) and returns a Cache rooted at root, mirroring
// the teacher's OpenDiskCache layout convention of one subdirectory per
// artifact kind under a shared cache root.
func Open(root string) (*Cache, error) {
	dir := filepath.Join(root, "functions", "arc_ir")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".bin")
}

// Put writes fn under its own content hash, atomically: encode to a
// temp file in the same directory, then os.Rename, so a concurrent or
// interrupted write never leaves a half-written entry for Get to trip
// over.
func (c *Cache) Put(in *intern.Interner, fn arc.Function) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(fn.ContentHash)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if err := msgpack.NewEncoder(f).Encode(toPayload(in, fn)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p)
}

// Get looks up key and, on a hit, decodes and returns the cached
// function. Per the integrity property a put-then-get round trip must
// satisfy, a decode error or a hash mismatch between the stored Hash
// field and key (i.e. a corrupted or truncated entry) is treated as a
// plain miss rather than surfaced as an error - a damaged cache entry
// must never fail a build, only cost it a recompute.
func (c *Cache) Get(in *intern.Interner, key [32]byte) (arc.Function, bool) {
	if c == nil {
		return arc.Function{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return arc.Function{}, false
	}
	defer f.Close()

	var p Payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return arc.Function{}, false
	}
	if p.Schema != payloadSchemaVersion || p.Hash != key {
		return arc.Function{}, false
	}
	return fromPayload(in, p), true
}

// Has reports whether an entry file exists for key. It neither opens
// nor decodes the file, so a corrupted entry still counts as present.
func (c *Cache) Has(key [32]byte) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, err := os.Stat(c.pathFor(key))
	return err == nil
}

// Clear invalidates every cached entry. Grounded on the teacher's
// DropAll: rename the live directory aside first so a concurrent
// reader never observes a half-deleted cache, then remove the
// renamed copy.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
