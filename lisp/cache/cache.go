// cache.go - Implement the Cache object.
// Copyright (C) 2016  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package cache

import (
	"encoding/base64"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/buntdb"
	"golang.org/x/crypto/sha3"
)

var (
	cacheDir = flag.String("cache-dir", "",
		"cache directory for rendered pages")
	cacheTTL = flag.Duration("cache-ttl", 30*24*time.Hour,
		"time after which cached pages expire")
)

// ErrNotFound is returned by .Get() if no data is stored for a key.
var ErrNotFound = errors.New("not found in cache")

const keyPrefix = "page:"

// Cache provides a facility to store rendered documents on disk for
// later retrival.
type Cache struct {
	cacheDir string
	db       *buntdb.DB
	ttl      time.Duration

	sync.Mutex
	added map[string]bool
}

// NewCache creates a new cache, backed by a database in subdirectory
// 'subdir' inside the cache directory.  Entries stored by previous
// Cache instances are available until they expire.
func NewCache(subdir string) (*Cache, error) {
	dir := *cacheDir
	if len(dir) == 0 {
		dir = os.Getenv("CL2HTML_CACHE")
	}
	if len(dir) == 0 {
		userDir, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(userDir, "de.seehuhn.cl2html")
	}
	return open(filepath.Join(dir, subdir), *cacheTTL)
}

func open(dir string, ttl time.Duration) (*Cache, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, err
	}
	db, err := buntdb.Open(filepath.Join(dir, "cache.db"))
	if err != nil {
		return nil, err
	}
	err = db.SetConfig(buntdb.Config{
		SyncPolicy:           buntdb.EverySecond,
		AutoShrinkPercentage: 100,
		AutoShrinkMinSize:    4 * 1024 * 1024,
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	c := &Cache{
		cacheDir: dir,
		db:       db,
		ttl:      ttl,
		added:    make(map[string]bool),
	}

	var total int64
	var count int
	err = db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend("", func(key, value string) bool {
			if !strings.HasPrefix(key, keyPrefix) {
				log.Printf("cache %s: unexpected key %q", c.cacheDir, key)
				return true
			}
			total += int64(len(value))
			count++
			return true
		})
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Printf("cache %s: %s (%d objects)",
		c.cacheDir, byteSize(total), count)

	return c, nil
}

// Close must be called when the cache is no longer needed.  Up to
// 'pruneLimit' bytes of data may be left behind in the cache
// directory; these entries will be available to future Cache
// instances.
//
// If pruneLimit >= 0, data added using the current Cache instance
// will always be retained, even if its total size exceeds
// pruneLimit.  If pruneLimit < 0, all cached data is removed.
func (c *Cache) Close(pruneLimit int64) error {
	c.Lock()
	defer c.Unlock()

	var pruneCount int
	var pruneBytes int64
	err := c.db.Update(func(tx *buntdb.Tx) error {
		var of oldestFirst
		var total int64
		err := tx.Ascend("", func(key, value string) bool {
			ttl, err := tx.TTL(key)
			if err != nil {
				ttl = 0
			}
			of = append(of, pruneEntry{
				key:  key,
				size: int64(len(value)),
				ttl:  ttl,
			})
			total += int64(len(value))
			return true
		})
		if err != nil {
			return err
		}
		sort.Sort(of)

		for _, pe := range of {
			if total <= pruneLimit {
				break
			}
			if pruneLimit >= 0 && c.added[pe.key] {
				continue
			}
			_, err := tx.Delete(pe.key)
			if err != nil {
				return err
			}
			pruneCount++
			pruneBytes += pe.size
			total -= pe.size
		}
		return nil
	})
	if pruneCount > 0 {
		log.Printf("cache %s: removed %s (%d objects)",
			c.cacheDir, byteSize(pruneBytes), pruneCount)
	}

	e2 := c.db.Close()
	if err == nil {
		err = e2
	}
	if pruneLimit < 0 {
		_ = os.Remove(filepath.Join(c.cacheDir, "cache.db"))
		_ = os.Remove(c.cacheDir)
	}

	c.added = nil
	return err
}

// Has returns true, if the cache contains data which has previously
// been stored for the given key.  The data can be retrieved using the
// .Get() method.
func (c *Cache) Has(key string) bool {
	hash := hashKey(key)
	err := c.db.View(func(tx *buntdb.Tx) error {
		_, err := tx.Get(hash)
		return err
	})
	return err == nil
}

// Put stores new data in the cache.  The data can later be retrieved
// using the given key, until it expires.  Any preexisting data using
// the same key is overwritten by subsequent calls to .Put().
func (c *Cache) Put(key string, data []byte) error {
	hash := hashKey(key)
	var opts *buntdb.SetOptions
	if c.ttl > 0 {
		opts = &buntdb.SetOptions{Expires: true, TTL: c.ttl}
	}
	err := c.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(hash, string(data), opts)
		return err
	})
	if err != nil {
		return err
	}

	c.Lock()
	c.added[hash] = true
	c.Unlock()
	return nil
}

// Get returns data which has previously been stored in the cache for
// the given key.  If no data is found, ErrNotFound is returned.
func (c *Cache) Get(key string) ([]byte, error) {
	hash := hashKey(key)
	var data []byte
	err := c.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(hash)
		if err != nil {
			return err
		}
		data = []byte(value)
		return nil
	})
	if err == buntdb.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return data, nil
}

func hashKey(key string) string {
	h := sha3.NewShake128()
	h.Write([]byte(key))
	buf := make([]byte, 15)
	h.Read(buf)
	return keyPrefix + base64.RawURLEncoding.EncodeToString(buf)
}

type pruneEntry struct {
	key  string
	size int64
	ttl  time.Duration
}

// oldestFirst orders entries by remaining lifetime.  Since all
// entries are stored with the same TTL, entries which expire first
// are the oldest ones.
type oldestFirst []pruneEntry

func (of oldestFirst) Len() int { return len(of) }
func (of oldestFirst) Less(i, j int) bool {
	return of[i].ttl < of[j].ttl
}
func (of oldestFirst) Swap(i, j int) { of[i], of[j] = of[j], of[i] }
