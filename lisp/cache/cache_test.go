// cache_test.go - unit tests for cache.go
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
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "test")
	c, err := open(dir, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	page := []byte("<span class=\"LParen\">(</span>")
	err = c.Put("A", page)
	if err != nil {
		t.Error(err)
	}

	if !c.Has("A") {
		t.Error("key A not found")
	}
	if c.Has("B") {
		t.Error("non-existent key B found")
	}

	data, err := c.Get("A")
	if err != nil {
		t.Error(err)
	} else if !bytes.Equal(data, page) {
		t.Errorf("key A yielded wrong data %q", data)
	}
	_, err = c.Get("B")
	if err != ErrNotFound {
		t.Error("requesting non-existent key B returned wrong error", err)
	}

	err = c.Close(-1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("cache directory not removed")
	}
}

func TestCachePersistence(t *testing.T) {
	dir := t.TempDir()
	c, err := open(dir, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"one", "two", "three"} {
		err = c.Put(key, bytes.Repeat([]byte("x"), 100))
		if err != nil {
			t.Fatal(err)
		}
	}
	// entries added by this instance are kept
	err = c.Close(0)
	if err != nil {
		t.Fatal(err)
	}

	c, err = open(dir, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Has("two") {
		t.Fatal("entry lost after reopening")
	}
	err = c.Put("four", []byte("y"))
	if err != nil {
		t.Fatal(err)
	}
	// old entries are pruned, the new one is kept
	err = c.Close(0)
	if err != nil {
		t.Fatal(err)
	}

	c, err = open(dir, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if c.Has("one") || c.Has("two") || c.Has("three") {
		t.Error("old entries not pruned")
	}
	if !c.Has("four") {
		t.Error("new entry pruned")
	}
	err = c.Close(-1)
	if err != nil {
		t.Fatal(err)
	}
}

func TestHashKey(t *testing.T) {
	a := hashKey("html\x00(a)")
	b := hashKey("ansi\x00(a)")
	if a == b {
		t.Error("different keys hash to the same value")
	}
	if len(a) != len(keyPrefix)+20 {
		t.Errorf("wrong hash length %d", len(a))
	}
}

func TestByteSize(t *testing.T) {
	testCases := []struct {
		in  byteSize
		out string
	}{
		{0, "0B"},
		{999, "999B"},
		{2048, "2KB"},
		{1536 * 1024, "1.5MB"},
	}
	for _, testCase := range testCases {
		if s := testCase.in.String(); s != testCase.out {
			t.Errorf("%d: got %q, expected %q", int64(testCase.in), s, testCase.out)
		}
	}
}
