package cram

import (
	"encoding/binary"
	"hash/maphash"
	"slices"
)

// stringTable is an append-only list of distinct strings.
type stringTable struct {
	strings []string
	index   map[string]int
}

func newStringTable() *stringTable {
	return &stringTable{index: map[string]int{}}
}

// indexFor returns the index of s, appending it on first sight. Strings
// that differ only in ill-formed UTF-8 share an entry.
func (t *stringTable) indexFor(s string) int {
	s = validString(s)
	if i, ok := t.index[s]; ok {
		return i
	}
	i := len(t.strings)
	t.index[s] = i
	t.strings = append(t.strings, s)
	return i
}

func (t *stringTable) len() int { return len(t.strings) }

// schemaTable is an append-only list of distinct sorted key lists.
//
// Lookups hash the key list and then compare it element-wise against every
// schema in the bucket, so a hash collision never merges two schemas.
type schemaTable struct {
	schemas [][]string
	buckets map[uint64][]int
	seed    maphash.Seed
	hashFn  func([]string) uint64
}

func newSchemaTable() *schemaTable {
	t := &schemaTable{
		buckets: map[uint64][]int{},
		seed:    maphash.MakeSeed(),
	}
	t.hashFn = t.hash
	return t
}

func (t *schemaTable) hash(keys []string) uint64 {
	var h maphash.Hash
	h.SetSeed(t.seed)
	var b [8]byte
	for _, k := range keys {
		// length prefix so that key boundaries are part of the hash
		binary.LittleEndian.PutUint64(b[:], uint64(len(k)))
		h.Write(b[:])
		h.WriteString(k)
	}
	return h.Sum64()
}

// indexFor returns the index of the schema with exactly the given sorted
// keys, appending a copy of keys on first sight.
func (t *schemaTable) indexFor(keys []string) int {
	h := t.hashFn(keys)
	for _, i := range t.buckets[h] {
		if slices.Equal(t.schemas[i], keys) {
			return i
		}
	}
	i := len(t.schemas)
	t.schemas = append(t.schemas, slices.Clone(keys))
	t.buckets[h] = append(t.buckets[h], i)
	return i
}

func (t *schemaTable) len() int { return len(t.schemas) }
