package extarray

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	tableLoadFactor     = 0.75
	tableGrowthFactor   = 2
	tableCapacityFactor = 1.3
)

// floatTable maps float64 values to dense codes in insertion order. Keys are
// compared by bit pattern after folding -0 into +0; callers keep NaN out.
type floatTable struct {
	buckets  [][]tableEntry
	capacity int
	size     int
}

type tableEntry struct {
	key  uint64
	code int
}

func newFloatTable(estimatedSize int) *floatTable {
	capacity := nextPowerOfTwo(int(float64(estimatedSize) * tableCapacityFactor))
	return &floatTable{
		buckets:  make([][]tableEntry, capacity),
		capacity: capacity,
	}
}

func tableKey(v float64) uint64 {
	if v == 0 {
		v = 0
	}
	return math.Float64bits(v)
}

func hashKey(key uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], key)
	return xxhash.Sum64(b[:])
}

func (t *floatTable) bucket(key uint64) int {
	//nolint:gosec // capacity is always a positive power of two
	return int(hashKey(key) & uint64(t.capacity-1))
}

// Insert returns the code for v, adding it with the next code when absent.
func (t *floatTable) Insert(v float64) (int, bool) {
	key := tableKey(v)
	idx := t.bucket(key)
	for _, entry := range t.buckets[idx] {
		if entry.key == key {
			return entry.code, false
		}
	}

	code := t.size
	t.buckets[idx] = append(t.buckets[idx], tableEntry{key: key, code: code})
	t.size++
	if float64(t.size) > float64(t.capacity)*tableLoadFactor {
		t.resize()
	}
	return code, true
}

// Lookup returns the code for v.
func (t *floatTable) Lookup(v float64) (int, bool) {
	key := tableKey(v)
	for _, entry := range t.buckets[t.bucket(key)] {
		if entry.key == key {
			return entry.code, true
		}
	}
	return 0, false
}

// Len returns the number of distinct keys.
func (t *floatTable) Len() int {
	return t.size
}

func (t *floatTable) resize() {
	t.capacity *= tableGrowthFactor
	buckets := make([][]tableEntry, t.capacity)
	for _, bucket := range t.buckets {
		for _, entry := range bucket {
			//nolint:gosec // capacity is always a positive power of two
			idx := int(hashKey(entry.key) & uint64(t.capacity-1))
			buckets[idx] = append(buckets[idx], entry)
		}
	}
	t.buckets = buckets
}

// nextPowerOfTwo returns the next power of two >= n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
