package flagkit

import (
	"fmt"
	"hash/fnv"
)

// Main bucketing hash. Both versions must be bit-identical across
// SDK implementations; the FNV-1a 32 constants are normative.
// Returns nil on an unknown version.
func hash(seed string, value string, version int) *float64 {
	switch version {
	case 2:
		n := float64(hashFnv32a(fmt.Sprint(hashFnv32a(seed+value)))%10000) / 10000
		return &n
	case 0, 1:
		n := float64(hashFnv32a(value+seed)%1000) / 1000
		return &n
	default:
		return nil
	}
}

// Simple wrapper around the standard library FNV32a hash function.
func hashFnv32a(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

func if0(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
