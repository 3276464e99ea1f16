// File: ids.go
// Role: vertex ID ordering shared by enumeration and JSON encoding.
//
// Determinism:
//   - IDs that parse as non-negative base-10 integers sort numerically and
//     come before every other ID; the rest sort lexicographically.
//   - "007" and "7" are distinct IDs; ties on numeric value fall back to
//     lexicographic order so the ordering stays total.

package core

import (
	"sort"
	"strconv"
)

// NodeID renders a zero-based index as a vertex ID ("0","1",...).
func NodeID(i int) string {
	return strconv.Itoa(i)
}

// ParseNodeID returns the integer index of a decimal vertex ID.
// ok is false for IDs that are not non-negative base-10 integers.
func ParseNodeID(id string) (idx int, ok bool) {
	if id == "" {
		return 0, false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, false
	}

	return n, true
}

// CompareIDs orders two vertex IDs; it returns -1, 0 or +1.
func CompareIDs(a, b string) int {
	ai, aNum := ParseNodeID(a)
	bi, bNum := ParseNodeID(b)
	switch {
	case aNum && bNum:
		if ai != bi {
			if ai < bi {
				return -1
			}
			return 1
		}
	case aNum:
		return -1
	case bNum:
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// SortIDs sorts ids in place by CompareIDs.
func SortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return CompareIDs(ids[i], ids[j]) < 0 })
}
