// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a page ID from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// MaxSymbolPages is the number of IDs SymbolIDFn can produce.
const MaxSymbolPages = 26

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range; constructors report that as ErrIDOutOfRange.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= MaxSymbolPages {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA", 701→"ZZ". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf [16]byte
	pos := len(buf)
	for i := idx; i >= 0; i = i/26 - 1 {
		pos--
		buf[pos] = byte('A' + i%26)
	}

	return string(buf[pos:])
}
