// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkrank/core"
)

// addPages inserts pages idFn(from..to-1) and returns their IDs.
func addPages(c *core.Corpus, method string, idFn IDFn, from, to int) ([]string, error) {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		id, err := pageID(idFn, i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		if err := c.AddPage(id); err != nil {
			return nil, fmt.Errorf("%s: AddPage(%s): %w: %w", method, id, ErrConstructFailed, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// pageID calls idFn, turning a panic on an index the scheme cannot name
// into ErrIDOutOfRange.
func pageID(idFn IDFn, idx int) (id string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("index %d: %v: %w", idx, r, ErrIDOutOfRange)
		}
	}()

	return idFn(idx), nil
}

// link records u→v with method context.
func link(c *core.Corpus, method, u, v string) error {
	if err := c.AddLink(u, v); err != nil {
		return fmt.Errorf("%s: AddLink(%s→%s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}

// validateMin reports ErrTooFewVertices when got < min.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}
