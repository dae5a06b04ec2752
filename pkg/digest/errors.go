// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import (
	"errors"
	"fmt"
)

// ErrInvalidOutputSize is returned by variable-output constructors when the
// requested length is zero or not supported by the algorithm.
var ErrInvalidOutputSize = errors.New("invalid output size")

// ValidateOutputSize checks a requested output size against the maximum an
// algorithm supports. A size of zero is always invalid.
func ValidateOutputSize(size, maxSize int) error {
	if size <= 0 || size > maxSize {
		return fmt.Errorf("%w: %d (supported: 1 to %d)",
			ErrInvalidOutputSize, size, maxSize)
	}
	return nil
}
