// SPDX-License-Identifier: MIT

package container

import "errors"

var (
	// ErrBlockIndex indicates a placed-block index outside [0, Len()).
	ErrBlockIndex = errors.New("container: block index out of range")

	// ErrNilBlock indicates a nil block passed to Commit.
	ErrNilBlock = errors.New("container: nil block")
)
