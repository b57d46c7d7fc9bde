// SPDX-License-Identifier: MIT

package block

import "errors"

var (
	// ErrNilShape indicates a block built without a shape.
	ErrNilShape = errors.New("block: nil shape")
)
