// SPDX-License-Identifier: MIT

package container

import "fmt"

// Reason says why the oracle accepted or rejected a placement.
type Reason uint8

const (
	// Valid: no rule fired.
	Valid Reason = iota
	// OutOfBounds: the candidate box leaves the container.
	OutOfBounds
	// Unplaceable: the candidate refused the target glue, or is nil.
	Unplaceable
	// Crossing: a candidate face slices a committed block's edge.
	Crossing
	// Inside: the candidate box lies within a committed box.
	Inside
	// Encloses: a committed box lies within the candidate box.
	Encloses
)

var reasonNames = [...]string{
	Valid:       "valid",
	OutOfBounds: "out of bounds",
	Unplaceable: "unplaceable",
	Crossing:    "crossing",
	Inside:      "inside",
	Encloses:    "encloses",
}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}

	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// Verdict is the oracle's answer. Index is the committed block that triggered
// a Crossing, Inside or Encloses rejection, and -1 otherwise.
type Verdict struct {
	Reason Reason
	Index  int
}

// OK reports whether the placement is valid.
func (v Verdict) OK() bool { return v.Reason == Valid }

// String renders e.g. "inside #0" or "valid".
func (v Verdict) String() string {
	if v.Index < 0 {
		return v.Reason.String()
	}

	return fmt.Sprintf("%s #%d", v.Reason, v.Index)
}

func verdict(r Reason) Verdict { return Verdict{Reason: r, Index: -1} }
