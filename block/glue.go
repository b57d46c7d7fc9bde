// SPDX-License-Identifier: MIT

package block

import (
	"fmt"

	"github.com/katalvlaran/cratefit/shape"
)

// Glue is where a block sits in container space: the grid position of its
// minimum corner and its orientation in degrees.
//
// Pitch turns about the width axis and is applied after Yaw, which turns
// about the height axis (shape.RotationMatrix(Pitch, Yaw)).
type Glue struct {
	Position shape.Point
	Yaw      float64
	Pitch    float64
}

// At returns an unrotated glue at position (d, w, h).
func At(d, w, h int) Glue {
	return Glue{Position: shape.Point{d, w, h}}
}

// SameOrientation reports whether g and o share yaw and pitch.
func (g Glue) SameOrientation(o Glue) bool {
	return g.Yaw == o.Yaw && g.Pitch == o.Pitch
}

// String renders "(d,w,h)" or "(d,w,h) yaw=Y pitch=P" when rotated.
func (g Glue) String() string {
	if g.Yaw == 0 && g.Pitch == 0 {
		return g.Position.String()
	}

	return fmt.Sprintf("%s yaw=%g pitch=%g", g.Position, g.Yaw, g.Pitch)
}
