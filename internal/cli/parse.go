// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cratefit/block"
	"github.com/katalvlaran/cratefit/shape"
)

// parseTriple reads "a<sep>b<sep>c" into a point.
func parseTriple(s, sep string) (shape.Point, error) {
	var p shape.Point
	parts := strings.Split(s, sep)
	if len(parts) != shape.Dims {
		return p, fmt.Errorf("%q: want three values separated by %q", s, sep)
	}
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return p, fmt.Errorf("%q: %w", s, err)
		}
		p[i] = v
	}

	return p, nil
}

// parseExtents reads "DxWxH".
func parseExtents(s string) (shape.Point, error) {
	return parseTriple(strings.ToLower(s), "x")
}

// placement is one --block argument of the place command.
type placement struct {
	extents shape.Point
	glue    block.Glue
}

// parsePlacement reads "DxWxH@d,w,h" with an optional "/yaw,pitch" suffix.
func parsePlacement(s string) (placement, error) {
	var p placement
	size, at, ok := strings.Cut(s, "@")
	if !ok {
		return p, fmt.Errorf("%q: want DxWxH@d,w,h", s)
	}
	var err error
	if p.extents, err = parseExtents(size); err != nil {
		return p, err
	}
	pos, orient, rotated := strings.Cut(at, "/")
	if p.glue.Position, err = parseTriple(pos, ","); err != nil {
		return p, err
	}
	if !rotated {
		return p, nil
	}
	yaw, pitch, ok := strings.Cut(orient, ",")
	if !ok {
		return p, fmt.Errorf("%q: want /yaw,pitch", s)
	}
	if p.glue.Yaw, err = strconv.ParseFloat(strings.TrimSpace(yaw), 64); err != nil {
		return p, fmt.Errorf("%q: %w", s, err)
	}
	if p.glue.Pitch, err = strconv.ParseFloat(strings.TrimSpace(pitch), 64); err != nil {
		return p, fmt.Errorf("%q: %w", s, err)
	}

	return p, nil
}
