// SPDX-License-Identifier: MIT

// Package block provides the default placeable block: a wireframe shape with
// an identity, a label and a glue (grid position plus orientation).
//
// A Block keeps its pristine shape normalized so the minimum corner sits at
// the origin. Changing the orientation rotates the pristine shape afresh,
// so repeated re-orientation never accumulates grid drift, and renormalizes
// it. Faces are the six faces of the bounding box at the glue position;
// edges are the wireframe edges translated to the glue position.
package block
