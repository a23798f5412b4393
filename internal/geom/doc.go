// Package geom holds the float geometry shared by every panel: sizes,
// points, rectangles and edge thicknesses.
//
// Coordinates follow screen conventions: X grows to the right and Y grows
// downward. Types are re-exported through the root panels package.
package geom
