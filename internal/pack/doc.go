// Package pack implements greedy circle packing.
//
// Circles are placed one at a time, largest first. Each new circle is put
// at the valid tangent position closest to the center of the area. When no
// tangent position fits, concentric rings around the center are scanned,
// and as a last resort the circle is pushed outside every placed circle
// along the positive x-axis. The result is a heuristic, not an optimal
// packing; it is meant for tens of items.
package pack
