// Package panels provides custom layout panels for Go hosts.
//
// A panel receives pre-measured child boxes and decides where they go:
// along an arc, on concentric orbits, packed as bubbles around the center,
// in masonry columns, on a hex grid and so on. Users import this single
// package for the complete public API: the panel configs, the Layout entry
// point and the geometry types.
//
// Panels are plain config structs. Per-child settings such as a circular
// angle or a tile span live in side-tables on the config keyed by child
// index. Call Layout again whenever the config or the children change; no
// state is kept between passes.
package panels
