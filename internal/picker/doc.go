// Package picker keeps every representation of the current color in sync.
//
// A Controller owns the single authoritative color and theme. Every input,
// whatever control it came from, is normalized and funneled into ApplyColor,
// which derives a fresh Projection from the clamped triple and writes it to
// all registered surfaces before persisting the triple. Surfaces are
// write-only projections; none of them is ever read back as a source of
// truth, with the single exception of the picker value used to skip
// redundant writes.
//
// Input controls are wired through a dispatch table (see Dispatch and
// Commit) that maps each Source to its normalization rule.
//
// Invalid input (an incomplete hex string, an empty decimal field) is a
// no-op: the current color is left unchanged and no surface is written.
// Storage failures are logged and otherwise ignored.
package picker
