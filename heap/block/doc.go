// Package block is the boundary-tag codec for heapkit regions.
//
// A block on the region looks like:
//
//	+--------+---------------------------+--------+
//	| header |          payload          | footer |
//	| 4 bytes|                           | 4 bytes|
//	+--------+---------------------------+--------+
//	         ^
//	         +-- Ptr (payload offset handed to callers)
//
// Header and footer hold the same word: the block size (a multiple of 8,
// tags included) with bit 0 set when the block is allocated.
//
// All offset arithmetic over raw region bytes lives in this package. Higher
// layers speak in Ptr and Tag values only.
//
// Functions here do not bounds-check beyond what slicing does: reading a tag
// outside the region panics. Use Iterator for untrusted bytes; it validates
// every step.
package block
