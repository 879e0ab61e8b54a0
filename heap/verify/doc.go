// Package verify checks the structure of a heap region from its raw bytes.
// It trusts nothing: every tag is bounds checked before it is read, so the
// functions are safe on files read from disk and on half-written regions.
//
// The allocator's tests run AllInvariants after every operation; heapctl
// check runs it over a mapped heap file.
package verify
