// Package scan provides line and token splitting over the text portion of
// a PLY buffer.
//
// Both primitives are pure and allocation-free: they return sub-slices of
// their input and never copy bytes. The header parser drives them in a
// pop-style loop, carrying the remaining view forward.
//
// This package is internal to the ply parser.
package scan
