// Package header implements the PLY header state machine.
//
// The header is line-oriented text in front of the binary record section:
//
//	ply
//	format <ascii|binary_big_endian|binary_little_endian> <version>
//	[comment ...]*
//	element vertex <count>
//	(property <type> <name>)*
//	end_header
//
// Parse walks the lines with the scan package, dispatching each directive
// to its own handler, and produces the record encoding, the property
// schema with byte offsets and total stride, the vertex count, and a view
// of the buffer positioned at the first record byte. The first error wins;
// there is no recovery.
//
// This package is internal to the ply parser.
package header
