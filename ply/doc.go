// Package ply parses 3D Gaussian Splatting assets in the PLY container
// format (https://gamma.cs.unc.edu/POWERPLANT/papers/ply.pdf).
//
// Parsing is two-phase. ParseMetadata consumes the text header, builds the
// property schema (byte offset and wire format per recognized property,
// plus the record stride) and checks that the remaining buffer holds
// exactly count*stride bytes. ParseData then streams the fixed-stride
// binary records, handing each callback a GetPropertyFn bound to that
// record.
//
//	p := ply.New(ply.WithLogger(logger))
//	md, err := p.ParseMetadata(buf)
//	if err != nil {
//	    return err
//	}
//	err = p.ParseData(func(i int, get gsplat.GetPropertyFn) {
//	    x := get(gsplat.X).Float32()
//	    ...
//	})
//
// Both binary encodings (little and big endian) are supported. The ASCII
// record encoding is recognized in the header but not implemented: header
// parsing succeeds, ParseData fails with an unsupported-encoding error.
//
// The parser holds only a borrowed view of the caller's buffer and never
// copies or mutates it.
package ply
