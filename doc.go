// Package gsplat provides parsing and conversion of 3D Gaussian Splatting
// (3DGS) point-cloud assets.
//
// The library turns an opaque byte buffer holding a splat asset into typed
// per-point quantities (position, rotation, scale, color) through a
// two-phase contract: parse the metadata first, then stream the records.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	gsplat/          Root package with core Property, Value and Parser types
//	├── ply/         PLY header state machine and binary record decoding
//	├── convert/     Per-record numeric pipeline and metadata validation
//	├── errors/      Structured error types for debugging
//	└── cmd/         splatinfo CLI for inspecting and converting assets
//
// # Quick Start
//
// Parse an asset held in memory:
//
//	p := ply.New()
//	md, err := p.ParseMetadata(buf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !convert.ValidateMetadata(md) {
//	    log.Fatal("asset missing required properties")
//	}
//
//	positions := make([]convert.Vec3, md.NumSplats)
//	rotations := make([]convert.Quat, md.NumSplats)
//	scales := make([]convert.Vec3, md.NumSplats)
//	colors := make([]convert.RGBA, md.NumSplats)
//
//	err = p.ParseData(func(i int, get gsplat.GetPropertyFn) {
//	    convert.Splat(i, get, positions, rotations, scales, colors)
//	})
//
// # Two-Phase Contract
//
// ParseMetadata must succeed before ParseData is invoked. The split lets
// the caller size output buffers and decide, via convert.ValidateMetadata,
// whether this importer can handle the discovered property set before
// committing to a full-body pass.
//
// # Memory Model
//
// The parser borrows the caller's buffer and never copies or mutates it.
// Output slices are caller-allocated and sized to Metadata.NumSplats; the
// converter only writes into them.
//
// # Thread Safety
//
// A Parser is single-goroutine between ParseMetadata and ParseData. Once
// metadata is parsed, record conversion is independent per record;
// ply.Parser.ParseDataParallel shards disjoint index ranges across
// goroutines with no locking.
package gsplat
