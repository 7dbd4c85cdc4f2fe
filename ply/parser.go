package ply

import (
	"sync"

	"go.uber.org/zap"

	"github.com/splatforge/gsplat"
	"github.com/splatforge/gsplat/errors"
	"github.com/splatforge/gsplat/ply/internal/header"
)

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger the parser emits warnings and errors
// through. The default is a no-op logger; messages are dropped silently
// when no sink is supplied.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// Parser parses PLY 3DGS assets. It implements gsplat.Parser.
//
// A Parser is good for one asset: ParseMetadata binds it to a buffer,
// ParseData walks that buffer's records. It is not safe for concurrent
// use; ParseDataParallel manages its own worker goroutines internally.
type Parser struct {
	log    *zap.Logger
	schema *Schema
	body   []byte
	count  int
	format Format
}

var _ gsplat.Parser = (*Parser)(nil)

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseMetadata reads the asset metadata from buf. On success the parser
// retains a view into buf positioned at the record section, and the
// returned metadata lists every recognized property with its wire format
// plus the total record count.
//
// The body length is validated against count*stride before any record can
// be read; any mismatch is fatal.
func (p *Parser) ParseMetadata(buf []byte) (*gsplat.Metadata, error) {
	res, err := header.Parse(buf, p.log)
	if err != nil {
		p.log.Error("unable to parse PLY header", zap.Error(err))
		return nil, err
	}

	expected := res.Count * res.Schema.Stride()
	if len(res.Body) != expected {
		err := errors.SizeMismatch(expected, len(res.Body))
		p.log.Error("record section size mismatch",
			zap.Int("expected_bytes", expected),
			zap.Int("actual_bytes", len(res.Body)))
		return nil, err
	}

	p.format = res.Format
	p.schema = res.Schema
	p.count = res.Count
	p.body = res.Body

	md := &gsplat.Metadata{
		Properties: make(map[gsplat.Property]gsplat.PropertyFormat, len(res.Schema.Fields())),
		NumSplats:  res.Count,
	}
	for prop, field := range res.Schema.Fields() {
		md.Properties[prop] = field.Format
	}
	return md, nil
}

// ParseData calls fn once per record in increasing index order, 0 through
// NumSplats-1, with a GetPropertyFn bound to that record.
func (p *Parser) ParseData(fn gsplat.ParseSplatFn) error {
	dec, err := p.decoder()
	if err != nil {
		return err
	}
	stride := p.schema.Stride()
	for i := 0; i < p.count; i++ {
		base := p.body[i*stride:]
		fn(i, func(prop gsplat.Property) gsplat.Value {
			return dec.decode(base, prop)
		})
	}
	return nil
}

// ParseDataParallel is ParseData with the record range sharded across up
// to workers goroutines. Records are independent and the schema and body
// are read-only, so no locking is needed; fn must only write to state
// owned by the index it was called with. Within a shard indexes are
// visited in increasing order, but shards run concurrently.
func (p *Parser) ParseDataParallel(workers int, fn gsplat.ParseSplatFn) error {
	dec, err := p.decoder()
	if err != nil {
		return err
	}
	if workers > p.count {
		workers = p.count
	}
	if workers <= 1 {
		return p.ParseData(fn)
	}

	stride := p.schema.Stride()
	chunk := (p.count + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < p.count; lo += chunk {
		hi := lo + chunk
		if hi > p.count {
			hi = p.count
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				base := p.body[i*stride:]
				fn(i, func(prop gsplat.Property) gsplat.Value {
					return dec.decode(base, prop)
				})
			}
		}(lo, hi)
	}
	wg.Wait()
	return nil
}
