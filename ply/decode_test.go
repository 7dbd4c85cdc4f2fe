package ply

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/splatforge/gsplat"
	"github.com/splatforge/gsplat/ply/internal/header"
)

func testParser(log *zap.Logger, format Format, schema *Schema, body []byte) *Parser {
	return &Parser{
		log:    log,
		schema: schema,
		body:   body,
		count:  1,
		format: format,
	}
}

func TestDecodeUnimplementedFormatDegradesSoftly(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	schema := header.NewSchema()
	if !schema.Add(gsplat.X, gsplat.FormatF64) {
		t.Fatal("schema add failed")
	}
	p := testParser(zap.New(core), FormatBinaryLittleEndian, schema, make([]byte, 8))

	dec, err := p.decoder()
	if err != nil {
		t.Fatalf("decoder failed: %v", err)
	}

	v := dec.decode(p.body, gsplat.X)
	if !v.IsZero() {
		t.Errorf("decode of unimplemented format = %v, want zero value", v)
	}

	warns := logs.FilterLevelExact(zap.WarnLevel).All()
	if len(warns) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warns))
	}
}

func TestDecodeUnknownPropertyLogsError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	schema := header.NewSchema()
	if !schema.Add(gsplat.X, gsplat.FormatF32) {
		t.Fatal("schema add failed")
	}
	p := testParser(zap.New(core), FormatBinaryLittleEndian, schema, make([]byte, 4))

	dec, err := p.decoder()
	if err != nil {
		t.Fatalf("decoder failed: %v", err)
	}

	v := dec.decode(p.body, gsplat.Opacity)
	if !v.IsZero() {
		t.Errorf("decode of absent property = %v, want zero value", v)
	}
	if len(logs.All()) != 1 {
		t.Fatalf("got %d error logs, want 1", len(logs.All()))
	}
}

func TestDecoderInvalidFormat(t *testing.T) {
	schema := header.NewSchema()
	p := testParser(zap.NewNop(), FormatInvalid, schema, nil)
	if _, err := p.decoder(); err == nil {
		t.Fatal("expected error for invalid format")
	}
}
