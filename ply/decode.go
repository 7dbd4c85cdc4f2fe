package ply

import (
	"encoding/binary"
	"math"

	"go.uber.org/zap"

	"github.com/splatforge/gsplat"
	"github.com/splatforge/gsplat/errors"
)

// decoder reads property values out of one record's bytes, handling the
// byte order declared in the header. It holds only the shared read-only
// schema, so one decoder serves any number of concurrent record shards.
type decoder struct {
	log    *zap.Logger
	schema *Schema
	order  binary.ByteOrder
}

func (p *Parser) decoder() (*decoder, error) {
	if p.schema == nil {
		return nil, errors.NotParsed()
	}

	var order binary.ByteOrder
	switch p.format {
	case FormatBinaryBigEndian:
		order = binary.BigEndian
	case FormatBinaryLittleEndian:
		order = binary.LittleEndian
	case FormatASCII:
		err := errors.Unsupported(errors.PhaseDecode, "ascii record encoding not supported")
		p.log.Error("ascii record encoding not supported")
		return nil, err
	default:
		err := errors.Unsupported(errors.PhaseDecode, "invalid record encoding")
		p.log.Error("invalid record encoding")
		return nil, err
	}

	return &decoder{log: p.log, schema: p.schema, order: order}, nil
}

// decode extracts prop from the record starting at base. Requesting a
// property absent from the schema is a caller bug (only properties listed
// in the metadata may be requested); it logs an error and yields a zero
// value. A schema format the decoder does not implement degrades softly:
// a warning and a zero value rather than aborting the record loop.
func (d *decoder) decode(base []byte, prop gsplat.Property) gsplat.Value {
	field, ok := d.schema.Lookup(prop)
	if !ok {
		d.log.Error("property not present in layout",
			zap.Stringer("property", prop))
		return gsplat.Value{}
	}

	switch field.Format {
	case gsplat.FormatF32:
		bits := d.order.Uint32(base[field.Offset:])
		return gsplat.F32Value(math.Float32frombits(bits))
	default:
		d.log.Warn("unexpected property format, unable to convert",
			zap.Stringer("property", prop),
			zap.Stringer("format", field.Format))
		return gsplat.Value{}
	}
}
