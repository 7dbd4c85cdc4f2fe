package header

import (
	"bytes"
	"strconv"

	"go.uber.org/zap"

	"github.com/splatforge/gsplat"
	"github.com/splatforge/gsplat/errors"
	"github.com/splatforge/gsplat/ply/internal/scan"
)

// Format is the encoding of the record section.
type Format uint8

const (
	FormatInvalid Format = iota
	FormatASCII
	FormatBinaryBigEndian
	FormatBinaryLittleEndian
)

var formatStrings = [...]string{
	FormatInvalid:            "invalid",
	FormatASCII:              "ascii",
	FormatBinaryBigEndian:    "binary_big_endian",
	FormatBinaryLittleEndian: "binary_little_endian",
}

func (f Format) String() string {
	if int(f) < len(formatStrings) {
		return formatStrings[f]
	}
	return "invalid"
}

var formatNames = map[string]Format{
	"ascii":                FormatASCII,
	"binary_big_endian":    FormatBinaryBigEndian,
	"binary_little_endian": FormatBinaryLittleEndian,
}

var typeNames = map[string]gsplat.PropertyFormat{
	"float":   gsplat.FormatF32,
	"float32": gsplat.FormatF32,
}

var propertyNames = map[string]gsplat.Property{
	"x":       gsplat.X,
	"y":       gsplat.Y,
	"z":       gsplat.Z,
	"f_dc_0":  gsplat.DCRed,
	"f_dc_1":  gsplat.DCGreen,
	"f_dc_2":  gsplat.DCBlue,
	"opacity": gsplat.Opacity,
	"rot_0":   gsplat.RotationW,
	"rot_1":   gsplat.RotationX,
	"rot_2":   gsplat.RotationY,
	"rot_3":   gsplat.RotationZ,
	"scale_0": gsplat.ScaleX,
	"scale_1": gsplat.ScaleY,
	"scale_2": gsplat.ScaleZ,
}

// directive is the closed set of body-section header keywords. Dispatching
// over it keeps the handler set exhaustiveness-checkable instead of a
// chain of string comparisons.
type directive uint8

const (
	dirUnknown directive = iota
	dirComment
	dirElement
	dirProperty
	dirEndHeader
)

var directives = map[string]directive{
	"comment":    dirComment,
	"element":    dirElement,
	"property":   dirProperty,
	"end_header": dirEndHeader,
}

// Result is the output of a successful header parse.
type Result struct {
	Schema *Schema
	Body   []byte
	Count  int
	Format Format
}

type parser struct {
	log    *zap.Logger
	schema *Schema
	text   []byte
	count  int
	format Format
}

// Parse consumes the header portion of buf and returns the discovered
// layout plus a view of buf positioned at the first record byte. The
// logger receives non-fatal warnings (e.g. an unexpected format version);
// fatal conditions are returned as errors.
func Parse(buf []byte, log *zap.Logger) (*Result, error) {
	p := &parser{
		log:    log,
		schema: NewSchema(),
		text:   buf,
	}

	if err := p.parseMagic(); err != nil {
		return nil, err
	}
	if err := p.parseFormat(); err != nil {
		return nil, err
	}
	return p.parseBody()
}

func (p *parser) popLine() ([]byte, bool) {
	line, rest, ok := scan.Line(p.text)
	p.text = rest
	return line, ok
}

// `ply`.
func (p *parser) parseMagic() error {
	line, ok := p.popLine()
	if !ok {
		return errors.InvalidLine("unable to parse magic line")
	}
	if !bytes.Equal(line, []byte("ply")) {
		return errors.BadMagic(string(line))
	}
	return nil
}

// `format <encoding> <version>`.
func (p *parser) parseFormat() error {
	line, ok := p.popLine()
	if !ok {
		return errors.InvalidLine("unable to parse format line")
	}

	tok, line, ok := scan.Token(line)
	if !ok || !bytes.Equal(tok, []byte("format")) {
		return errors.BadFormat(string(tok), "expected format directive")
	}

	name, line, ok := scan.Token(line)
	if !ok {
		return errors.BadFormat("", "missing record encoding name")
	}
	format, known := formatNames[string(name)]
	if !known {
		return errors.BadFormat(string(name), "unrecognized record encoding")
	}
	p.format = format

	version, _, ok := scan.Token(line)
	if !ok {
		return errors.BadFormat(string(name), "missing format version")
	}
	if !bytes.Equal(version, []byte("1.0")) {
		p.log.Warn("unexpected format version, continuing anyway",
			zap.String("version", string(version)),
			zap.Stringer("format", format))
	}
	return nil
}

// Loop over directives until end_header.
func (p *parser) parseBody() (*Result, error) {
	for {
		line, ok := p.popLine()
		if !ok {
			return nil, errors.InvalidLine("unable to parse header line")
		}
		tok, line, ok := scan.Token(line)
		if !ok {
			return nil, errors.InvalidLine("invalid header line")
		}

		switch directives[string(tok)] {
		case dirComment:
			continue
		case dirElement:
			if err := p.handleElement(line); err != nil {
				return nil, err
			}
		case dirProperty:
			if err := p.handleProperty(line); err != nil {
				return nil, err
			}
		case dirEndHeader:
			return &Result{
				Schema: p.schema,
				Body:   p.text,
				Count:  p.count,
				Format: p.format,
			}, nil
		case dirUnknown:
			return nil, errors.UnknownDirective(string(tok))
		}
	}
}

// `element vertex <count>`.
func (p *parser) handleElement(line []byte) error {
	if p.count != 0 {
		return errors.DuplicateElement()
	}

	tok, line, ok := scan.Token(line)
	if !ok {
		return errors.InvalidLine("invalid element line")
	}
	if !bytes.Equal(tok, []byte("vertex")) {
		return errors.New(errors.PhaseHeader, errors.KindUnknownDirective).
			Token(string(tok)).
			Detail("unexpected element type").
			Build()
	}

	tok, _, ok = scan.Token(line)
	if !ok {
		return errors.InvalidCount("", nil)
	}
	count, err := strconv.Atoi(string(tok))
	if err != nil {
		return errors.InvalidCount(string(tok), err)
	}
	if count <= 0 {
		return errors.InvalidCount(string(tok), nil)
	}
	p.count = count
	return nil
}

// `property <type> <name>`.
func (p *parser) handleProperty(line []byte) error {
	if p.count == 0 {
		return errors.MissingElement(string(line))
	}

	tok, line, ok := scan.Token(line)
	if !ok {
		return errors.InvalidLine("unable to parse property type")
	}
	format, known := typeNames[string(tok)]
	if !known {
		return errors.UnknownType(string(tok))
	}

	tok, _, ok = scan.Token(line)
	if !ok {
		return errors.InvalidLine("unable to parse property name")
	}
	prop, recognized := propertyNames[string(tok)]
	if !recognized {
		// Unknown names still consume their width in the stride.
		prop = gsplat.Ignore
	}
	if !p.schema.Add(prop, format) {
		return errors.DuplicateProperty(string(tok))
	}
	return nil
}
