package gsplat

// Metadata describes the property set discovered in an asset and the total
// record count. It is produced once by Parser.ParseMetadata and read-only
// afterwards; callers use it to size output buffers and to check importer
// compatibility before a full-body pass.
type Metadata struct {
	Properties map[Property]PropertyFormat
	NumSplats  int
}

// GetPropertyFn returns the raw value of a property for the record the
// function is bound to. It borrows the parser's buffer and layout; it must
// not be retained past the callback it was handed to.
type GetPropertyFn func(Property) Value

// ParseSplatFn is invoked once per record by Parser.ParseData, with the
// record index and a GetPropertyFn bound to that record. The callback
// should request only properties present in the metadata, convert them
// however it prefers, and store the result.
type ParseSplatFn func(index int, get GetPropertyFn)

// Parser is the interface to 3DGS asset parsers. PLY is the only format
// implemented today; the interface keeps the importer extensible to
// future container formats.
//
// ParseMetadata must be called first and must succeed before ParseData.
type Parser interface {
	// ParseMetadata reads only the asset metadata from the given buffer.
	// The parser keeps a borrowed view into buf; the caller must keep it
	// alive and unmodified until parsing is finished.
	ParseMetadata(buf []byte) (*Metadata, error)

	// ParseData walks every record in increasing index order, calling fn
	// once per record.
	ParseData(fn ParseSplatFn) error
}
