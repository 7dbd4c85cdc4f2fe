package header

import (
	"github.com/splatforge/gsplat"
)

// Field locates one recognized property within a record.
type Field struct {
	Offset int
	Format gsplat.PropertyFormat
}

// Schema maps each recognized property to its location within a record and
// carries the total record stride. It is built incrementally while the
// header is parsed and is immutable afterwards, so it may be shared
// read-only across concurrent record decoders.
type Schema struct {
	fields map[gsplat.Property]Field
	stride int
}

// NewSchema returns an empty schema with zero stride.
func NewSchema() *Schema {
	return &Schema{fields: make(map[gsplat.Property]Field)}
}

// Add registers a property at the current stride offset and advances the
// stride by the format's width. Ignored properties advance the stride but
// get no field entry. It reports false for a duplicate recognized
// property.
func (s *Schema) Add(p gsplat.Property, f gsplat.PropertyFormat) bool {
	if p != gsplat.Ignore {
		if _, exists := s.fields[p]; exists {
			return false
		}
		s.fields[p] = Field{Offset: s.stride, Format: f}
	}
	s.stride += f.Size()
	return true
}

// Lookup returns the field for a recognized property.
func (s *Schema) Lookup(p gsplat.Property) (Field, bool) {
	f, ok := s.fields[p]
	return f, ok
}

// Stride returns the total byte width of one record, the sum of every
// declared property's width in declaration order, ignored ones included.
func (s *Schema) Stride() int {
	return s.stride
}

// Fields returns the property layout map. Callers must not mutate it.
func (s *Schema) Fields() map[gsplat.Property]Field {
	return s.fields
}
