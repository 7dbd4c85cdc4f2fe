package ply

import (
	"github.com/splatforge/gsplat/ply/internal/header"
)

// Format is the encoding of the record section.
type Format = header.Format

const (
	FormatInvalid            = header.FormatInvalid
	FormatASCII              = header.FormatASCII
	FormatBinaryBigEndian    = header.FormatBinaryBigEndian
	FormatBinaryLittleEndian = header.FormatBinaryLittleEndian
)

// Schema is the per-record property layout discovered in the header.
type Schema = header.Schema

// Field locates one recognized property within a record.
type Field = header.Field
