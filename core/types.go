// Package core defines the shared types, the canonical field registry,
// and the metadata manager for Tag Writer.
package core

// Field is a canonical metadata field name, independent of the tag
// namespace it is stored under in any particular file.
type Field string

const (
	FieldHeadline        Field = "Headline"
	FieldCaption         Field = "Caption-Abstract"
	FieldCredit          Field = "Credit"
	FieldObjectName      Field = "ObjectName"
	FieldWriterEditor    Field = "Writer-Editor"
	FieldByline          Field = "By-line"
	FieldBylineTitle     Field = "By-lineTitle"
	FieldSource          Field = "Source"
	FieldDateCreated     Field = "DateCreated"
	FieldDateModified    Field = "DateModified"
	FieldCopyrightNotice Field = "CopyrightNotice"
	FieldContact         Field = "Contact"
)

// Record maps canonical field names to string values for one file.
// An absent field means "unknown", never an error.
type Record map[Field]string

// RawMetadata is the namespace-qualified key/value mapping exactly as the
// engine returned it for one file. It is consumed by the resolver and
// not retained.
type RawMetadata map[string]any

// WriteArg is one tag assignment ready to be passed to the engine.
type WriteArg struct {
	Tag   string // namespace-qualified tag name, e.g. "IPTC:Headline"
	Value string // sanitized value
}
