package core

import (
	"fmt"
	"sort"
)

// fieldMapping holds, for one canonical field, the ordered list of
// namespace-qualified tags probed on read. The first entry is always the
// primary tag used on write.
type fieldMapping struct {
	field      Field
	candidates []string
}

// fieldMappings is the static registry, in display order. Candidate order
// is priority order: the first tag present in a file wins.
var fieldMappings = []fieldMapping{
	{FieldHeadline, []string{"IPTC:Headline", "XMP-photoshop:Headline", "XMP:Headline", "XMP:Title"}},
	{FieldCaption, []string{"IPTC:Caption-Abstract", "XMP:Description", "EXIF:ImageDescription"}},
	{FieldCredit, []string{"IPTC:Credit", "XMP:Credit", "XMP-photoshop:Credit"}},
	{FieldObjectName, []string{"IPTC:ObjectName", "IPTC:Object Name", "XMP:Title"}},
	{FieldWriterEditor, []string{"IPTC:Writer-Editor", "XMP:CaptionWriter", "XMP-photoshop:CaptionWriter"}},
	{FieldByline, []string{"IPTC:By-line", "XMP:Creator", "EXIF:Artist"}},
	{FieldBylineTitle, []string{"IPTC:By-lineTitle", "XMP:AuthorsPosition", "XMP-photoshop:AuthorsPosition"}},
	{FieldSource, []string{"IPTC:Source", "XMP:Source", "XMP-photoshop:Source"}},
	{FieldDateCreated, []string{"IPTC:DateCreated", "XMP:DateCreated", "XMP-photoshop:DateCreated"}},
	// DateModified is special: files routinely carry several inconsistent
	// modification timestamps. The order below is a fixed priority and the
	// first populated tag wins; conflicting values are not reconciled.
	{FieldDateModified, []string{"EXIF:ModifyDate", "EXIF:FileModifyDate", "XMP:ModifyDate", "ICC_Profile:ProfileDateTime"}},
	{FieldCopyrightNotice, []string{"IPTC:CopyrightNotice", "XMP:Rights", "EXIF:Copyright"}},
	{FieldContact, []string{"IPTC:Contact", "XMP:Contact"}},
}

// FieldNames returns every canonical field in registry order.
func FieldNames() []Field {
	names := make([]Field, 0, len(fieldMappings))
	for _, m := range fieldMappings {
		names = append(names, m.field)
	}
	return names
}

// KnownField reports whether name is one of the canonical fields.
func KnownField(name Field) bool {
	for _, m := range fieldMappings {
		if m.field == name {
			return true
		}
	}
	return false
}

// PrimaryTag returns the tag written for a canonical field. Unknown
// fields map to themselves, so callers can pass custom tags straight
// through to the engine.
func PrimaryTag(name Field) string {
	for _, m := range fieldMappings {
		if m.field == name {
			return m.candidates[0]
		}
	}
	return string(name)
}

// NormalizeRead resolves a raw engine mapping into canonical fields.
// For each field the first populated candidate tag wins; fields with no
// populated candidate are omitted, never defaulted to "".
func NormalizeRead(raw RawMetadata) Record {
	rec := make(Record)
	for _, m := range fieldMappings {
		for _, tag := range m.candidates {
			v, ok := raw[tag]
			if !ok {
				continue
			}
			s := stringify(v)
			if s == "" {
				continue
			}
			rec[m.field] = s
			break
		}
	}
	return rec
}

// NormalizeWrite converts a record into engine write arguments: one
// assignment per non-empty field, using the field's primary tag.
// Canonical fields come first in registry order, then any custom fields
// in lexical order of their names, so the argument list is deterministic.
// Values are sanitized; a value that sanitizes to empty is skipped.
func NormalizeWrite(rec Record) []WriteArg {
	var args []WriteArg
	for _, m := range fieldMappings {
		if v, ok := rec[m.field]; ok {
			if v = Sanitize(v); v != "" {
				args = append(args, WriteArg{Tag: m.candidates[0], Value: v})
			}
		}
	}
	for _, name := range sortedCustomFields(rec) {
		if v := Sanitize(rec[name]); v != "" {
			args = append(args, WriteArg{Tag: string(name), Value: v})
		}
	}
	return args
}

func sortedCustomFields(rec Record) []Field {
	var custom []Field
	for name := range rec {
		if !KnownField(name) {
			custom = append(custom, name)
		}
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i] < custom[j] })
	return custom
}

// stringify renders a raw engine value. The engine's JSON output may hold
// numbers (e.g. numeric dates) or lists (e.g. multi-valued creators).
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		if len(t) == 0 {
			return ""
		}
		return stringify(t[0])
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
