// Package preview reads the small subset of metadata that plain EXIF can
// answer without the external engine. It is the read-only fallback used
// when the engine is unavailable; writes always require the engine.
package preview

import (
	"fmt"
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

// tagMap translates goexif field names to the namespace-qualified tag
// names the resolver expects, so preview output feeds the same
// normalization path as engine output.
var tagMap = map[exif.FieldName]string{
	exif.ImageDescription: "EXIF:ImageDescription",
	exif.Artist:           "EXIF:Artist",
	exif.Copyright:        "EXIF:Copyright",
	exif.DateTime:         "EXIF:ModifyDate",
}

// Read extracts the EXIF subset from the file at path. A file without a
// decodable EXIF block yields an empty mapping, matching the engine's
// "no metadata" behaviour. Only opening the file can fail.
func Read(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return map[string]any{}, nil
	}

	raw := make(map[string]any)
	for field, tag := range tagMap {
		t, err := x.Get(field)
		if err != nil {
			continue
		}
		if s, err := t.StringVal(); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				raw[tag] = s
			}
		}
	}
	return raw, nil
}
