package engine

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// ParseReadOutput interprets the JSON the engine prints for a one-file
// read: an array holding exactly one object. An empty array, or output
// that isn't valid JSON at all, yields an empty mapping: a file with
// no readable metadata is a normal outcome, not an error.
func ParseReadOutput(output string) map[string]any {
	var results []map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &results); err != nil {
		return map[string]any{}
	}
	if len(results) == 0 {
		return map[string]any{}
	}
	return results[0]
}

// confirmation matches the "N image files updated/created" lines the
// engine prints after a write. The count, not the exit status, is
// authoritative: the engine can exit cleanly while reporting zero files
// updated.
var confirmation = regexp.MustCompile(`(\d+)\s+(?:image\s+)?files?\s+(?:updated|created)`)

// ParseWriteResult reports whether a write call's output confirms that
// at least one file was updated or created.
func ParseWriteResult(output string) bool {
	for _, line := range strings.Split(output, "\n") {
		m := confirmation.FindStringSubmatch(strings.ToLower(line))
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return true
		}
	}
	return false
}
