// Package codec converts between the domain model (rating bands, preset
// colors, highlight state) and the serialized object trees stored in the
// game's asset containers. Encoding threads the original document through so
// fields the domain does not own pass through unchanged.
package codec

import "fmt"

// StructureError reports a document that violates a required shape. Path
// pinpoints the offending node (for example
// "root.m_Rules[3].m_Properties[0].m_Values[0]"); the external writer's own
// failure on malformed input carries no such context, so this is the only
// actionable diagnostic a user gets.
type StructureError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

func structureErr(path, expected, actual string) *StructureError {
	return &StructureError{Path: path, Expected: expected, Actual: actual}
}
