package codec

import (
	"fmt"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/document"
)

// Highlight collections carry exactly three style-class rows in their string
// column: three distinct canonical labels when role highlighting is on,
// three copies of the base label when it is off.

var (
	highlightLabels = [3]string{
		"attributes-row-number",
		"attributes-row-number-preference",
		"attributes-row-number-key",
	}
	highlightNoBorderLabels = [3]string{
		"attributes-row-number-no-border",
		"attributes-row-number-preference-no-border",
		"attributes-row-number-key-no-border",
	}
)

// DecodeHighlightRows returns the style-class rows of a highlight collection.
func DecodeHighlightRows(doc *document.Value) ([]string, error) {
	_, styleRID, err := columnRIDs(doc)
	if err != nil {
		return nil, err
	}

	for i, ref := range refEntries(doc) {
		if ref.Kind() != document.KindObject {
			continue
		}
		rid, _ := ref.Object().Field("rid").Int()
		class, _ := ref.Object().Field("type").Object().Field("class").Str()
		if rid != styleRID || class != stringDataSetClass {
			continue
		}

		rows := document.AsArray(ref.Object().Field("data").Object().Field("m_rows"))
		out := make([]string, 0, len(rows))
		for j, row := range rows {
			s, ok := row.Str()
			if !ok {
				return nil, structureErr(
					fmt.Sprintf("root.references.RefIds[%d].data.m_rows[%d]", i, j),
					"string", row.Kind().String())
			}
			out = append(out, s)
		}
		return out, nil
	}

	return nil, structureErr("root.references", "a "+stringDataSetClass+" reference matching the style column", "none")
}

// HighlightEnabled interprets decoded rows: three identical rows mean the
// toggle is off, anything else means on.
func HighlightEnabled(rows []string) bool {
	if len(rows) < 3 {
		return true
	}
	return !(rows[0] == rows[1] && rows[1] == rows[2])
}

// EncodeHighlightToggle writes the toggle state into a fresh copy of the
// original collection. noBorder selects the "-no-border" label variants used
// by the second collection. The row list is written in the bare-list shape,
// which is the only one the external writer accepts for rebuilt content.
func EncodeHighlightToggle(enabled, noBorder bool, original *document.Value) (*document.Value, error) {
	labels := highlightLabels
	if noBorder {
		labels = highlightNoBorderLabels
	}
	rows := labels
	if !enabled {
		rows = [3]string{labels[0], labels[0], labels[0]}
	}

	doc := original.Clone()
	_, styleRID, err := columnRIDs(doc)
	if err != nil {
		return nil, err
	}

	replaced := false
	for _, ref := range refEntries(doc) {
		if ref.Kind() != document.KindObject {
			continue
		}
		rid, _ := ref.Object().Field("rid").Int()
		class, _ := ref.Object().Field("type").Object().Field("class").Str()
		if rid != styleRID || class != stringDataSetClass {
			continue
		}
		data := ref.Object().Field("data")
		if data.Kind() != document.KindObject {
			continue
		}
		elems := make([]*document.Value, len(rows))
		for j, s := range rows {
			elems[j] = document.String(s)
		}
		data.Object().Set("m_rows", document.List(elems...))
		replaced = true
		break
	}

	if !replaced {
		return nil, structureErr("root.references", "a "+stringDataSetClass+" reference matching the style column", "none")
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
