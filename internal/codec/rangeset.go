package codec

import (
	"fmt"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/document"
)

// The range/label collection stores its data behind an indirection: the
// "m_columns" list names two reference ids (key column first, then style
// column), and the "references" pool holds {rid, type, data} entries. The
// codec matches ids, filters by the type tag, and works on that reference's
// row list.

const (
	intDataSetClass    = "IntDataSet"
	stringDataSetClass = "StringDataSet"
)

// RangeRows is the decoded range/label collection: one threshold and one
// style class per band, reserved bands included, aligned positionally.
type RangeRows struct {
	Thresholds []int
	Labels     []string
}

// DecodeRangeCollection extracts thresholds and style classes from a decoded
// range collection document.
func DecodeRangeCollection(doc *document.Value) (RangeRows, error) {
	keyRID, styleRID, err := columnRIDs(doc)
	if err != nil {
		return RangeRows{}, err
	}

	var out RangeRows
	foundKeys, foundStyles := false, false

	for i, ref := range refEntries(doc) {
		if ref.Kind() != document.KindObject {
			continue
		}
		rid, _ := ref.Object().Field("rid").Int()
		class, _ := ref.Object().Field("type").Object().Field("class").Str()
		rowsPath := fmt.Sprintf("root.references.RefIds[%d].data.m_rows", i)
		rows := document.AsArray(ref.Object().Field("data").Object().Field("m_rows"))

		switch {
		case rid == keyRID && class == intDataSetClass:
			out.Thresholds = make([]int, 0, len(rows))
			for j, row := range rows {
				n, ok := row.Int()
				if !ok {
					return RangeRows{}, structureErr(fmt.Sprintf("%s[%d]", rowsPath, j), "number", row.Kind().String())
				}
				out.Thresholds = append(out.Thresholds, int(n))
			}
			foundKeys = true

		case rid == styleRID && class == stringDataSetClass:
			out.Labels = make([]string, 0, len(rows))
			for j, row := range rows {
				s, ok := row.Str()
				if !ok {
					return RangeRows{}, structureErr(fmt.Sprintf("%s[%d]", rowsPath, j), "string", row.Kind().String())
				}
				out.Labels = append(out.Labels, s)
			}
			foundStyles = true
		}
	}

	if !foundKeys {
		return RangeRows{}, structureErr("root.references", "an "+intDataSetClass+" reference matching the key column", "none")
	}
	if !foundStyles {
		return RangeRows{}, structureErr("root.references", "a "+stringDataSetClass+" reference matching the style column", "none")
	}
	return out, nil
}

// EncodeRangeCollection writes new thresholds and style classes into a fresh
// copy of the original document. Only the matched references' row lists are
// replaced — in whatever list shape they arrived in — plus the redundant
// top-level row count; everything else passes through untouched.
func EncodeRangeCollection(rows RangeRows, original *document.Value) (*document.Value, error) {
	if len(rows.Thresholds) != len(rows.Labels) {
		return nil, fmt.Errorf("encode range collection: %d thresholds but %d style classes",
			len(rows.Thresholds), len(rows.Labels))
	}

	doc := original.Clone()
	keyRID, styleRID, err := columnRIDs(doc)
	if err != nil {
		return nil, err
	}

	for _, ref := range refEntries(doc) {
		if ref.Kind() != document.KindObject {
			continue
		}
		rid, _ := ref.Object().Field("rid").Int()
		class, _ := ref.Object().Field("type").Object().Field("class").Str()
		data := ref.Object().Field("data")
		if data.Kind() != document.KindObject {
			continue
		}
		origRows, _ := data.Object().Get("m_rows")

		switch {
		case rid == keyRID && class == intDataSetClass:
			elems := make([]*document.Value, len(rows.Thresholds))
			for j, n := range rows.Thresholds {
				elems[j] = document.Int(int64(n))
			}
			data.Object().Set("m_rows", document.RewrapArray(origRows, elems))

		case rid == styleRID && class == stringDataSetClass:
			elems := make([]*document.Value, len(rows.Labels))
			for j, s := range rows.Labels {
				elems[j] = document.String(s)
			}
			data.Object().Set("m_rows", document.RewrapArray(origRows, elems))
		}
	}

	doc.Object().Set("m_rows", document.Int(int64(len(rows.Thresholds))))

	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// columnRIDs reads the two reference ids from m_columns: the integer key
// column first, the style-class column second. That order is fixed in the
// shipped collections.
func columnRIDs(root *document.Value) (keyRID, styleRID int64, err error) {
	columns := document.AsArray(root.Object().Field("m_columns"))
	if len(columns) < 2 {
		return 0, 0, structureErr("root.m_columns", "at least 2 columns", fmt.Sprintf("%d", len(columns)))
	}
	for i, col := range columns[:2] {
		if col.Kind() != document.KindObject {
			return 0, 0, structureErr(fmt.Sprintf("root.m_columns[%d]", i), "object", col.Kind().String())
		}
		rid, ok := col.Object().Field("rid").Int()
		if !ok {
			return 0, 0, structureErr(fmt.Sprintf("root.m_columns[%d].rid", i), "number", "missing or non-numeric")
		}
		if i == 0 {
			keyRID = rid
		} else {
			styleRID = rid
		}
	}
	return keyRID, styleRID, nil
}

func refEntries(root *document.Value) []*document.Value {
	return document.AsArray(root.Object().Field("references").Object().Field("RefIds"))
}
