package codec

import (
	"fmt"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/colorhex"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/document"
)

// Value descriptor type tags observed in shipped presets. Newer files bind a
// rule's color through the top-level colors list; older ones point at four
// consecutive entries of the floats pool.
const (
	valueTypeFloat = 2
	valueTypeColor = 4
)

// DecodeColorPreset extracts one RGBA per rule, reserved bands included.
// The top-level colors list is used when its length matches the rule count;
// otherwise each rule's "color" property descriptor is resolved, through
// either representation. If nothing usable remains, every rule decodes to
// opaque white — real files are observed with inconsistent lengths.
func DecodeColorPreset(doc *document.Value) ([]colorhex.RGBA, error) {
	if doc.Kind() != document.KindObject {
		return nil, structureErr("root", "object", doc.Kind().String())
	}

	rules := document.AsArray(doc.Object().Field("m_Rules"))
	colorsArr := document.AsArray(doc.Object().Field("colors"))
	floats := floatPool(doc)

	if direct := colorObjects(colorsArr); len(direct) == len(rules) && len(rules) > 0 {
		return direct, nil
	}

	out := make([]colorhex.RGBA, 0, len(rules))
	for _, rule := range rules {
		c, ok := ruleColor(rule, colorsArr, floats)
		if !ok {
			break
		}
		out = append(out, c)
	}

	if len(out) != len(rules) {
		out = out[:0]
		for range rules {
			out = append(out, colorhex.White)
		}
	}
	return out, nil
}

// colorObjects reads the top-level colors list: one {r,g,b,a} object per
// entry, missing channels defaulting to 1.0.
func colorObjects(colorsArr []*document.Value) []colorhex.RGBA {
	out := make([]colorhex.RGBA, 0, len(colorsArr))
	for _, c := range colorsArr {
		if c.Kind() != document.KindObject {
			continue
		}
		out = append(out, colorhex.RGBA{
			R: c.Object().Field("r").FloatOr(1.0),
			G: c.Object().Field("g").FloatOr(1.0),
			B: c.Object().Field("b").FloatOr(1.0),
			A: c.Object().Field("a").FloatOr(1.0),
		})
	}
	return out
}

func floatPool(doc *document.Value) []float64 {
	raw := document.AsArray(doc.Object().Field("floats"))
	out := make([]float64, 0, len(raw))
	for _, f := range raw {
		out = append(out, f.FloatOr(1.0))
	}
	return out
}

// ruleColor resolves one rule's color through its "color" property
// descriptor. Tag 4 indexes the colors list; tag 2 reads four consecutive
// floats starting at the referenced index, alpha defaulting to 1.0 when the
// pool runs short.
func ruleColor(rule *document.Value, colorsArr []*document.Value, floats []float64) (colorhex.RGBA, bool) {
	if rule.Kind() != document.KindObject {
		return colorhex.RGBA{}, false
	}
	for _, prop := range document.AsArray(rule.Object().Field("m_Properties")) {
		if prop.Kind() != document.KindObject {
			continue
		}
		if name, _ := prop.Object().Field("m_Name").Str(); name != "color" {
			continue
		}
		for _, val := range document.AsArray(prop.Object().Field("m_Values")) {
			if val.Kind() != document.KindObject {
				continue
			}
			tag, _ := val.Object().Field("m_ValueType").Int()
			idx64, _ := val.Object().Field("valueIndex").Int()
			idx := int(idx64)

			switch tag {
			case valueTypeColor:
				if idx >= 0 && idx < len(colorsArr) && colorsArr[idx].Kind() == document.KindObject {
					c := colorsArr[idx]
					return colorhex.RGBA{
						R: c.Object().Field("r").FloatOr(1.0),
						G: c.Object().Field("g").FloatOr(1.0),
						B: c.Object().Field("b").FloatOr(1.0),
						A: c.Object().Field("a").FloatOr(1.0),
					}, true
				}
			case valueTypeFloat:
				if idx >= 0 && idx < len(floats) {
					c := colorhex.White
					c.R = floats[idx]
					if idx+1 < len(floats) {
						c.G = floats[idx+1]
					}
					if idx+2 < len(floats) {
						c.B = floats[idx+2]
					}
					if idx+3 < len(floats) {
						c.A = floats[idx+3]
					}
					return c, true
				}
			}
		}
	}
	return colorhex.RGBA{}, false
}

// EncodeColorPreset rebuilds the color binding of a preset from scratch: the
// colors list, one rule per color, and one selector binding each position's
// style class to its rule. Partial patches risk stale rules pointing at
// colors that no longer exist, so the three lists are always reconstructed
// with 1:1 positional correspondence and written as bare lists. colors and
// styleClasses cover every band, reserved ones included, and must be equal
// in length. The floats pool and all other fields pass through unchanged.
func EncodeColorPreset(colors []colorhex.RGBA, styleClasses []string, original *document.Value) (*document.Value, error) {
	if len(colors) != len(styleClasses) {
		return nil, fmt.Errorf("encode color preset: %d colors but %d style classes",
			len(colors), len(styleClasses))
	}

	doc := original.Clone()
	if doc.Kind() != document.KindObject {
		return nil, structureErr("root", "object", doc.Kind().String())
	}

	colorElems := make([]*document.Value, len(colors))
	ruleElems := make([]*document.Value, len(colors))
	selectorElems := make([]*document.Value, len(colors))

	for i, c := range colors {
		colorObj := document.NewObject()
		colorObj.Object().Set("r", document.Float(c.R))
		colorObj.Object().Set("g", document.Float(c.G))
		colorObj.Object().Set("b", document.Float(c.B))
		colorObj.Object().Set("a", document.Float(c.A))
		colorElems[i] = colorObj

		descriptor := document.NewObject()
		descriptor.Object().Set("m_ValueType", document.Int(valueTypeColor))
		descriptor.Object().Set("valueIndex", document.Int(int64(i)))

		prop := document.NewObject()
		prop.Object().Set("m_Name", document.String("color"))
		// Source line numbers are cosmetic for the reader but must be
		// present; keep them monotonically increasing.
		prop.Object().Set("m_Line", document.Int(int64(3+i*4)))
		prop.Object().Set("m_Values", document.List(descriptor))

		rule := document.NewObject()
		rule.Object().Set("m_Properties", document.List(prop))
		rule.Object().Set("line", document.Int(int64(2+i*4)))
		ruleElems[i] = rule

		part := document.NewObject()
		part.Object().Set("m_Value", document.String(styleClasses[i]))
		part.Object().Set("m_Type", document.Int(3))

		simple := document.NewObject()
		simple.Object().Set("m_Parts", document.List(part))
		simple.Object().Set("m_PreviousRelationship", document.Int(0))

		selector := document.NewObject()
		selector.Object().Set("m_Specificity", document.Int(11))
		selector.Object().Set("m_Selectors", document.List(simple))
		selector.Object().Set("ruleIndex", document.Int(int64(i)))
		selectorElems[i] = selector
	}

	doc.Object().Set("colors", document.List(colorElems...))
	doc.Object().Set("m_Rules", document.List(ruleElems...))
	doc.Object().Set("m_ComplexSelectors", document.List(selectorElems...))

	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
