package codec

import (
	"fmt"
	"strings"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/document"
)

// Validate walks a document that is about to be written back and rejects any
// shape the external writer would choke on. The writer itself fails with a
// bare low-level type error, so every violation here carries the exact path.
//
// Checks: rule-list entries must be objects carrying a property list;
// property value lists must hold only objects; selector-list entries must be
// objects; bare strings are legal only inside recognized free-text row lists
// and name fields.
func Validate(root *document.Value) error {
	if root.Kind() != document.KindObject {
		return structureErr("root", "object", root.Kind().String())
	}
	return walkValue(root, "root", "")
}

func walkValue(v *document.Value, path, fieldKey string) error {
	switch v.Kind() {
	case document.KindObject:
		for _, key := range v.Object().Keys() {
			field, _ := v.Object().Get(key)
			childPath := path + "." + key
			switch key {
			case "m_Rules":
				if err := validateRules(field, childPath); err != nil {
					return err
				}
			case "m_ComplexSelectors":
				if err := validateSelectors(field, childPath); err != nil {
					return err
				}
			default:
				if err := walkValue(field, childPath, key); err != nil {
					return err
				}
			}
		}
	case document.KindList:
		for i, elem := range v.Elems() {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			if elem.Kind() == document.KindString && !stringRowsAllowed(path, fieldKey) {
				return structureErr(elemPath, "object or number", "string")
			}
			if err := walkValue(elem, elemPath, fieldKey); err != nil {
				return err
			}
		}
	}
	return nil
}

// stringRowsAllowed reports whether a list at this position may legally hold
// bare strings: side-table row lists, free-text string pools, and name
// fields. Everywhere else a string means a corrupted structure.
func stringRowsAllowed(path, fieldKey string) bool {
	if fieldKey == "m_rows" || fieldKey == "strings" {
		return true
	}
	lower := strings.ToLower(path)
	return strings.Contains(lower, "m_rows") ||
		strings.Contains(lower, "strings") ||
		strings.Contains(lower, "name")
}

func validateRules(field *document.Value, path string) error {
	rules := document.AsArray(field)
	if rules == nil && !field.IsNull() {
		return structureErr(path, "list", field.Kind().String())
	}
	for i, rule := range rules {
		rulePath := fmt.Sprintf("%s[%d]", path, i)
		if rule.Kind() != document.KindObject {
			return structureErr(rulePath, "object", rule.Kind().String())
		}
		propsField, ok := rule.Object().Get("m_Properties")
		if !ok {
			return structureErr(rulePath, "object with m_Properties", "object without m_Properties")
		}
		props := document.AsArray(propsField)
		if props == nil {
			return structureErr(rulePath+".m_Properties", "list", propsField.Kind().String())
		}
		for j, prop := range props {
			propPath := fmt.Sprintf("%s.m_Properties[%d]", rulePath, j)
			if prop.Kind() != document.KindObject {
				return structureErr(propPath, "object", prop.Kind().String())
			}
			if err := validateValues(prop, propPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateValues(prop *document.Value, propPath string) error {
	valsField, ok := prop.Object().Get("m_Values")
	if !ok {
		return nil // properties without values exist in shipped presets
	}
	vals := document.AsArray(valsField)
	if vals == nil && !valsField.IsNull() {
		return structureErr(propPath+".m_Values", "list", valsField.Kind().String())
	}
	for k, val := range vals {
		if val.Kind() != document.KindObject {
			return structureErr(fmt.Sprintf("%s.m_Values[%d]", propPath, k), "object", val.Kind().String())
		}
	}
	return nil
}

func validateSelectors(field *document.Value, path string) error {
	selectors := document.AsArray(field)
	if selectors == nil && !field.IsNull() {
		return structureErr(path, "list", field.Kind().String())
	}
	for i, sel := range selectors {
		selPath := fmt.Sprintf("%s[%d]", path, i)
		if sel.Kind() != document.KindObject {
			return structureErr(selPath, "object", sel.Kind().String())
		}
		if err := walkValue(sel, selPath, "m_ComplexSelectors"); err != nil {
			return err
		}
	}
	return nil
}
