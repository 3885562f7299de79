package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

// ParseJSON decodes an extracted object file into a Value. jsonparser walks
// object fields in document order, which keeps the key ordering the
// serialized formats depend on; encoding/json would shuffle them.
func ParseJSON(data []byte) (*Value, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("parse document: empty input")
	}

	switch trimmed[0] {
	case '{':
		return convertJSON(trimmed, jsonparser.Object)
	case '[':
		return convertJSON(trimmed, jsonparser.Array)
	case '"':
		if len(trimmed) < 2 || trimmed[len(trimmed)-1] != '"' {
			return nil, fmt.Errorf("parse document: unterminated string")
		}
		return convertJSON(trimmed[1:len(trimmed)-1], jsonparser.String)
	case 't', 'f':
		return convertJSON(trimmed, jsonparser.Boolean)
	case 'n':
		return Null(), nil
	default:
		return convertJSON(trimmed, jsonparser.Number)
	}
}

func convertJSON(data []byte, dt jsonparser.ValueType) (*Value, error) {
	switch dt {
	case jsonparser.Null:
		return Null(), nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, fmt.Errorf("parse bool: %w", err)
		}
		return Bool(b), nil

	case jsonparser.Number:
		s := string(data)
		if !strings.ContainsAny(s, ".eE") {
			i, err := strconv.ParseInt(s, 10, 64)
			if err == nil {
				return Int(i), nil
			}
			// fall through for out-of-range integers
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", s, err)
		}
		return Float(f), nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, fmt.Errorf("parse string: %w", err)
		}
		return String(s), nil

	case jsonparser.Object:
		obj := NewObject()
		err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
			child, cerr := convertJSON(value, vt)
			if cerr != nil {
				return cerr
			}
			obj.Object().Set(string(key), child)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return obj, nil

	case jsonparser.Array:
		list := List()
		var cbErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, vt jsonparser.ValueType, _ int, aerr error) {
			if cbErr != nil {
				return
			}
			if aerr != nil {
				cbErr = aerr
				return
			}
			child, cerr := convertJSON(value, vt)
			if cerr != nil {
				cbErr = cerr
				return
			}
			list.Append(child)
		})
		if err != nil {
			return nil, err
		}
		if cbErr != nil {
			return nil, cbErr
		}
		return list, nil
	}
	return nil, fmt.Errorf("parse document: unsupported value type %v", dt)
}

// MarshalJSON serializes a Value back to JSON, keeping object fields in their
// insertion order so a decode/encode round trip is byte-stable for untouched
// documents.
func MarshalJSON(v *Value) []byte {
	var buf bytes.Buffer
	writeJSON(&buf, v, 0)
	buf.WriteByte('\n')
	return buf.Bytes()
}

func writeJSON(buf *bytes.Buffer, v *Value, depth int) {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		b, _ := v.Bool()
		buf.WriteString(strconv.FormatBool(b))
	case KindNumber:
		if v.intNum {
			i, _ := v.Int()
			buf.WriteString(strconv.FormatInt(i, 10))
		} else {
			f, _ := v.Float()
			buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		}
	case KindString:
		s, _ := v.Str()
		quoted, _ := json.Marshal(s)
		buf.Write(quoted)
	case KindObject:
		obj := v.Object()
		if obj.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		for i, key := range obj.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeIndent(buf, depth+1)
			quoted, _ := json.Marshal(key)
			buf.Write(quoted)
			buf.WriteString(": ")
			field, _ := obj.Get(key)
			writeJSON(buf, field, depth+1)
		}
		writeIndent(buf, depth)
		buf.WriteByte('}')
	case KindList:
		elems := v.Elems()
		if len(elems) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, e := range elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeIndent(buf, depth+1)
			writeJSON(buf, e, depth+1)
		}
		writeIndent(buf, depth)
		buf.WriteByte(']')
	}
}

func writeIndent(buf *bytes.Buffer, depth int) {
	buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}
