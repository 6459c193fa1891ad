package record

import (
	"errors"
	"strconv"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON")

// ParseJSON reads an array of JSON objects. Object key order is preserved.
//
// Integral numbers become int64, other numbers float64; nested objects and
// arrays are kept as their raw JSON text.
func ParseJSON(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Source: "json", Index: -1, Err: errInvalidJSON}
	}
	root := gjson.ParseBytes(data)
	if root.Type == gjson.Null {
		return nil, nil
	}
	if !root.IsArray() {
		return nil, &ParseError{Source: "json", Index: -1, Err: ErrNotArray}
	}

	var (
		out []Record
		err error
	)
	root.ForEach(func(_, elem gjson.Result) bool {
		if elem.Type == gjson.Null {
			out = append(out, Record{})
			return true
		}
		if !elem.IsObject() {
			err = &ParseError{Source: "json", Index: len(out), Err: ErrNotObject}
			return false
		}
		var r Record
		elem.ForEach(func(key, value gjson.Result) bool {
			r.Set(key.String(), jsonValue(value))
			return true
		})
		out = append(out, r)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func jsonValue(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.String:
		return v.Str
	case gjson.Number:
		if n, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return n
		}
		return v.Num
	default:
		return v.Raw
	}
}
