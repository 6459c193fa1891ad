package record

import "sort"

// Field is a single key/value pair of a Record.
type Field struct {
	Key   string
	Value any
}

// F is shorthand for Field{Key: key, Value: value}.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Record is an ordered mapping from field name to value.
//
// Key order is the order in which keys were first set. Setting an existing
// key replaces its value in place.
type Record struct {
	fields []Field
}

func New(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

// FromMap builds a Record from a map. Keys are sorted, since maps carry no
// order of their own.
func FromMap(m map[string]any) Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r := Record{fields: make([]Field, 0, len(keys))}
	for _, k := range keys {
		r.fields = append(r.fields, Field{Key: k, Value: m[k]})
	}
	return r
}

func (r *Record) Set(key string, value any) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

func (r Record) Get(key string) (any, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// String returns the stringified value for key, or "" when the key is absent.
func (r Record) String(key string) string {
	v, ok := r.Get(key)
	if !ok {
		return ""
	}
	return Stringify(v)
}

func (r Record) Len() int { return len(r.fields) }

func (r Record) Keys() []string {
	if len(r.fields) == 0 {
		return nil
	}
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Key
	}
	return out
}

// Fields returns a copy of the record's fields in key order.
func (r Record) Fields() []Field {
	if len(r.fields) == 0 {
		return nil
	}
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}
