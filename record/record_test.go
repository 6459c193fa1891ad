package record

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

type stringerValue struct{ s string }

func (v stringerValue) String() string { return "<" + v.s + ">" }

func TestRecord_SetKeepsFirstPosition(t *testing.T) {
	r := New(F("name", "Sara"), F("city", "Oslo"))
	r.Set("age", 23)
	r.Set("name", "Jon")

	if got, want := r.Keys(), []string{"name", "city", "age"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys: got %v, want %v", got, want)
	}
	if got := r.String("name"); got != "Jon" {
		t.Fatalf("name: got %q, want %q", got, "Jon")
	}
	if got := r.Len(); got != 3 {
		t.Fatalf("len: got %d, want 3", got)
	}
}

func TestRecord_ZeroValue(t *testing.T) {
	var r Record
	if _, ok := r.Get("x"); ok {
		t.Fatalf("zero record must not contain keys")
	}
	if got := r.String("x"); got != "" {
		t.Fatalf("missing key string: got %q, want empty", got)
	}
	if r.Keys() != nil || r.Fields() != nil {
		t.Fatalf("zero record keys/fields must be nil")
	}
}

func TestRecord_FieldsIsCopy(t *testing.T) {
	r := New(F("a", 1))
	fs := r.Fields()
	fs[0].Value = 99
	if got := r.String("a"); got != "1" {
		t.Fatalf("record mutated through Fields(): got %q", got)
	}
}

func TestFromMap_SortsKeys(t *testing.T) {
	r := FromMap(map[string]any{"b": 2, "a": 1, "c": nil})
	if got, want := r.Keys(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keys: got %v, want %v", got, want)
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{in: nil, want: ""},
		{in: "Oslo", want: "Oslo"},
		{in: 23, want: "23"},
		{in: int64(-7), want: "-7"},
		{in: uint8(5), want: "5"},
		{in: 23.0, want: "23"},
		{in: 1.5, want: "1.5"},
		{in: float32(0.25), want: "0.25"},
		{in: true, want: "true"},
		{in: []byte("raw"), want: "raw"},
		{in: stringerValue{s: "x"}, want: "<x>"},
		{in: errors.New("boom"), want: "boom"},
		{in: []int{1, 2}, want: "[1 2]"},
	}
	for _, tc := range cases {
		if got := Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%#v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseError_Message(t *testing.T) {
	err := error(&ParseError{Source: "json", Index: 2, Err: ErrNotObject})
	if got, want := err.Error(), "parse json: record 2: "+ErrNotObject.Error(); got != want {
		t.Fatalf("message: got %q, want %q", got, want)
	}
	if !errors.Is(err, ErrNotObject) {
		t.Fatalf("expected errors.Is(err, ErrNotObject)")
	}

	wrapped := fmt.Errorf("loading: %w", &ParseError{Source: "yaml", Index: -1, Err: ErrNotArray})
	var pe *ParseError
	if !errors.As(wrapped, &pe) || pe.Source != "yaml" {
		t.Fatalf("expected ParseError through wrapping, got %v", wrapped)
	}
}
