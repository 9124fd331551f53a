package roster

import (
	"encoding/json"
	"strconv"
)

// Value is one normalized cell: text, an integer, or the missing marker.
// Missing means the source column was absent or a numeric value failed to
// parse. It is distinct from empty text and from zero.
type Value struct {
	kind kind
	text string
	num  int
}

type kind uint8

const (
	kindMissing kind = iota
	kindText
	kindInt
)

// Missing is the zero Value.
var Missing = Value{}

// TextValue returns a text Value.
func TextValue(s string) Value { return Value{kind: kindText, text: s} }

// IntValue returns an integer Value.
func IntValue(n int) Value { return Value{kind: kindInt, num: n} }

// IsMissing reports whether the value is the missing marker.
func (v Value) IsMissing() bool { return v.kind == kindMissing }

// Text returns the value as display text, "" when missing.
func (v Value) Text() string {
	if v.kind == kindInt {
		return strconv.Itoa(v.num)
	}
	return v.text
}

// Int returns the integer value and whether one is present.
func (v Value) Int() (int, bool) {
	if v.kind != kindInt {
		return 0, false
	}
	return v.num, true
}

// Cell serializes the value for a positional store row. Missing becomes an
// empty cell.
func (v Value) Cell() string { return v.Text() }

// MarshalJSON renders missing as null so clients can tell it apart from an
// explicitly blank cell.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindInt:
		return json.Marshal(v.num)
	case kindText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}
