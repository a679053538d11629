package homeassistant

import (
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/errors"
)

// StateKind identifies which variant of a StateValue is populated.
type StateKind uint8

const (
	// KindString is the fallback variant holding the literal state text.
	KindString StateKind = iota
	// KindBool holds a boolean state ("true"/"false" on the wire).
	KindBool
	// KindInt holds an integer state.
	KindInt
	// KindDecimal holds a floating-point state.
	KindDecimal
)

// StateValue is the typed representation of an entity's state field.
//
// Home Assistant transmits states as JSON strings regardless of the
// underlying datatype, so the wire text does not uniquely determine the
// variant. DecodeState recovers the best-matching variant in a fixed
// priority order: boolean, integer, decimal, then the literal string.
// Exactly one variant is populated per value.
//
// The zero value is the String variant holding "".
type StateValue struct {
	kind StateKind
	b    bool
	i    int64
	f    float64
	s    string
}

// BoolState returns a StateValue holding a boolean.
func BoolState(v bool) StateValue {
	return StateValue{kind: KindBool, b: v}
}

// IntState returns a StateValue holding an integer.
func IntState(v int64) StateValue {
	return StateValue{kind: KindInt, i: v}
}

// DecimalState returns a StateValue holding a floating-point number.
func DecimalState(v float64) StateValue {
	return StateValue{kind: KindDecimal, f: v}
}

// StringState returns a StateValue holding a literal string.
func StringState(v string) StateValue {
	return StateValue{kind: KindString, s: v}
}

// DecodeState decodes the literal text of a state field into the
// best-matching variant. Decode attempts run in fixed priority order:
//
//  1. boolean literal (exactly "true" or "false")
//  2. integer literal
//  3. decimal literal
//  4. fallback to the original string, preserved exactly
//
// The first successful parse wins. Decoding is total: every input is
// representable and the function never fails. The cost is up to three
// failed parse attempts before the String fallback; this is a documented
// trade-off of the adaptive scheme, not an oversight.
func DecodeState(s string) StateValue {
	// Not strconv.ParseBool: its grammar also accepts "1", "t", "TRUE"
	// and friends, which must stay integers or strings here.
	switch s {
	case "true":
		return BoolState(true)
	case "false":
		return BoolState(false)
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntState(i)
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return DecimalState(f)
	}

	return StringState(s)
}

// Kind returns the populated variant.
func (v StateValue) Kind() StateKind {
	return v.kind
}

// Bool returns the boolean value and true if the Bool variant is populated.
func (v StateValue) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Int returns the integer value and true if the Int variant is populated.
func (v StateValue) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Decimal returns the floating-point value and true if the Decimal variant
// is populated.
func (v StateValue) Decimal() (float64, bool) {
	return v.f, v.kind == KindDecimal
}

// Text returns the literal string and true if the String variant is populated.
func (v StateValue) Text() (string, bool) {
	return v.s, v.kind == KindString
}

// String returns the wire representation of the value. For the String
// variant this is the original text, byte for byte.
func (v StateValue) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindDecimal:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// UnmarshalJSON implements json.Unmarshaler. Strings go through the
// adaptive decode; raw JSON booleans and numbers map directly onto their
// variants. Arrays and objects are rejected.
func (v *StateValue) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty state value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "invalid state string")
		}
		*v = DecodeState(s)
		return nil

	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return errors.Wrap(err, "invalid state boolean")
		}
		*v = BoolState(b)
		return nil

	case '[', '{':
		return errors.Newf("state must be a bool, number or string, got %s", previewJSON(data))

	case 'n':
		// JSON null is a no-op by encoding/json convention.
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "invalid state value")
	}
	if i, err := n.Int64(); err == nil {
		*v = IntState(i)
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return errors.Wrapf(err, "invalid state number %q", n.String())
	}
	*v = DecimalState(f)
	return nil
}

// MarshalJSON implements json.Marshaler. Values are re-emitted in the wire
// form Home Assistant uses: a JSON string.
func (v StateValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func previewJSON(data []byte) string {
	const max = 40
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
