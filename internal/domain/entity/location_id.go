package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"kuttyport/internal/errors"
)

// LocationID identifies a location within one snapshot. Clients send either a
// JSON number or a JSON string; the original form is kept so the id serialises
// back the way it arrived. Equality goes through Key.
type LocationID struct {
	value   string
	numeric bool
}

// StringID builds a string-typed location id.
func StringID(s string) LocationID {
	return LocationID{value: s}
}

// NumericID builds a number-typed location id.
func NumericID(n int64) LocationID {
	return LocationID{value: strconv.FormatInt(n, 10), numeric: true}
}

// ParseLocationID interprets a path segment. Segments that are valid JSON
// numbers become numeric ids.
func ParseLocationID(s string) LocationID {
	if _, err := strconv.ParseFloat(s, 64); err == nil && json.Valid([]byte(s)) {
		return LocationID{value: s, numeric: true}
	}

	return StringID(s)
}

// String returns the id text.
func (id LocationID) String() string {
	return id.value
}

// IsZero reports whether the id is unset.
func (id LocationID) IsZero() bool {
	return id.value == ""
}

// IsNumeric reports whether the id arrived as a JSON number.
func (id LocationID) IsNumeric() bool {
	return id.numeric
}

// Key is the identity used for uniqueness and lookups. Numeric ids are keyed
// by value, so 1, 1.0 and 1e0 are the same id; integers keep every digit. A
// string id matches a numeric one when its text equals that key.
func (id LocationID) Key() string {
	if !id.numeric {
		return id.value
	}

	if !strings.ContainsAny(id.value, "eE") {
		var r big.Rat
		if _, ok := r.SetString(id.value); ok && r.IsInt() {
			return r.Num().String()
		}
	}

	f, err := strconv.ParseFloat(id.value, 64)
	if err != nil {
		return id.value
	}
	if !math.IsInf(f, 0) && f == math.Trunc(f) {
		n, _ := new(big.Float).SetFloat64(f).Int(nil)

		return n.String()
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (id LocationID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}

	return json.Marshal(id.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *LocationID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = LocationID{}

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "invalid location id")
		}
		*id = StringID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Errorf("location id must be a string or a number, got %s", string(data))
	}
	*id = LocationID{value: n.String(), numeric: true}

	return nil
}
