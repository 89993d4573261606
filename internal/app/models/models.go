package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Integer is an int64 attribute that accepts JSON numbers as well as numeric
// strings, so "28" and 28 bind to the same value.
type Integer int64

// UnmarshalJSON implements json.Unmarshaler
func (i *Integer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return i.UnmarshalParam(s)
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid integer value %s", string(data))
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("invalid integer value %s", string(data))
	}
	*i = Integer(v)
	return nil
}

// UnmarshalParam lets gin bind form values into an Integer
func (i *Integer) UnmarshalParam(param string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(param), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value %q", param)
	}
	*i = Integer(v)
	return nil
}

// All returns every model managed by the data access layer, parents first.
func All() []interface{} {
	return []interface{}{&Department{}, &Student{}}
}
