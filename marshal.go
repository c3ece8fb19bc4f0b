package option

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// MarshalJSON encodes the held value, or null when the option is
// empty.
func (x Option[T]) MarshalJSON() ([]byte, error) {
	if !x.isSome {
		return jsonNull, nil
	}
	return json.Marshal(x.value)
}

// UnmarshalJSON decodes null into an empty option and any other JSON
// value through the element type. The option is left unchanged when
// decoding fails.
func (x *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		x.Reset()
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	x.Set(value)
	return nil
}

// MarshalYAML encodes the held value, or a YAML null when the option
// is empty.
func (x Option[T]) MarshalYAML() (interface{}, error) {
	if !x.isSome {
		return nil, nil
	}
	return x.value, nil
}

// UnmarshalYAML decodes a YAML null into an empty option and any
// other node through the element type. The option is left unchanged
// when decoding fails.
func (x *Option[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value *T
	if err := unmarshal(&value); err != nil {
		return err
	}
	if value == nil {
		x.Reset()
		return nil
	}
	x.Set(*value)
	return nil
}
