package server

import (
	"encoding/json"
)

// OptionalBool tells an absent JSON field apart from an explicit null.
// Set is true whenever the field appeared in the body.
type OptionalBool struct {
	Set   bool
	Value *bool
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalBool) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	o.Value = &b
	return nil
}
