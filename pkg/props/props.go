// Package props parses the structured properties column of a resource row.
//
// Properties are JSON objects exported by the cloud provider. Many rows carry
// no properties at all or something that is not an object; [Parse] reports
// those as "not applicable" rather than as errors, so callers can skip the
// row without aborting the build.
package props

import (
	"encoding/json"
	"strings"
)

// Value is a parsed JSON object.
type Value map[string]any

// Parse decodes raw as a JSON object. It returns false for empty text,
// malformed JSON and any top-level value that is not an object.
func Parse(raw string) (Value, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw[0] != '{' {
		return nil, false
	}
	var v map[string]any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false
	}
	if v == nil {
		return nil, false
	}
	return Value(v), true
}

// Object returns the nested object under key, or nil if absent or not an object.
func (v Value) Object(key string) Value {
	if m, ok := v[key].(map[string]any); ok {
		return Value(m)
	}
	return nil
}

// Array returns the nested array under key, or nil if absent or not an array.
func (v Value) Array(key string) []any {
	if a, ok := v[key].([]any); ok {
		return a
	}
	return nil
}

// String returns the string under key, or "" if absent or not a string.
func (v Value) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Text returns the string under key. An absent key yields "" and true; a
// present value that is not a string, null included, yields false.
func (v Value) Text(key string) (string, bool) {
	raw, present := v[key]
	if !present {
		return "", true
	}
	s, ok := raw.(string)
	return s, ok
}

// Field returns the object under key. An absent key yields an empty object
// and true; a present value that is not an object yields false.
func (v Value) Field(key string) (Value, bool) {
	raw, present := v[key]
	if !present {
		return Value{}, true
	}
	m, ok := raw.(map[string]any)
	return Value(m), ok
}

// Path walks nested objects and returns the string at the final key.
// Any missing step or non-object intermediate yields "".
func (v Value) Path(keys ...string) string {
	if len(keys) == 0 {
		return ""
	}
	cur := v
	for _, k := range keys[:len(keys)-1] {
		cur = cur.Object(k)
		if cur == nil {
			return ""
		}
	}
	return cur.String(keys[len(keys)-1])
}

// PowerState returns the display status of a virtual machine, such as
// "VM running", from extended.instanceView.powerState.displayStatus.
func PowerState(v Value) string {
	return v.Path("extended", "instanceView", "powerState", "displayStatus")
}
