package client

import (
	"encoding/json"
	"strconv"
)

// stringFields flattens a draft struct into the string-coerced field map a
// multipart submission carries. Numbers keep their JSON representation
// (json.Number, so no float mangling); nested values are not expected in
// drafts and are serialized as compact JSON if they appear.
func stringFields(draft interface{}) map[string]string {
	data, err := json.Marshal(draft)
	if err != nil {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, raw := range m {
		out[k] = coerce(raw)
	}
	return out
}

func coerce(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return string(raw)
}
