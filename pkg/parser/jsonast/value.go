package jsonast

import (
	"bytes"
	"encoding/json"

	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// StringValue decodes a JSON string node. The second result is false when
// n is not a string node.
func StringValue(n *srcast.Node) (string, bool) {
	if n == nil || n.Kind != srcast.KindString {
		return "", false
	}

	var value string
	if err := json.Unmarshal([]byte(n.Text()), &value); err != nil {
		return "", false
	}
	return value, true
}

// Quote encodes s as a JSON string literal without HTML escaping.
func Quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
