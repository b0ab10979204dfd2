// Package xssi handles the anti-XSSI prefix that the ChromeStatus backend
// puts in front of every JSON response body.
package xssi

import (
	"bytes"
	"encoding/json"
)

// Prefix makes a JSON body a syntax error when loaded as a script.
const Prefix = ")]}'\n"

// Strip removes one leading Prefix from body. Bodies without it are returned
// unchanged.
func Strip(body []byte) []byte {
	return bytes.TrimPrefix(body, []byte(Prefix))
}

// Decode strips the prefix and unmarshals the remainder into v. A body that
// is empty after stripping leaves v untouched.
func Decode(body []byte, v any) error {
	body = Strip(body)
	if len(bytes.TrimSpace(body)) == 0 || v == nil {
		return nil
	}
	return json.Unmarshal(body, v)
}
