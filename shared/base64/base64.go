package base64

import (
	b64 "encoding/base64"
	"fmt"
	"strings"
)

const payloadMarker = ";base64,"

// IsDataURI reports whether the string is an inline `data:` payload rather
// than a plain URL.
func IsDataURI(file string) bool {
	return strings.HasPrefix(file, "data:") && strings.Contains(file, payloadMarker)
}

// GetContentType extracts the declared content type from a data URI,
// or returns the empty string when the input is not one.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, payloadMarker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// DecodePayload returns the raw bytes encoded in a data URI.
func DecodePayload(file string) ([]byte, error) {
	idx := strings.Index(file, payloadMarker)
	if idx == -1 {
		return nil, fmt.Errorf("not a base64 data URI")
	}

	data, err := b64.StdEncoding.DecodeString(file[idx+len(payloadMarker):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return data, nil
}
