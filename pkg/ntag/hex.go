package ntag

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// formatBytes renders data as space-separated two-digit uppercase hex,
// e.g. {0xDE, 0xAD} -> "DE AD".
func formatBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// parseHexBytes parses space-separated hex text back into bytes.
func parseHexBytes(text string) ([]byte, error) {
	compact := strings.Join(strings.Fields(text), "")
	data, err := hex.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHex, text)
	}
	return data, nil
}
