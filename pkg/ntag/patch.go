package ntag

import (
	"fmt"
	"strings"
)

const (
	uidPrefix  = "UID:"
	pwdPrefix  = "Page 133:"
	packPrefix = "Page 134:"
)

// PatchPassword recomputes the password from a document's UID field and
// rewrites the PWD (page 133) and PACK (page 134) lines in place. Lines
// are expected without trailing newlines. All other lines pass through
// untouched, in their original order.
//
// The UID field is trusted verbatim: whatever hex it carries is parsed
// and handed to DerivePassword, which rejects anything but 7 bytes.
// When a prefix occurs on more than one line, the first match wins.
func PatchPassword(lines []string) ([]string, error) {
	uidLine, _, err := findLine(lines, uidPrefix)
	if err != nil {
		return nil, err
	}
	uid, err := parseUIDField(uidLine)
	if err != nil {
		return nil, err
	}
	pwd, err := DerivePassword(uid)
	if err != nil {
		return nil, err
	}

	patched := make([]string, len(lines))
	copy(patched, lines)
	if err := replacePage(patched, pwdPrefix, pwd); err != nil {
		return nil, err
	}
	if err := replacePage(patched, packPrefix, packPage); err != nil {
		return nil, err
	}
	return patched, nil
}

// findLine returns the first line containing sub and its index.
func findLine(lines []string, sub string) (string, int, error) {
	for i, line := range lines {
		if strings.Contains(line, sub) {
			return line, i, nil
		}
	}
	return "", -1, fmt.Errorf("%w: %q", ErrMissingField, sub)
}

// replacePage overwrites the first line containing prefix with a freshly
// formatted page line, at the same position.
func replacePage(lines []string, prefix string, data []byte) error {
	_, i, err := findLine(lines, prefix)
	if err != nil {
		return err
	}
	lines[i] = prefix + " " + formatBytes(data)
	return nil
}

// parseUIDField strips the "UID:" prefix and parses the remaining hex
// text into bytes.
func parseUIDField(line string) ([]byte, error) {
	text := strings.TrimSpace(line)
	text = strings.TrimSpace(strings.TrimPrefix(text, uidPrefix))
	return parseHexBytes(text)
}
