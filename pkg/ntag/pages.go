package ntag

import (
	"fmt"
	"strings"
)

const (
	// PageSize is the width of one NTAG215 memory page in bytes.
	PageSize = 4

	// ContentPages is the number of pages holding tag memory content
	// (pages 0..132). Pages 133 and 134 hold PWD and PACK.
	ContentPages = 133

	// PageCount is the total page count of an NTAG215 (540 bytes).
	PageCount = 135
)

// packPage is the PACK acknowledge value (0x80 0x80) followed by the two
// RFUI bytes, as stored at page 134.
var packPage = []byte{0x80, 0x80, 0x00, 0x00}

// EncodePages converts a raw tag image into the 135 "Page N:" lines of
// the .nfc format, joined by newlines, and returns the page count.
//
// Content past page 132 is truncated silently; some dumps carry 572
// bytes but the device only accepts 135 pages. A trailing partial page
// and any missing pages are padded with zero bytes. Page 133 is the
// password derived from the image's UID, page 134 the fixed PACK value.
func EncodePages(image []byte) (string, int, error) {
	pwd, err := Password(image)
	if err != nil {
		return "", 0, err
	}

	lines := make([]string, 0, PageCount)
	for start := 0; start < len(image) && len(lines) < ContentPages; start += PageSize {
		end := start + PageSize
		if end > len(image) {
			end = len(image)
		}
		page := make([]byte, PageSize)
		copy(page, image[start:end])
		lines = append(lines, pageLine(len(lines), page))
	}
	for len(lines) < ContentPages {
		lines = append(lines, pageLine(len(lines), make([]byte, PageSize)))
	}

	lines = append(lines, pageLine(ContentPages, pwd))
	lines = append(lines, pageLine(ContentPages+1, packPage))

	return strings.Join(lines, "\n"), len(lines), nil
}

func pageLine(index int, data []byte) string {
	return fmt.Sprintf("Page %d: %s", index, formatBytes(data))
}
