// Package ntag converts raw NTAG215 dumps into the page-oriented .nfc
// text format and retrofits PWD/PACK authentication pages into already
// converted documents.
package ntag

import "fmt"

// Assemble converts a raw NTAG215 dump into a complete .nfc document,
// ready to be written out: fixed header metadata, the UID field, and
// all 135 page lines. The result is newline-terminated.
func Assemble(image []byte) (string, error) {
	uid, err := ExtractUID(image)
	if err != nil {
		return "", err
	}
	pages, total, err := EncodePages(image)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Filetype: Flipper NFC device
Version: 2
Device type: NTAG215
UID: %s
ATQA: 44 00
SAK: 00
Signature: 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00
Mifare version: 00 04 04 02 01 00 11 03
Counter 0: 0
Tearing 0: 00
Counter 1: 0
Tearing 1: 00
Counter 2: 0
Tearing 2: 00
Pages total: %d
%s
`, formatBytes(uid), total, pages), nil
}
