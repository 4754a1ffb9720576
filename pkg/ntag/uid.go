package ntag

import "fmt"

// UIDLength is the size of an NTAG215 UID in bytes.
const UIDLength = 7

// ExtractUID assembles the 7-byte UID from a raw tag image: bytes 0..2
// followed by bytes 4..7. Byte 3 is the BCC0 check byte and is not part
// of the UID.
//
// Images shorter than 8 bytes cannot carry a UID and are rejected.
func ExtractUID(image []byte) ([]byte, error) {
	if len(image) < 8 {
		return nil, fmt.Errorf("%w: image is %d bytes, need at least 8 for UID extraction", ErrInvalidUID, len(image))
	}
	uid := make([]byte, 0, UIDLength)
	uid = append(uid, image[:3]...)
	uid = append(uid, image[4:8]...)
	return uid, nil
}
