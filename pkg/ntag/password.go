package ntag

import "fmt"

// DerivePassword computes the 4-byte PWD for a 7-byte UID. This is the
// fixed formula the target device authenticates against; it must be
// reproduced byte for byte.
func DerivePassword(uid []byte) ([]byte, error) {
	if len(uid) != UIDLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidUID, len(uid), UIDLength)
	}
	return []byte{
		uid[1] ^ uid[3] ^ 0xAA,
		uid[2] ^ uid[4] ^ 0x55,
		uid[3] ^ uid[5] ^ 0xAA,
		uid[4] ^ uid[6] ^ 0x55,
	}, nil
}

// Password derives the PWD straight from a raw tag image. Both the page
// encoder and the line patcher go through the same UID extraction rule,
// so the two paths always agree.
func Password(image []byte) ([]byte, error) {
	uid, err := ExtractUID(image)
	if err != nil {
		return nil, err
	}
	return DerivePassword(uid)
}
