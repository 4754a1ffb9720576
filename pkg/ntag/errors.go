package ntag

import "errors"

var (
	// Derivation errors 🔑
	ErrInvalidUID = errors.New("❌ invalid UID length")

	// Patch errors 📄
	ErrMissingField = errors.New("❌ expected field not found")
	ErrMalformedHex = errors.New("❌ malformed hex data")
)
