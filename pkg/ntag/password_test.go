package ntag

import (
	"bytes"
	"errors"
	"testing"
)

func TestDerivePassword_KnownAnswers(t *testing.T) {
	tests := []struct {
		name string
		uid  []byte
		want []byte
	}{
		{
			name: "all-zero UID",
			uid:  []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			want: []byte{0xAA, 0x55, 0xAA, 0x55},
		},
		{
			name: "mixed UID",
			uid:  []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03},
			want: []byte{0xE8, 0xEA, 0x47, 0x57},
		},
		{
			name: "all-FF UID",
			uid:  []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			want: []byte{0xAA, 0x55, 0xAA, 0x55},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DerivePassword(tt.uid)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("DerivePassword(% X) = % X, want % X", tt.uid, got, tt.want)
			}
		})
	}
}

func TestDerivePassword_InvalidLength(t *testing.T) {
	tests := []struct {
		name string
		uid  []byte
	}{
		{name: "nil", uid: nil},
		{name: "empty", uid: []byte{}},
		{name: "six bytes", uid: make([]byte, 6)},
		{name: "eight bytes", uid: make([]byte, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DerivePassword(tt.uid); !errors.Is(err, ErrInvalidUID) {
				t.Errorf("DerivePassword(%d bytes) error = %v, want ErrInvalidUID", len(tt.uid), err)
			}
		})
	}
}

func TestDerivePassword_Deterministic(t *testing.T) {
	uid := []byte{0x04, 0x12, 0x9A, 0x6B, 0x2C, 0x81, 0x5F}
	first, err := DerivePassword(uid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := DerivePassword(uid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("same UID gave different passwords: % X vs % X", first, second)
	}
}

// Every UID byte the formula consumes (1..6) must influence the result.
// Byte 0 is not part of the formula and is deliberately excluded.
func TestDerivePassword_BytePerturbation(t *testing.T) {
	base := []byte{0x04, 0x12, 0x9A, 0x6B, 0x2C, 0x81, 0x5F}
	basePwd, err := DerivePassword(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < UIDLength; i++ {
		uid := make([]byte, UIDLength)
		copy(uid, base)
		uid[i] ^= 0x01

		pwd, err := DerivePassword(uid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bytes.Equal(pwd, basePwd) {
			t.Errorf("flipping UID byte %d did not change the password", i)
		}
	}
}

func TestExtractUID(t *testing.T) {
	tests := []struct {
		name    string
		image   []byte
		want    []byte
		wantErr bool
	}{
		{
			name:  "skips the BCC0 byte",
			image: []byte{0x04, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77},
			want:  []byte{0x04, 0x11, 0x22, 0x44, 0x55, 0x66, 0x77},
		},
		{
			name:  "ignores everything past byte 7",
			image: append([]byte{0x04, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}, make([]byte, 532)...),
			want:  []byte{0x04, 0x11, 0x22, 0x44, 0x55, 0x66, 0x77},
		},
		{name: "empty image", image: []byte{}, wantErr: true},
		{name: "seven bytes is one short", image: make([]byte, 7), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractUID(tt.image)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidUID) {
					t.Fatalf("ExtractUID error = %v, want ErrInvalidUID", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ExtractUID = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestPassword_FromImage(t *testing.T) {
	image := []byte{0x04, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}
	// UID is 04 11 22 44 55 66 77
	want := []byte{0x11 ^ 0x44 ^ 0xAA, 0x22 ^ 0x55 ^ 0x55, 0x44 ^ 0x66 ^ 0xAA, 0x55 ^ 0x77 ^ 0x55}

	got, err := Password(image)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Password = % X, want % X", got, want)
	}
}
