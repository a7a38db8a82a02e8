package algorand

import (
	"bytes"
	"crypto/sha512"
	"encoding/base32"
	"errors"
	"fmt"
)

const (
	// AddressLength is the length of an address public key in bytes
	AddressLength  = 32
	checksumLength = 4
)

// ErrInvalidAddress is returned when a string is not a valid Algorand address
var ErrInvalidAddress = errors.New("invalid address")

var addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Address is an Algorand account public key
type Address [AddressLength]byte

// Round is a block round number
type Round uint64

// DecodeAddress parses the 58 character checksummed form of an address
func DecodeAddress(s string) (Address, error) {
	var a Address

	raw, err := addressEncoding.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("%w: %s: %v", ErrInvalidAddress, s, err)
	}
	if len(raw) != AddressLength+checksumLength {
		return a, fmt.Errorf("%w: %s: decoded length %d", ErrInvalidAddress, s, len(raw))
	}

	copy(a[:], raw[:AddressLength])
	if !bytes.Equal(a.checksum(), raw[AddressLength:]) {
		return Address{}, fmt.Errorf("%w: %s: checksum mismatch", ErrInvalidAddress, s)
	}

	// Reject strings that decode to the same key but are not in canonical form
	if a.String() != s {
		return Address{}, fmt.Errorf("%w: %s: not canonical", ErrInvalidAddress, s)
	}

	return a, nil
}

// String returns the checksummed base32 form of the address
func (a Address) String() string {
	buf := make([]byte, 0, AddressLength+checksumLength)
	buf = append(buf, a[:]...)
	buf = append(buf, a.checksum()...)
	return addressEncoding.EncodeToString(buf)
}

// IsZero reports whether a is the all zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

// MarshalText implements encoding.TextMarshaler
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Address) UnmarshalText(text []byte) error {
	decoded, err := DecodeAddress(string(text))
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}

func (a Address) checksum() []byte {
	sum := sha512.Sum512_256(a[:])
	return sum[len(sum)-checksumLength:]
}
